package assets

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/weegames/internal/core"
	"github.com/vovakirdan/weegames/internal/gamedata"
)

func TestMissingAsset(t *testing.T) {
	a := New()

	tests := []struct {
		name string
		kind Kind
		get  func() error
	}{
		{"image", KindImage, func() error { _, err := a.Image("x"); return err }},
		{"sound", KindSound, func() error { _, err := a.Sound("x"); return err }},
		{"font", KindFont, func() error { _, err := a.Font("x"); return err }},
		{"music", KindMusic, func() error { _, err := a.Music(); return err }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var missing *MissingAssetError
			if err := tc.get(); !errors.As(err, &missing) || missing.Kind != tc.kind {
				t.Errorf("lookup error = %v, expected missing %s", err, tc.kind)
			}
		})
	}
}

func TestDefaultFontMeasure(t *testing.T) {
	a := New()
	defer a.Close()

	short, err := a.MeasureText(DefaultFont, "hi")
	if err != nil {
		t.Fatalf("MeasureText() error: %v", err)
	}
	long, err := a.MeasureText(DefaultFont, "hello there")
	if err != nil {
		t.Fatalf("MeasureText() error: %v", err)
	}
	if short.W <= 0 || short.H <= 0 {
		t.Errorf("MeasureText(hi) = %+v, expected positive size", short)
	}
	if long.W <= short.W {
		t.Errorf("longer text measured %v, not wider than %v", long.W, short.W)
	}
	if long.H != short.H {
		t.Errorf("line height changed with text: %v vs %v", long.H, short.H)
	}
}

func TestAverageColour(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	got := AverageColour(img)
	if got != (core.Colour{R: 1, G: 0, B: 0, A: 1}) {
		t.Errorf("AverageColour() = %+v, expected opaque red", got)
	}
}

func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{G: 255, A: 255})
	f, err := os.Create(filepath.Join(dir, "dot.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	w, err := os.Create(filepath.Join(dir, "blip.wav"))
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}
	if err := wav.Encode(w, beep.Silence(100), format); err != nil {
		t.Fatal(err)
	}
	w.Close()

	if err := os.WriteFile(filepath.Join(dir, "theme.wav"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeFixtures(t)
	files := gamedata.AssetFiles{
		Images: map[string]string{"dot": "dot.png"},
		Audio:  map[string]string{"blip": "blip.wav"},
		Music:  &gamedata.Music{Filename: "theme.wav", Looped: true},
	}

	a, err := Load(context.Background(), dir, files)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	defer a.Close()

	if _, err := a.Image("dot"); err != nil {
		t.Errorf("Image(dot) error: %v", err)
	}
	buf, err := a.Sound("blip")
	if err != nil {
		t.Fatalf("Sound(blip) error: %v", err)
	}
	if buf.Len() != 100 {
		t.Errorf("sound length = %d samples, expected 100", buf.Len())
	}
	m, err := a.Music()
	if err != nil || !m.Looped || m.Path != filepath.Join(dir, "theme.wav") {
		t.Errorf("Music() = %+v, %v", m, err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	files := gamedata.AssetFiles{Images: map[string]string{"cat": "cat.png"}}

	_, err := Load(context.Background(), t.TempDir(), files)
	var le *LoadError
	if !errors.As(err, &le) || le.Kind != KindImage || le.Name != "cat" {
		t.Errorf("Load() error = %v, expected image LoadError for cat", err)
	}
}

func TestLoadCancelled(t *testing.T) {
	dir := writeFixtures(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, dir, gamedata.AssetFiles{Images: map[string]string{"dot": "dot.png"}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, expected context.Canceled", err)
	}
}

func TestPreloadResult(t *testing.T) {
	release := make(chan struct{})
	task := Preload(context.Background(), func(ctx context.Context) (int, error) {
		<-release
		return 42, nil
	}, nil)

	if task.Done() {
		t.Fatal("Done() before the load finished")
	}
	if _, err := task.Result(); !errors.Is(err, ErrNotDone) {
		t.Errorf("Result() early error = %v, expected ErrNotDone", err)
	}

	close(release)
	deadline := time.Now().Add(2 * time.Second)
	for !task.Done() {
		if time.Now().After(deadline) {
			t.Fatal("task never finished")
		}
		time.Sleep(time.Millisecond)
	}

	v, err := task.Result()
	if err != nil || v != 42 {
		t.Errorf("Result() = %d, %v, expected 42, nil", v, err)
	}
}

func TestPreloadCancelReleases(t *testing.T) {
	var released atomic.Int32
	done := make(chan struct{})

	task := Preload(context.Background(), func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 7, nil
	}, func(v int) {
		released.Add(int32(v))
		close(done)
	})

	task.Cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled value was never released")
	}
	if released.Load() != 7 {
		t.Errorf("released %d, expected 7", released.Load())
	}
}

func TestPreloadWait(t *testing.T) {
	task := Preload(context.Background(), func(ctx context.Context) (string, error) {
		return "", errors.New("boom")
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := task.Wait(ctx); err == nil || err.Error() != "boom" {
		t.Errorf("Wait() error = %v, expected boom", err)
	}
}
