package engine

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sort"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, G: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func newTestLoader(fsys fstest.MapFS) (*Loader, map[*ebiten.Image]image.Rectangle) {
	sizes := make(map[*ebiten.Image]image.Rectangle)
	l := NewLoader(fsys)
	l.newImage = func(img image.Image) *ebiten.Image {
		tex := new(ebiten.Image)
		sizes[tex] = img.Bounds()
		return tex
	}
	return l, sizes
}

func TestLoaderLoadsBatch(t *testing.T) {
	fsys := fstest.MapFS{
		"gfx/CoinsGold/000.png": {Data: pngBytes(t, 4, 4)},
		"gfx/CoinsGold/001.png": {Data: pngBytes(t, 8, 6)},
	}
	l, sizes := newTestLoader(fsys)
	l.Add("CoinsGold000", "gfx/CoinsGold/000.png")
	l.Add("CoinsGold001", "gfx/CoinsGold/001.png")
	l.Load()

	res := l.Wait()
	if len(res.Failed) != 0 {
		t.Errorf("failed = %v", res.Failed)
	}
	if len(res.Textures) != 2 {
		t.Fatalf("textures = %d, want 2", len(res.Textures))
	}
	if b := sizes[res.Textures["CoinsGold001"]]; b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("CoinsGold001 bounds = %v", b)
	}
}

func TestLoaderCompletesDespiteFailures(t *testing.T) {
	captureLog(t)
	fsys := fstest.MapFS{
		"ok.png":      {Data: pngBytes(t, 2, 2)},
		"corrupt.png": {Data: []byte("not an image")},
	}
	l, _ := newTestLoader(fsys)
	l.Add("ok", "ok.png")
	l.Add("corrupt", "corrupt.png")
	l.Add("missing", "missing.png")
	l.Load()

	res := l.Wait()
	sort.Strings(res.Failed)
	if len(res.Failed) != 2 || res.Failed[0] != "corrupt" || res.Failed[1] != "missing" {
		t.Errorf("failed = %v, want [corrupt missing]", res.Failed)
	}
	if _, ok := res.Textures["ok"]; !ok || len(res.Textures) != 1 {
		t.Errorf("textures = %v", res.Textures)
	}
}

func TestLoaderPollBeforeLoad(t *testing.T) {
	l, _ := newTestLoader(fstest.MapFS{})
	if _, ok := l.Poll(); ok {
		t.Fatal("Poll reported completion before Load")
	}

	l.Load()
	l.Load()
	res := l.Wait()
	if len(res.Textures) != 0 || len(res.Failed) != 0 {
		t.Errorf("empty batch result = %+v", res)
	}
	if _, ok := l.Poll(); ok {
		t.Error("a batch completes only once")
	}
}
