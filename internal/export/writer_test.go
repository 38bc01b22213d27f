package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ftrvxmtrx/tga"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 60), B: 200, A: 255})
		}
	}
	return img
}

func TestSavePNGRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := testImage()

	if err := Save(path, img); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode written png: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r, g, b, a := got.At(x, y).RGBA()
			w := img.NRGBAAt(x, y)
			if uint8(r>>8) != w.R || uint8(g>>8) != w.G || uint8(b>>8) != w.B || uint8(a>>8) != w.A {
				t.Fatalf("pixel (%d, %d) changed in roundtrip", x, y)
			}
		}
	}
}

func TestSaveTGARoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tga")
	img := testImage()

	if err := Save(path, img); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := tga.Decode(f)
	if err != nil {
		t.Fatalf("decode written tga: %v", err)
	}
	if b := got.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("decoded bounds = %v", b)
	}
	r, g, b, _ := got.At(1, 2).RGBA()
	w := img.NRGBAAt(1, 2)
	if uint8(r>>8) != w.R || uint8(g>>8) != w.G || uint8(b>>8) != w.B {
		t.Errorf("pixel (1, 2) changed in roundtrip")
	}
}

func TestSaveWebP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.webp")

	if err := Save(path, testImage()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 12 || !bytes.Equal(data[:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WEBP")) {
		t.Errorf("written file is not a WebP container")
	}
}

func TestSaveUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")

	err := Save(path, testImage())
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("err = %v, want unsupported format", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("rejected format still created a file")
	}
}

func TestSaveAnimation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anim.webp")
	frames := []*image.NRGBA{testImage(), testImage(), testImage()}

	if err := SaveAnimation(path, frames, 50); err != nil {
		t.Fatalf("SaveAnimation: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 12 || !bytes.Equal(data[:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WEBP")) {
		t.Errorf("written file is not a WebP container")
	}
}

func TestSaveAnimationErrors(t *testing.T) {
	dir := t.TempDir()

	if err := SaveAnimation(filepath.Join(dir, "anim.webp"), nil, 50); err == nil {
		t.Error("empty frame list accepted")
	}
	frames := []*image.NRGBA{testImage()}
	if err := SaveAnimation(filepath.Join(dir, "anim.png"), frames, 50); err == nil {
		t.Error("non-webp animation path accepted")
	}
}
