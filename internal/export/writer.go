// Package export writes rendered frames to image files.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Save writes img to path, picking the encoder from the file extension.
// Supported extensions are .webp, .png and .tga. Missing directories are
// created.
func Save(path string, img image.Image) error {
	enc, err := encoderFor(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("export: create dir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	if err := enc(f, img); err != nil {
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	return nil
}

func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".webp":
		return func(w io.Writer, m image.Image) error { return nativewebp.Encode(w, m, nil) }, nil
	case ".png":
		return png.Encode, nil
	case ".tga":
		return tga.Encode, nil
	default:
		return nil, fmt.Errorf("export: unsupported format %q", ext)
	}
}

// SaveAnimation writes frames as an endlessly looping animated WebP with the
// given per-frame delay in milliseconds.
func SaveAnimation(path string, frames []*image.NRGBA, delayMS int) error {
	if len(frames) == 0 {
		return fmt.Errorf("export: no frames for %s", path)
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".webp" {
		return fmt.Errorf("export: animation needs a .webp path, got %q", ext)
	}
	if delayMS <= 0 {
		delayMS = 40
	}

	ani := nativewebp.Animation{
		Images:    make([]image.Image, len(frames)),
		Durations: make([]uint, len(frames)),
		Disposals: make([]uint, len(frames)),
	}
	for i, frame := range frames {
		ani.Images[i] = frame
		ani.Durations[i] = uint(delayMS)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("export: create dir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.EncodeAll(f, &ani, nil); err != nil {
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	return nil
}
