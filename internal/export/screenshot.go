// Package export writes the board out as numbered image and PDF files.
package export

import (
	"fmt"
	"image"
	"image/jpeg"

	"LocalPaint/internal/state"
)

const (
	ScreenshotPrefix = "screenshot_"
	ScreenshotSuffix = ".jpg"

	jpegQuality = 95
)

// Screenshots writes numbered JPEG captures into Dir.
type Screenshots struct {
	Dir    string
	Lister state.Lister
}

// Save encodes img to the next free screenshot_NNN.jpg and returns the path.
func (s *Screenshots) Save(img image.Image) (string, error) {
	f, path, err := state.CreateIndexed(s.Lister, s.Dir, ScreenshotPrefix, ScreenshotSuffix)
	if err != nil {
		return "", err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
