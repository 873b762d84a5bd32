package export

import (
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"LocalPaint/internal/render"
	"LocalPaint/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strokes() []state.Stroke {
	return []state.Stroke{
		{Color: state.Color{150, 200, 250}, Points: []state.Point{{10, 10}, {20, 10}, {30, 10}}},
	}
}

func TestScreenshotsNumbered(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "screenshot_004.jpg"), nil, 0o644))
	s := &Screenshots{Dir: dir}

	img := render.Frame(64, 48, strokes(), nil, false, render.DefaultRadius)
	path, err := s.Save(img)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "screenshot_005.jpg"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := jpeg.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 48), decoded.Bounds())
}

func TestScreenshotsMissingDir(t *testing.T) {
	s := &Screenshots{Dir: filepath.Join(t.TempDir(), "img")}
	_, err := s.Save(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	assert.Error(t, err)
}

func TestPrintsSave(t *testing.T) {
	dir := t.TempDir()
	p := &Prints{Dir: dir}

	for _, want := range []string{"print_001.pdf", "print_002.pdf"} {
		path, err := p.Save(strokes(), 800, 600, true, render.DefaultRadius)
		require.NoError(t, err)
		assert.Equal(t, want, filepath.Base(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, len(data) > 4 && string(data[:4]) == "%PDF")
	}
}
