package state

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	SavePrefix = "save_"
	SaveSuffix = ".json"
)

// ErrNotSequence is returned when a save file does not hold a list of strokes.
var ErrNotSequence = errors.New("save file is not a stroke sequence")

// Store reads and writes numbered save files in one directory.
type Store struct {
	Dir    string
	Lister Lister
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir, Lister: OSLister{}}
}

// Save writes strokes to the next free save_NNN.json and returns its path.
func (s *Store) Save(strokes []Stroke) (string, error) {
	if strokes == nil {
		strokes = make([]Stroke, 0)
	}
	data, err := json.MarshalIndent(strokes, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode strokes: %w", err)
	}

	f, path, err := CreateIndexed(s.Lister, s.Dir, SavePrefix, SaveSuffix)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

// Load reads a save file. Nothing is returned unless the whole file decodes.
func (s *Store) Load(path string) ([]Stroke, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	strokes, err := DecodeStrokes(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return strokes, nil
}

// LoadLatest loads the highest numbered save file and returns its path too.
func (s *Store) LoadLatest() ([]Stroke, string, error) {
	l := s.Lister
	if l == nil {
		l = OSLister{}
	}
	names, err := l.List(s.Dir)
	if err != nil {
		return nil, "", fmt.Errorf("list %s: %w", s.Dir, err)
	}
	latest, ok := LatestIndex(names, SavePrefix, SaveSuffix)
	if !ok {
		return nil, "", fmt.Errorf("no save file in %s: %w", s.Dir, fs.ErrNotExist)
	}
	path := filepath.Join(s.Dir, IndexedName(SavePrefix, latest, SaveSuffix))
	strokes, err := s.Load(path)
	if err != nil {
		return nil, path, err
	}
	return strokes, path, nil
}

// savedStroke mirrors Stroke with the color optional so a missing color can
// be told apart from black.
type savedStroke struct {
	ID     string  `json:"id"`
	Color  *Color  `json:"color"`
	Points []Point `json:"points"`
}

// DecodeStrokes parses the save file format: a JSON array of strokes.
func DecodeStrokes(data []byte) ([]Stroke, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotSequence
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSequence, err)
	}
	strokes := make([]Stroke, 0, len(elems))
	for i, raw := range elems {
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return nil, fmt.Errorf("%w: stroke %d is null", ErrNotSequence, i)
		}
		var saved savedStroke
		if err := json.Unmarshal(raw, &saved); err != nil {
			return nil, fmt.Errorf("%w: stroke %d: %v", ErrNotSequence, i, err)
		}
		if saved.Color == nil {
			return nil, fmt.Errorf("%w: stroke %d has no color", ErrNotSequence, i)
		}
		st := Stroke{ID: saved.ID, Color: *saved.Color, Points: saved.Points}
		if st.ID == "" {
			st.ID = uuid.NewString()
		}
		if st.Points == nil {
			st.Points = make([]Point, 0)
		}
		strokes = append(strokes, st)
	}
	return strokes, nil
}

// decodeInts reads a JSON array of exactly n integers.
func decodeInts(data []byte, n int, what string) ([]int, error) {
	var vals []int
	if err := json.Unmarshal(data, &vals); err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	if len(vals) != n {
		return nil, fmt.Errorf("%s: want %d values, got %d", what, n, len(vals))
	}
	return vals, nil
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{int(c.R), int(c.G), int(c.B)})
}

func (c *Color) UnmarshalJSON(data []byte) error {
	rgb, err := decodeInts(data, 3, "color")
	if err != nil {
		return err
	}
	for _, v := range rgb {
		if v < 0 || v > 255 {
			return fmt.Errorf("color channel %d out of range", v)
		}
	}
	*c = Color{uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2])}
	return nil
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	xy, err := decodeInts(data, 2, "point")
	if err != nil {
		return err
	}
	*p = Point{X: xy[0], Y: xy[1]}
	return nil
}
