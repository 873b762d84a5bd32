package export

import (
	"fmt"
	"math"

	"LocalPaint/internal/state"

	"github.com/jung-kurt/gofpdf"
)

const (
	PrintPrefix = "print_"
	PrintSuffix = ".pdf"

	pageW = 297.0 // A4 landscape, mm
	pageH = 210.0
)

// Prints writes numbered PDF copies of the board.
type Prints struct {
	Dir    string
	Lister state.Lister
}

// Save lays the strokes out on an A4 landscape page scaled to fit a w x h
// board and writes it to the next free print_NNN.pdf.
func (p *Prints) Save(strokes []state.Stroke, w, h int, inverted bool, radius float64) (string, error) {
	f, path, err := state.CreateIndexed(p.Lister, p.Dir, PrintPrefix, PrintSuffix)
	if err != nil {
		return "", err
	}

	doc := gofpdf.New("L", "mm", "A4", "")
	doc.AddPage()
	scale := math.Min(pageW/float64(max(w, 1)), pageH/float64(max(h, 1)))

	bg := state.Black
	if inverted {
		bg = state.White
	}
	doc.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
	doc.Rect(0, 0, float64(w)*scale, float64(h)*scale, "F")

	for _, st := range strokes {
		col := st.Color
		if inverted {
			col = state.Black
		}
		doc.SetFillColor(int(col.R), int(col.G), int(col.B))
		for _, pt := range st.Points {
			doc.Circle(float64(pt.X)*scale, float64(pt.Y)*scale, radius*scale, "F")
		}
	}

	if err := doc.Output(f); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
