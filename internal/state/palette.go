package state

import (
	"math/rand/v2"
)

const (
	channelMin = 100
	channelMax = 255
)

// Palette picks the color of new strokes and tracks whether the canvas is
// shown white-on-black or inverted for printing.
type Palette struct {
	rng      *rand.Rand
	random   bool
	inverted bool
}

// NewPalette returns a palette in random mode. A nil src gets a random seed.
func NewPalette(src rand.Source) *Palette {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Palette{rng: rand.New(src), random: true}
}

// Color returns a random color with every channel in [100,255], or white
// when random mode is off.
func (p *Palette) Color() Color {
	if !p.random {
		return White
	}
	return Color{
		R: p.channel(),
		G: p.channel(),
		B: p.channel(),
	}
}

func (p *Palette) channel() uint8 {
	return uint8(channelMin + p.rng.IntN(channelMax-channelMin+1))
}

func (p *Palette) SetRandom(on bool) { p.random = on }
func (p *Palette) Random() bool      { return p.random }
func (p *Palette) ToggleRandom()     { p.random = !p.random }

// ToggleInverted flips the display mode. Stored stroke colors are unaffected.
func (p *Palette) ToggleInverted() { p.inverted = !p.inverted }
func (p *Palette) Inverted() bool  { return p.inverted }
