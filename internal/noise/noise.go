// Package noise provides a seeded, layered Perlin noise field for terrain
// generation. A Field is built once per generation run and shared by every
// sampler; the same seed and layer count always reproduce the same field.
package noise

import (
	"github.com/aquilax/go-perlin"
)

const (
	// perlin tuning shared by every layer
	alpha = 2.0
	beta  = 2.0
	n     = 2

	// bias shifts the zero-centered sum into a positive range
	bias = 0.5
)

// Field is a fractal noise field: several Perlin generators summed at
// doubling frequency and halving amplitude.
type Field struct {
	layers []*perlin.Perlin
	freqs  []float64
	amps   []float64
	total  float64
}

// New creates a Field with the given seed and number of octave layers.
// Layer counts below 1 are clamped to 1. Each layer gets its own generator
// seeded seed+i so the layers decorrelate.
func New(seed int64, layers int) *Field {
	if layers < 1 {
		layers = 1
	}

	f := &Field{
		layers: make([]*perlin.Perlin, layers),
		freqs:  make([]float64, layers),
		amps:   make([]float64, layers),
	}

	freq := 2.0
	amp := 1.0
	for i := 0; i < layers; i++ {
		f.layers[i] = perlin.NewPerlin(alpha, beta, n, seed+int64(i))
		f.freqs[i] = freq
		f.amps[i] = amp
		f.total += amp
		freq *= 2
		amp /= 2
	}

	return f
}

// Layers returns the number of octave layers in the field.
func (f *Field) Layers() int {
	return len(f.layers)
}

// Sample returns the field value at (x, y). The amplitude-weighted sum is
// normalized by the total amplitude and biased by 0.5, so results are
// nominally in [0, 1] with occasional excursions past either end.
func (f *Field) Sample(x, y float64) float64 {
	var sum float64
	for i, layer := range f.layers {
		sum += layer.Noise2D(x*f.freqs[i], y*f.freqs[i]) * f.amps[i]
	}
	return sum/f.total + bias
}
