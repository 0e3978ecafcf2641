package dct

import (
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-wavelet/dsp/core"
)

// Plan computes n-point orthonormal DCT-II and DCT-III (its inverse) of
// real vectors. Power-of-two lengths go through an n-point complex FFT using
// Makhoul's even/odd reordering; other lengths multiply by the basis matrix.
//
// A Plan owns scratch buffers and is not safe for concurrent use.
type Plan struct {
	n     int
	fft   *algofft.Plan[complex128]
	basis *Basis

	twiddle []complex128 // exp(-iπk/2n)
	weights []float64
	time    []complex128
	freq    []complex128
	col     [][]float64
}

// NewPlan prepares an n-point transform.
func NewPlan(n int) (*Plan, error) {
	if n <= 0 {
		return nil, fmt.Errorf("dct: plan length %d: %w", n, core.ErrInvalidDimensions)
	}

	p := &Plan{n: n, weights: make([]float64, n)}
	for k := range n {
		p.weights[k] = weight(k, n)
	}

	if n >= 2 && bits.OnesCount(uint(n)) == 1 {
		fft, err := algofft.NewPlan64(n)
		if err == nil {
			p.fft = fft
			p.time = make([]complex128, n)
			p.freq = make([]complex128, n)
			p.twiddle = make([]complex128, n)
			for k := range n {
				phi := -math.Pi * float64(k) / float64(2*n)
				p.twiddle[k] = complex(math.Cos(phi), math.Sin(phi))
			}
			return p, nil
		}
	}

	basis, err := NewBasis(n, n)
	if err != nil {
		return nil, err
	}
	p.basis = basis
	p.col = core.NewGrid(n, 1)

	return p, nil
}

// Len returns the transform length.
func (p *Plan) Len() int { return p.n }

// UsesFFT reports whether the plan runs through the FFT backend.
func (p *Plan) UsesFFT() bool { return p.fft != nil }

// Forward writes the DCT-II of src into dst. dst and src may alias.
func (p *Plan) Forward(dst, src []float64) error {
	if err := p.checkLen(dst, src); err != nil {
		return err
	}

	if p.fft == nil {
		return p.viaBasis(dst, src, false)
	}

	n := p.n
	half := (n + 1) / 2
	for k := range half {
		p.time[k] = complex(src[2*k], 0)
	}
	for k := range n / 2 {
		p.time[n-1-k] = complex(src[2*k+1], 0)
	}

	if err := p.fft.Forward(p.freq, p.time); err != nil {
		return fmt.Errorf("dct: forward fft: %w", err)
	}

	for k := range n {
		dst[k] = p.weights[k] * real(p.twiddle[k]*p.freq[k])
	}

	return nil
}

// Inverse writes the DCT-III of src into dst, undoing [Plan.Forward].
// dst and src may alias.
func (p *Plan) Inverse(dst, src []float64) error {
	if err := p.checkLen(dst, src); err != nil {
		return err
	}

	if p.fft == nil {
		return p.viaBasis(dst, src, true)
	}

	n := p.n
	// y[k] = X[k]/w(k); V[k] = conj(twiddle[k]) · (y[k] − i·y[n−k]), y[n] = 0.
	for k := range n {
		yk := src[k] / p.weights[k]
		var yr float64
		if k > 0 {
			yr = src[n-k] / p.weights[n-k]
		}
		tw := p.twiddle[k]
		p.freq[k] = complex(real(tw), -imag(tw)) * complex(yk, -yr)
	}

	if err := p.fft.Inverse(p.time, p.freq); err != nil {
		return fmt.Errorf("dct: inverse fft: %w", err)
	}

	half := (n + 1) / 2
	for k := range half {
		dst[2*k] = real(p.time[k])
	}
	for k := range n / 2 {
		dst[2*k+1] = real(p.time[n-1-k])
	}

	return nil
}

func (p *Plan) run(dst, src []float64, inverse bool) error {
	if inverse {
		return p.Inverse(dst, src)
	}
	return p.Forward(dst, src)
}

func (p *Plan) viaBasis(dst, src []float64, inverse bool) error {
	for i, v := range src {
		p.col[i][0] = v
	}

	var (
		out [][]float64
		err error
	)
	if inverse {
		out, err = Inverse(p.basis, p.col)
	} else {
		out, err = Forward(p.basis, p.col)
	}
	if err != nil {
		return err
	}

	for i := range dst {
		dst[i] = out[i][0]
	}
	return nil
}

func (p *Plan) checkLen(dst, src []float64) error {
	if len(dst) != p.n || len(src) != p.n {
		return fmt.Errorf("dct: plan length %d, got dst=%d src=%d: %w",
			p.n, len(dst), len(src), core.ErrShapeMismatch)
	}
	return nil
}
