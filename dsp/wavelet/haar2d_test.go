package wavelet

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cwbudde/algo-wavelet/dsp/core"
	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestForwardLevel2DWorkedExample(t *testing.T) {
	data := [][]float64{{1, 2}, {3, 4}}

	if err := ForwardLevel2D(data, Extent{Width: 2, Height: 2}); err != nil {
		t.Fatalf("ForwardLevel2D: %v", err)
	}

	want := [][]float64{{5, -1}, {-2, 0}}
	if diff := cmp.Diff(want, data, approx); diff != "" {
		t.Fatalf("coefficients mismatch (-want +got):\n%s", diff)
	}

	if err := InverseLevel2D(data, Extent{Width: 2, Height: 2}); err != nil {
		t.Fatalf("InverseLevel2D: %v", err)
	}
	if diff := cmp.Diff([][]float64{{1, 2}, {3, 4}}, data, approx); diff != "" {
		t.Fatalf("reconstruction mismatch (-want +got):\n%s", diff)
	}
}

func TestForward2DWorkedExample4x4(t *testing.T) {
	data := testutil.SequenceGrid(4, 4)

	levels, err := Forward2D(data, 4, 4)
	if err != nil {
		t.Fatalf("Forward2D: %v", err)
	}
	if levels != 2 {
		t.Fatalf("levels = %d, want 2", levels)
	}

	want := [][]float64{
		{34, -4, -1, -1},
		{-16, 0, -1, -1},
		{-4, -4, 0, 0},
		{-4, -4, 0, 0},
	}
	if diff := cmp.Diff(want, data, approx); diff != "" {
		t.Fatalf("coefficients mismatch (-want +got):\n%s", diff)
	}
}

func TestForward2DRoundTripAndEnergy(t *testing.T) {
	shapes := [][2]int{{1, 1}, {2, 2}, {4, 8}, {8, 4}, {16, 16}, {3, 5}, {7, 1}, {1, 9}, {33, 20}}

	for _, s := range shapes {
		h, w := s[0], s[1]
		x := testutil.NoiseGrid(t, int64(h*100+w), 8, h, w)
		data := core.CloneGrid(x)
		energy := core.Energy(x)

		fwd, err := Forward2D(data, h, w)
		if err != nil {
			t.Fatalf("%dx%d Forward2D: %v", h, w, err)
		}

		if got := core.Energy(data); math.Abs(got-energy) > 1e-9*math.Max(energy, 1) {
			t.Fatalf("%dx%d: energy %v -> %v", h, w, energy, got)
		}

		inv, err := Inverse2D(data, h, w)
		if err != nil {
			t.Fatalf("%dx%d Inverse2D: %v", h, w, err)
		}
		if inv != fwd {
			t.Fatalf("%dx%d: inverse levels %d != forward levels %d", h, w, inv, fwd)
		}

		if diff := cmp.Diff(x, data, approx); diff != "" {
			t.Fatalf("%dx%d round trip mismatch (-want +got):\n%s", h, w, diff)
		}
	}
}

func TestForward2DShapeMismatch(t *testing.T) {
	data := core.NewGrid(4, 4)

	if _, err := Forward2D(data, 4, 5); !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("Forward2D err = %v, want ErrShapeMismatch", err)
	}
	if _, err := Inverse2D(data, 3, 4); !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("Inverse2D err = %v, want ErrShapeMismatch", err)
	}

	data[2] = data[2][:3]
	if _, err := Forward2D(data, 4, 4); !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("ragged Forward2D err = %v, want ErrShapeMismatch", err)
	}
}

func TestLevel2DExtentChecks(t *testing.T) {
	data := core.NewGrid(4, 4)

	tests := []struct {
		name string
		e    Extent
		want error
	}{
		{name: "too tall", e: Extent{Width: 2, Height: 5}, want: core.ErrShapeMismatch},
		{name: "too wide", e: Extent{Width: 6, Height: 2}, want: core.ErrShapeMismatch},
		{name: "zero", e: Extent{Width: 0, Height: 2}, want: core.ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ForwardLevel2D(data, tt.e); !errors.Is(err, tt.want) {
				t.Fatalf("ForwardLevel2D err = %v, want %v", err, tt.want)
			}
			if err := InverseLevel2D(data, tt.e); !errors.Is(err, tt.want) {
				t.Fatalf("InverseLevel2D err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLevel2DLeavesInactiveRegion(t *testing.T) {
	data := testutil.SequenceGrid(4, 4)

	if err := ForwardLevel2D(data, Extent{Width: 2, Height: 2}); err != nil {
		t.Fatalf("ForwardLevel2D: %v", err)
	}

	for y := range 4 {
		for x := range 4 {
			if y < 2 && x < 2 {
				continue
			}
			if want := float64(y*4 + x + 1); data[y][x] != want {
				t.Fatalf("[%d][%d] = %v, want untouched %v", y, x, data[y][x], want)
			}
		}
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	x := testutil.SpectrogramGrid(t, 64, 48)

	serial := core.CloneGrid(x)
	if _, err := Forward2D(serial, 64, 48); err != nil {
		t.Fatalf("serial Forward2D: %v", err)
	}

	parallel := core.CloneGrid(x)
	if _, err := Forward2D(parallel, 64, 48, core.WithWorkers(4)); err != nil {
		t.Fatalf("parallel Forward2D: %v", err)
	}

	if diff := cmp.Diff(serial, parallel); diff != "" {
		t.Fatalf("parallel result differs (-serial +parallel):\n%s", diff)
	}

	if _, err := Inverse2D(parallel, 64, 48, core.WithWorkers(3)); err != nil {
		t.Fatalf("parallel Inverse2D: %v", err)
	}
	if diff := cmp.Diff(x, parallel, approx); diff != "" {
		t.Fatalf("parallel round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLevelIgnoresStaleScratch(t *testing.T) {
	for range 4 {
		buf := scratchPool.Get(64)
		for i := range buf.Values() {
			buf.Values()[i] = math.NaN()
		}
		scratchPool.Put(buf)
	}

	data := [][]float64{{1, 2}, {3, 4}}
	if err := ForwardLevel2D(data, Extent{Width: 2, Height: 2}); err != nil {
		t.Fatalf("ForwardLevel2D: %v", err)
	}

	want := [][]float64{{5, -1}, {-2, 0}}
	if diff := cmp.Diff(want, data, approx); diff != "" {
		t.Fatalf("coefficients mismatch (-want +got):\n%s", diff)
	}

	x := []float64{4, 2, 5, 5, 7}
	ForwardStep(x)
	for i, v := range x {
		if math.IsNaN(v) {
			t.Fatalf("x[%d] picked up stale scratch", i)
		}
	}
}
