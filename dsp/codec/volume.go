package codec

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-wavelet/dsp/core"
)

// CompressDecompress3D applies [CompressDecompress2D] to every layer of an
// l×w×h volume, for example the colour channels of an image. Layers run
// concurrently when opts request more than one worker; each layer itself is
// then processed synchronously.
func CompressDecompress3D(data [][][]float64, level, threshold int, opts ...core.TransformOption) ([]Report, error) {
	l := len(data)
	if l == 0 {
		return nil, nil
	}

	rows, cols, err := core.GridShape(data[0])
	if err != nil {
		return nil, fmt.Errorf("codec: 3d: layer 0: %w", err)
	}
	if err := core.ValidateVolume(data, l, rows, cols); err != nil {
		return nil, fmt.Errorf("codec: 3d: %w", err)
	}

	cfg := core.ApplyTransformOptions(opts...)
	reports := make([]Report, l)

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i, layer := range data {
		g.Go(func() error {
			rep, err := CompressDecompress2D(layer, level, threshold, core.WithMinVectorSpan(cfg.MinVectorSpan))
			if err != nil {
				return fmt.Errorf("codec: 3d: layer %d: %w", i, err)
			}
			reports[i] = rep
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
