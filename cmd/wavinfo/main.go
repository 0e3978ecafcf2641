// Command wavinfo prints compression and reconstruction statistics for the
// Haar wavelet and DCT codecs on synthetic grids.
//
// Usage:
//
//	wavinfo [flags]
//
// Examples:
//
//	wavinfo
//	wavinfo -signal noise -rows 64 -cols 48 -levels 1,2,4 -thresholds 0,1,5
//	wavinfo -dct -thresholds 1,2,4
//	wavinfo -info
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"

	"github.com/cwbudde/algo-wavelet/dsp/codec"
	"github.com/cwbudde/algo-wavelet/dsp/core"
	"github.com/cwbudde/algo-wavelet/dsp/signal"
	"github.com/cwbudde/algo-wavelet/internal/cpu"
	"github.com/cwbudde/algo-wavelet/stats/fidelity"
)

type gridSource func(g *signal.Generator, rows, cols int) ([][]float64, error)

var sources = map[string]gridSource{
	"spectrogram": func(g *signal.Generator, rows, cols int) ([][]float64, error) {
		return g.Spectrogram(rows, cols)
	},
	"noise": func(g *signal.Generator, rows, cols int) ([][]float64, error) {
		return g.Noise(10, rows, cols)
	},
	"ramp": func(g *signal.Generator, rows, cols int) ([][]float64, error) {
		return g.Ramp(100, rows, cols)
	},
	"checker": func(g *signal.Generator, rows, cols int) ([][]float64, error) {
		return g.Checkerboard(10, 4, rows, cols)
	},
}

type config struct {
	signal     string
	rows, cols int
	seed       int64
	levels     []int
	thresholds []int
	dct        bool
	workers    int
}

func main() {
	sig := flag.String("signal", "spectrogram", "synthetic grid: "+strings.Join(sourceNames(), ", "))
	rows := flag.Int("rows", 64, "grid height")
	cols := flag.Int("cols", 64, "grid width")
	seed := flag.Int64("seed", 1, "noise seed")
	levels := flag.String("levels", "1,2,3,4", "comma-separated decomposition levels")
	thresholds := flag.String("thresholds", "0,1,2,5", "comma-separated quantization thresholds")
	useDCT := flag.Bool("dct", false, "also run the DCT codec for every threshold")
	workers := flag.Int("workers", 1, "parallel row/column workers")
	info := flag.Bool("info", false, "print detected CPU features and the selected Haar kernel")
	verbose := flag.Bool("v", false, "verbose diagnostics on stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wavinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints compression statistics for synthetic grids.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wavinfo -signal noise -levels 1,3 -thresholds 0,2\n")
		fmt.Fprintf(os.Stderr, "  wavinfo -dct\n")
		fmt.Fprintf(os.Stderr, "  wavinfo -info\n")
	}
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *info {
		printInfo(os.Stdout)
		return
	}

	cfg := config{
		signal:  strings.ToLower(strings.TrimSpace(*sig)),
		rows:    *rows,
		cols:    *cols,
		seed:    *seed,
		dct:     *useDCT,
		workers: *workers,
	}

	var err error
	if cfg.levels, err = parseIntList(*levels); err != nil {
		logger.Error("invalid -levels", "value", *levels, "err", err)
		os.Exit(2)
	}
	if cfg.thresholds, err = parseIntList(*thresholds); err != nil {
		logger.Error("invalid -thresholds", "value", *thresholds, "err", err)
		os.Exit(2)
	}

	if err := run(os.Stdout, logger, cfg); err != nil {
		logger.Error("wavinfo failed", "err", err)
		os.Exit(1)
	}
}

func sourceNames() []string {
	names := lo.Keys(sources)
	slices.Sort(names)
	return names
}

// parseIntList parses a comma-separated list of integers, skipping blanks and
// duplicates while keeping the first-seen order.
func parseIntList(s string) ([]int, error) {
	fields := lo.FilterMap(strings.Split(s, ","), func(f string, _ int) (string, bool) {
		f = strings.TrimSpace(f)
		return f, f != ""
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty list %q", s)
	}

	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", f, err)
		}
		out = append(out, v)
	}

	return lo.Uniq(out), nil
}

func printInfo(w io.Writer) {
	f := cpu.DetectFeatures()
	kernel := "scalar"
	if cpu.VectorKernels() {
		kernel = fmt.Sprintf("vector (spans >= %d)", core.DefaultMinVectorSpan)
	}

	fmt.Fprintf(w, "CPU:         %s\n", f)
	fmt.Fprintf(w, "SIMD level:  %s\n", f.Level())
	fmt.Fprintf(w, "Haar kernel: %s\n", kernel)
}

func run(w io.Writer, logger *slog.Logger, cfg config) error {
	src, ok := sources[cfg.signal]
	if !ok {
		return fmt.Errorf("unknown signal %q (available: %s)", cfg.signal, strings.Join(sourceNames(), ", "))
	}

	original, err := src(signal.NewGenerator(signal.WithSeed(cfg.seed)), cfg.rows, cfg.cols)
	if err != nil {
		return fmt.Errorf("generate %s: %w", cfg.signal, err)
	}
	logger.Debug("generated grid", "signal", cfg.signal, "rows", cfg.rows, "cols", cfg.cols, "seed", cfg.seed)

	var opts []core.TransformOption
	if cfg.workers > 1 {
		opts = append(opts, core.WithWorkers(cfg.workers))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Transform\tLevels\tThreshold\tSparsity\tRMSE\tMax Err\tPSNR [dB]\tEnergy\n")
	fmt.Fprintf(tw, "---------\t------\t---------\t--------\t----\t-------\t---------\t------\n")

	for _, level := range cfg.levels {
		for _, threshold := range cfg.thresholds {
			data := core.CloneGrid(original)
			rep, err := codec.CompressDecompress2D(data, level, threshold, opts...)
			if err != nil {
				return fmt.Errorf("haar level %d threshold %d: %w", level, threshold, err)
			}
			if rep.AppliedLevels < rep.RequestedLevels {
				logger.Debug("pyramid stopped early",
					"requested", rep.RequestedLevels, "applied", rep.AppliedLevels, "extent", rep.Extent)
			}

			label := fmt.Sprintf("%d/%d", rep.AppliedLevels, rep.RequestedLevels)
			if err := writeRow(tw, "haar", label, original, data, rep); err != nil {
				return err
			}
		}
	}

	if cfg.dct {
		for _, threshold := range cfg.thresholds {
			data := core.CloneGrid(original)
			rep, err := codec.CompressDecompressDCT2D(data, threshold)
			if err != nil {
				return fmt.Errorf("dct threshold %d: %w", threshold, err)
			}
			if err := writeRow(tw, "dct", "-", original, data, rep); err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}

func writeRow(tw io.Writer, transform, levels string, original, data [][]float64, rep codec.Report) error {
	s, err := fidelity.Calculate(original, data)
	if err != nil {
		return fmt.Errorf("fidelity: %w", err)
	}

	_, err = fmt.Fprintf(tw, "%s\t%s\t%d\t%.4f\t%.6f\t%.6f\t%.2f\t%.6f\n",
		transform,
		levels,
		rep.Threshold,
		rep.Sparsity(),
		s.RMSE,
		s.MaxAbsError,
		s.PSNR_dB,
		rep.EnergyRetention(),
	)
	if err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	return nil
}
