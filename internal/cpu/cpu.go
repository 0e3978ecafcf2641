// Package cpu detects the SIMD capabilities that decide which Haar butterfly
// kernel the wavelet package runs.
//
// The vector kernel hands whole half-spans to algo-vecmath block routines,
// which dispatch to SSE2/AVX2/NEON implementations. On machines without any
// of those the scalar butterfly is faster, so the wavelet package asks
// [VectorKernels] before choosing.
//
// Detection runs once and is cached. Tests may override the result with
// [SetForcedFeatures] and restore it with [ResetDetection].
package cpu

import (
	"strings"
	"sync"
)

// SIMDLevel names the widest vector extension the block kernels can use.
type SIMDLevel int

const (
	// SIMDNone means only pure Go loops are available.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 is the x86-64 baseline.
	SIMDSSE2

	// SIMDAVX2 is x86-64 AVX2.
	SIMDAVX2

	// SIMDNEON is ARM Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the detected CPU capabilities.
type Features struct {
	HasSSE2 bool
	HasAVX  bool
	HasAVX2 bool
	HasFMA  bool
	HasNEON bool

	// ForceGeneric disables the vector kernels.
	ForceGeneric bool

	Architecture string
}

// Level returns the widest SIMD level f supports.
func (f Features) Level() SIMDLevel {
	switch {
	case f.ForceGeneric:
		return SIMDNone
	case f.HasAVX2:
		return SIMDAVX2
	case f.HasNEON:
		return SIMDNEON
	case f.HasSSE2:
		return SIMDSSE2
	default:
		return SIMDNone
	}
}

// String lists the detected flags, e.g. "amd64 [sse2 avx avx2 fma]".
func (f Features) String() string {
	var flags []string
	for _, fl := range []struct {
		on   bool
		name string
	}{
		{f.HasSSE2, "sse2"},
		{f.HasAVX, "avx"},
		{f.HasAVX2, "avx2"},
		{f.HasFMA, "fma"},
		{f.HasNEON, "neon"},
		{f.ForceGeneric, "force-generic"},
	} {
		if fl.on {
			flags = append(flags, fl.name)
		}
	}
	return f.Architecture + " [" + strings.Join(flags, " ") + "]"
}

var (
	detected   Features
	detectOnce sync.Once
	detectMu   sync.Mutex

	forced   *Features
	forcedMu sync.RWMutex
)

// DetectFeatures returns the CPU features of the current system, or the
// features installed by SetForcedFeatures.
func DetectFeatures() Features {
	forcedMu.RLock()
	f := forced
	forcedMu.RUnlock()

	if f != nil {
		return *f
	}

	detectMu.Lock()
	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})
	out := detected
	detectMu.Unlock()

	return out
}

// VectorKernels reports whether the block-based Haar kernel should be used.
func VectorKernels() bool {
	return DetectFeatures().Level() != SIMDNone
}

// SetForcedFeatures overrides detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	ff := f
	forced = &ff
}

// ResetDetection clears any forced features and the detection cache.
func ResetDetection() {
	forcedMu.Lock()
	forced = nil
	forcedMu.Unlock()

	detectMu.Lock()
	detectOnce = sync.Once{}
	detected = Features{}
	detectMu.Unlock()
}
