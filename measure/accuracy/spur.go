package accuracy

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

var errNoFundamental = errors.New("fundamental bin has zero power")

// SpurConfig holds spectral purity measurement parameters.
type SpurConfig struct {
	// Size is the FFT length. Must be a power of two >= 8.
	Size int

	// Cycles is the number of periods sampled. Must be in [1, Size/2) so the
	// fundamental lands on a bin below Nyquist.
	Cycles int
}

// SpurOption mutates a SpurConfig.
type SpurOption func(*SpurConfig)

// DefaultSpurConfig returns a 4096-point measurement over 7 periods.
// An odd cycle count makes every sample hit a distinct phase.
func DefaultSpurConfig() SpurConfig {
	return SpurConfig{
		Size:   4096,
		Cycles: 7,
	}
}

// WithSize sets the FFT length.
func WithSize(size int) SpurOption {
	return func(cfg *SpurConfig) {
		if size > 0 {
			cfg.Size = size
		}
	}
}

// WithCycles sets the number of sampled periods.
func WithCycles(cycles int) SpurOption {
	return func(cfg *SpurConfig) {
		if cycles > 0 {
			cfg.Cycles = cycles
		}
	}
}

// SpurResult holds the outcome of a spectral purity measurement.
//
//nolint:revive
type SpurResult struct {
	FundamentalBin   int
	FundamentalPower float64
	WorstSpurBin     int
	WorstSpurPower   float64
	Spur_dBc         float64 // worst spur relative to fundamental, -Inf if none
}

// SpurMeter measures the spurious content of a 2π-periodic function.
// Sampling at an integer number of periods keeps the fundamental in a single
// bin without windowing, so every other bin is error energy.
//
// A SpurMeter reuses its buffers and is not safe for concurrent use.
type SpurMeter struct {
	cfg  SpurConfig
	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
}

// NewSpurMeter validates the configuration and prepares the FFT plan.
func NewSpurMeter(opts ...SpurOption) (*SpurMeter, error) {
	cfg := DefaultSpurConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.Size < 8 || cfg.Size&(cfg.Size-1) != 0 {
		return nil, fmt.Errorf("spur size must be a power of two >= 8: %d", cfg.Size)
	}
	if cfg.Cycles >= cfg.Size/2 {
		return nil, fmt.Errorf("spur cycles must be below size/2 (%d): %d", cfg.Size/2, cfg.Cycles)
	}

	plan, err := algofft.NewPlan64(cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("spur fft plan: %w", err)
	}

	return &SpurMeter{
		cfg:  cfg,
		plan: plan,
		in:   make([]complex128, cfg.Size),
		out:  make([]complex128, cfg.Size),
	}, nil
}

// Config returns the validated configuration.
func (m *SpurMeter) Config() SpurConfig {
	return m.cfg
}

// Measure samples f over the configured number of periods and reports the
// strongest bin other than the fundamental.
func (m *SpurMeter) Measure(f func(float32) float32) (SpurResult, error) {
	n := m.cfg.Size
	step := 2 * math.Pi * float64(m.cfg.Cycles) / float64(n)
	for i := range m.in {
		m.in[i] = complex(float64(f(float32(step*float64(i)))), 0)
	}

	if err := m.plan.Forward(m.out, m.in); err != nil {
		return SpurResult{}, fmt.Errorf("spur fft: %w", err)
	}

	res := SpurResult{
		FundamentalBin: m.cfg.Cycles,
		WorstSpurBin:   -1,
	}
	for k := 0; k <= n/2; k++ {
		p := binPower(m.out[k])
		if k == m.cfg.Cycles {
			res.FundamentalPower = p
			continue
		}
		if p > res.WorstSpurPower || res.WorstSpurBin < 0 {
			res.WorstSpurPower = p
			res.WorstSpurBin = k
		}
	}

	if res.FundamentalPower == 0 {
		return res, errNoFundamental
	}
	res.Spur_dBc = powerRatioTodB(res.WorstSpurPower / res.FundamentalPower)

	return res, nil
}

func binPower(c complex128) float64 {
	re, im := real(c), imag(c)
	return re*re + im*im
}

// powerRatioTodB converts a power ratio to decibels: 10 * log10(value).
// Returns -Inf for zero values.
func powerRatioTodB(value float64) float64 {
	if value == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(value)
}
