package response

import (
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-xover/dsp/core"
	"github.com/cwbudde/algo-xover/dsp/filter/passive"
)

// Impulse returns size samples of the impulse response of b at sampleRate.
//
// H is sampled on the FFT grid k·sampleRate/size for k = 0..size/2,
// mirrored into a conjugate-symmetric spectrum and inverse transformed.
// The response is periodic in size samples, so size should cover the decay
// of the lowest crossover frequency. The samples sum to H(0).
func Impulse(b passive.Branch, sampleRate float64, size int) ([]float64, error) {
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if !core.IsFinitePositive(sampleRate) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRate, sampleRate)
	}

	l, err := ladderOf(b)
	if err != nil {
		return nil, err
	}

	spec := make([]complex128, size)
	spec[0] = complex(l.dcGain(), 0)
	half := size / 2
	for k := 1; k <= half; k++ {
		w := core.AngularFrequency(float64(k) * sampleRate / float64(size))
		spec[k] = l.transfer(w)
	}
	// The Nyquist bin of a real signal is real.
	spec[half] = complex(real(spec[half]), 0)
	for k := 1; k < half; k++ {
		spec[size-k] = cmplx.Conj(spec[k])
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	timeDomain := make([]complex128, size)
	if err := plan.Inverse(timeDomain, spec); err != nil {
		return nil, fmt.Errorf("response: inverse FFT failed: %w", err)
	}

	out := make([]float64, size)
	for i, c := range timeDomain {
		out[i] = real(c)
	}

	return out, nil
}
