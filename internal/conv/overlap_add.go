package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// overlapAdd is the FFT full convolution of signal with kernel. The signal
// is cut into blocks of at least 256 samples; each block is transformed,
// multiplied with the kernel spectrum and its tail added to the next.
func overlapAdd(signal, kernel []float64) ([]float64, error) {
	block := max(nextPowerOf2(len(kernel)), 256)
	size := nextPowerOf2(block + len(kernel) - 1)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("conv: fft plan of size %d: %w", size, err)
	}

	spectrum := make([]complex128, size)
	for i, v := range kernel {
		spectrum[i] = complex(v, 0)
	}
	if err := plan.Forward(spectrum, spectrum); err != nil {
		return nil, fmt.Errorf("conv: kernel fft: %w", err)
	}

	out := make([]float64, len(signal)+len(kernel)-1)
	buf := make([]complex128, size)
	for start := 0; start < len(signal); start += block {
		end := min(start+block, len(signal))

		clear(buf)
		empty := true
		for i, v := range signal[start:end] {
			if v != 0 {
				empty = false
			}
			buf[i] = complex(v, 0)
		}
		// Spectra are mostly zero outside the passband.
		if empty {
			continue
		}

		if err := plan.Forward(buf, buf); err != nil {
			return nil, fmt.Errorf("conv: block fft: %w", err)
		}
		for i := range buf {
			buf[i] *= spectrum[i]
		}
		if err := plan.Inverse(buf, buf); err != nil {
			return nil, fmt.Errorf("conv: block inverse fft: %w", err)
		}

		tail := min(end-start+len(kernel)-1, len(out)-start)
		for i := range tail {
			out[start+i] += real(buf[i])
		}
	}
	return out, nil
}
