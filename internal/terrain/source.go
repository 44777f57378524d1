package terrain

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source is the 2D noise signal the fractal synthesizer layers. The native
// gradient noise satisfies it, and so does opensimplex.Noise.
type Source interface {
	Eval2(x, y float64) float64
}

// Backend names accepted by NewSource.
const (
	BackendGradient = "gradient"
	BackendSimplex  = "simplex"
)

// NewSource builds a seeded noise source for the named backend. The empty
// name selects the gradient backend.
func NewSource(backend string, seed int64) (Source, error) {
	switch backend {
	case BackendGradient, "":
		return NewNoiseField(NewGradientTable(seed)), nil
	case BackendSimplex:
		return opensimplex.New(seed), nil
	}
	return nil, &ConfigError{Field: "noise.backend", Reason: fmt.Sprintf("unknown backend %q", backend)}
}
