package mechanism

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lorepozo/skn/view"
)

// NewStochastic returns a trivial demonstration mechanism: on every
// iteration it reports a Gamma-distributed access count per item in the
// context (favoring lower ids, via a shape parameter of 1/(1+id)), and
// grows a new artifact on even iterations. It exists to exercise a
// Network end to end without the external synthesis engine, the way the
// original reference program drove its knowledge graph with an inline
// closure rather than the real learner.
func NewStochastic(rng *rand.Rand) Mechanism {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return func(ctx *view.Context, iteration uint64) error {
		for _, a := range ctx.List() {
			shape := 1.0 / (1.0 + float64(a.ID))
			cnt := 100 * sampleGamma(rng, shape)
			if err := ctx.RecordAccess(a.ID, uint64(cnt)); err != nil {
				return err
			}
		}
		if iteration%2 == 0 {
			if _, err := ctx.Grow(fmt.Sprintf("stochastic-%d", iteration)); err != nil {
				return err
			}
		}
		return nil
	}
}

// sampleGamma draws from a Gamma(shape, 1) distribution via the
// Marsaglia-Tsang method. Shapes below 1 are handled by boosting to
// shape+1 and correcting with a uniform draw, per the standard
// transformation.
func sampleGamma(rng *rand.Rand, shape float64) float64 {
	if shape <= 0 {
		return 0
	}
	boost := 1.0
	if shape < 1 {
		boost = math.Pow(rng.Float64(), 1/shape)
		shape += 1
	}
	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9*d)
	for {
		x := rng.NormFloat64()
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := rng.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v * boost
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v * boost
		}
	}
}
