// Package sampler draws posterior samples from an infergo model with
// component-wise adaptive random-walk Metropolis. The models here have at
// most five parameters with closed-form but non-differentiated densities, so
// a gradient-free scheme is a good trade: no autodiff code generation step,
// and mixing is more than adequate at the chain lengths used.
package sampler

import (
	"math"
	"sync"

	"bitbucket.org/dtolpin/infergo/model"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/puttfit/puttfit/pkg/models"
)

// Config controls a sampling run.
type Config struct {
	// Chains is the number of independent chains, run concurrently.
	Chains int
	// Iterations is the number of post-warmup draws kept per chain.
	Iterations int
	// Warmup is the number of discarded adaptation iterations per chain.
	Warmup int
	// Seed makes runs reproducible; each chain derives its own stream.
	Seed uint64
	// InitialStep is the starting proposal scale for every dimension.
	InitialStep float64
}

// DefaultConfig matches the case-study run lengths.
func DefaultConfig() Config {
	return Config{
		Chains:      4,
		Iterations:  2000,
		Warmup:      1000,
		Seed:        1,
		InitialStep: 0.5,
	}
}

func (c Config) validate() error {
	if c.Chains < 1 {
		return errors.Errorf("need at least one chain, got %d", c.Chains)
	}
	if c.Iterations < 1 || c.Warmup < 0 {
		return errors.Errorf("invalid chain lengths: %d iterations, %d warmup", c.Iterations, c.Warmup)
	}
	if c.InitialStep <= 0 {
		return errors.Errorf("initial proposal step must be positive, got %v", c.InitialStep)
	}
	return nil
}

// Chains holds the constrained-scale draws of a completed run.
type Chains struct {
	ParameterNames []string
	// Draws is indexed chain, iteration, parameter.
	Draws [][][]float64
	// Acceptance is the post-warmup acceptance rate per chain.
	Acceptance []float64
}

// NumChains returns the chain count.
func (c *Chains) NumChains() int { return len(c.Draws) }

// Parameter returns the per-chain draws of one parameter.
func (c *Chains) Parameter(i int) [][]float64 {
	out := make([][]float64, len(c.Draws))
	for ch, draws := range c.Draws {
		col := make([]float64, len(draws))
		for it, draw := range draws {
			col[it] = draw[i]
		}
		out[ch] = col
	}
	return out
}

// Pooled returns all chains' draws of one parameter concatenated.
func (c *Chains) Pooled(i int) []float64 {
	var out []float64
	for _, col := range c.Parameter(i) {
		out = append(out, col...)
	}
	return out
}

// Sampler runs adaptive Metropolis chains for a model spec.
type Sampler struct {
	cfg Config
}

func New(cfg Config) *Sampler {
	return &Sampler{cfg: cfg}
}

// Sample runs the configured chains concurrently and collects their draws.
// A chain whose starting point has a non-finite log density fails the run;
// mid-chain non-finite proposals are simply rejected.
func (s *Sampler) Sample(spec models.Spec) (*Chains, error) {
	if err := s.cfg.validate(); err != nil {
		return nil, err
	}

	chains := &Chains{
		ParameterNames: spec.ParameterNames(),
		Draws:          make([][][]float64, s.cfg.Chains),
		Acceptance:     make([]float64, s.cfg.Chains),
	}
	errs := make([]error, s.cfg.Chains)

	var wg sync.WaitGroup
	for ch := 0; ch < s.cfg.Chains; ch++ {
		wg.Add(1)
		go func(ch int) {
			defer wg.Done()
			draws, acceptance, err := s.runChain(spec, ch)
			if err != nil {
				errs[ch] = errors.Wrapf(err, "chain %d", ch)
				return
			}
			chains.Draws[ch] = draws
			chains.Acceptance[ch] = acceptance
		}(ch)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return chains, nil
}

// target acceptance rate for one-dimension-at-a-time proposals
const targetAcceptance = 0.44

const adaptWindow = 50

func (s *Sampler) runChain(spec models.Spec, chain int) ([][]float64, float64, error) {
	src := rand.NewSource(s.cfg.Seed + uint64(chain)*1000003)
	rng := rand.New(src)
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	x := append([]float64(nil), spec.Init()...)
	dims := len(x)
	for d := range x {
		// jitter the shared starting point so chains are distinguishable
		x[d] += 0.1 * normal.Rand()
	}

	lp := logDensity(spec, x)
	if math.IsInf(lp, -1) {
		return nil, 0, errors.Errorf("initial point has zero posterior density")
	}

	scales := make([]float64, dims)
	for d := range scales {
		scales[d] = s.cfg.InitialStep
	}

	logger := log.WithFields(log.Fields{"model": spec.Name(), "chain": chain})
	logger.Debugf("starting chain: %d warmup + %d iterations", s.cfg.Warmup, s.cfg.Iterations)

	draws := make([][]float64, 0, s.cfg.Iterations)
	proposal := append([]float64(nil), x...)
	windowAccepts := make([]int, dims)
	windowTotal := 0
	accepted, total := 0, 0

	for iter := 0; iter < s.cfg.Warmup+s.cfg.Iterations; iter++ {
		warmup := iter < s.cfg.Warmup
		for d := 0; d < dims; d++ {
			copy(proposal, x)
			proposal[d] += scales[d] * normal.Rand()
			next := logDensity(spec, proposal)
			if math.Log(rng.Float64()) < next-lp {
				x[d] = proposal[d]
				lp = next
				if warmup {
					windowAccepts[d]++
				} else {
					accepted++
				}
			}
			if !warmup {
				total++
			}
		}

		if warmup {
			windowTotal++
			if windowTotal == adaptWindow {
				for d := range scales {
					rate := float64(windowAccepts[d]) / adaptWindow
					scales[d] *= math.Exp(1.5 * (rate - targetAcceptance))
					scales[d] = math.Min(math.Max(scales[d], 1e-6), 1e3)
					windowAccepts[d] = 0
				}
				windowTotal = 0
			}
			continue
		}
		draws = append(draws, spec.Transform(x))
	}

	acceptance := float64(accepted) / float64(total)
	logger.WithField("acceptance", acceptance).Debug("chain finished")
	return draws, acceptance, nil
}

// logDensity evaluates the model, mapping NaN to an impossible point so a
// stray out-of-domain proposal is rejected rather than propagated.
func logDensity(m model.Model, x []float64) float64 {
	lp := m.Observe(x)
	if math.IsNaN(lp) {
		return math.Inf(-1)
	}
	return lp
}
