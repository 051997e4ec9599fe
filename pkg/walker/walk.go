package walker

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
)

// WalkStep is one element of a produced walk.
type WalkStep struct {
	Syllable  string `json:"syllable"`
	Frequency int    `json:"frequency"`
}

// Walker generates weighted random walks over a corpus and its neighbor
// graph. Both are read-only after construction, and every walk owns its own
// PRNG stream, so a single Walker serves unlimited concurrent callers
// without locking.
type Walker struct {
	corpus    *Corpus
	graph     *NeighborGraph
	profiles  *ProfileRegistry
	totalFreq int
	logger    *slog.Logger
}

// NewWalker creates a Walker over the given corpus and graph, preloaded with
// the built-in profile registry.
func NewWalker(corpus *Corpus, graph *NeighborGraph) *Walker {
	w := &Walker{
		corpus:   corpus,
		graph:    graph,
		profiles: NewProfileRegistry(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for i := 0; i < corpus.Size(); i++ {
		w.totalFreq += corpus.Frequency(i)
	}
	return w
}

// SetLogger sets the logger for the Walker. By default, all logs are
// discarded.
func (w *Walker) SetLogger(logger *slog.Logger) {
	if logger != nil {
		w.logger = logger
	}
}

// Profiles returns the Walker's profile registry, for listing or for
// registering configured extras at startup.
func (w *Walker) Profiles() *ProfileRegistry {
	return w.profiles
}

// walkOptions is used by the walk functions to configure default options.
type walkOptions struct {
	maxFlips        int
	temperature     float64
	frequencyWeight float64
	seed            uint64
	seeded          bool
}

// WalkOption is a function that configures walk parameters. It's used as a
// variadic argument in Walk and WalkFromProfile.
type WalkOption func(*walkOptions)

// WithMaxFlips sets the maximum number of feature bits a single step may
// flip. Must be between 1 and the radius the graph was built with.
func WithMaxFlips(n int) WalkOption {
	return func(o *walkOptions) { o.maxFlips = n }
}

// WithTemperature adjusts how sharply the walk favors close neighbors.
// Low values sharply prefer the smallest Hamming distance; high values
// flatten the distribution toward uniform-among-candidates. Must be > 0.
func WithTemperature(t float64) WalkOption {
	return func(o *walkOptions) { o.temperature = t }
}

// WithFrequencyWeight biases candidate selection by corpus frequency:
// positive values favor common syllables, negative values favor rare ones,
// zero is frequency-neutral. Must be within [-2, 2].
func WithFrequencyWeight(fw float64) WalkOption {
	return func(o *walkOptions) { o.frequencyWeight = fw }
}

// WithSeed makes the walk deterministic: two walks with identical
// parameters and the same seed produce identical output. Without it, each
// walk seeds itself from the process entropy source.
func WithSeed(seed uint64) WalkOption {
	return func(o *walkOptions) {
		o.seed = seed
		o.seeded = true
	}
}

// defaultWalkOptions mirrors the "dialect" preset, with the flip radius
// capped at whatever the graph was actually built with.
func (w *Walker) defaultWalkOptions() *walkOptions {
	maxFlips := 2
	if maxFlips > w.graph.MaxDistance() {
		maxFlips = w.graph.MaxDistance()
	}
	return &walkOptions{
		maxFlips:        maxFlips,
		temperature:     0.7,
		frequencyWeight: 0.0,
	}
}

// Walk produces a walk of exactly steps syllables starting from the given
// syllable text. The start syllable itself is not part of the output.
//
// Each step samples among the current syllable's neighbors within the flip
// radius, weighting a candidate at distance d with frequency f as
//
//	exp(-d/temperature) * f^frequencyWeight
//
// If no neighbor lies within the radius, the radius widens one step at a
// time up to the graph's build distance; if the syllable has no neighbors at
// all, the step falls back to a frequency-weighted draw over the whole
// corpus so the walk always reaches full length.
func (w *Walker) Walk(start string, steps int, opts ...WalkOption) ([]WalkStep, error) {
	options := w.defaultWalkOptions()
	for _, opt := range opts {
		opt(options)
	}

	current, ok := w.corpus.Index(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSyllable, start)
	}
	if err := w.validateOptions(steps, options); err != nil {
		return nil, err
	}

	// One PRNG stream per call, consumed sequentially: the whole walk is a
	// deterministic function of (corpus, graph, start, parameters, seed).
	var rng *rand.Rand
	if options.seeded {
		rng = rand.New(rand.NewPCG(options.seed, options.seed))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	walk := make([]WalkStep, 0, steps)
	for len(walk) < steps {
		next := w.step(rng, current, options)
		rec := w.corpus.Record(next)
		walk = append(walk, WalkStep{Syllable: rec.Text, Frequency: rec.Frequency})
		current = next
	}
	return walk, nil
}

// WalkFromProfile resolves a named profile and walks with its parameters.
// steps <= 0 uses the profile's own step count. Options are applied on top
// of the profile, so WithSeed composes with any preset.
func (w *Walker) WalkFromProfile(start, profile string, steps int, opts ...WalkOption) ([]WalkStep, error) {
	p, err := w.profiles.Resolve(profile)
	if err != nil {
		return nil, err
	}
	if steps <= 0 {
		steps = p.Steps
	}
	profileOpts := []WalkOption{
		WithMaxFlips(p.MaxFlips),
		WithTemperature(p.Temperature),
		WithFrequencyWeight(p.FrequencyWeight),
	}
	return w.Walk(start, steps, append(profileOpts, opts...)...)
}

// RandomSyllable returns a syllable chosen uniformly at random from the
// corpus, using the process entropy source. It is a convenience default
// starting point and is deliberately not covered by the deterministic walk
// contract.
func (w *Walker) RandomSyllable() string {
	return w.corpus.Record(rand.IntN(w.corpus.Size())).Text
}

func (w *Walker) validateOptions(steps int, o *walkOptions) error {
	if steps < 1 {
		return fmt.Errorf("%w: steps %d, want >= 1", ErrInvalidParameter, steps)
	}
	if o.maxFlips < 1 || o.maxFlips > w.graph.MaxDistance() {
		return fmt.Errorf("%w: max flips %d, want 1..%d", ErrInvalidParameter, o.maxFlips, w.graph.MaxDistance())
	}
	if o.temperature <= 0 {
		return fmt.Errorf("%w: temperature %g, want > 0", ErrInvalidParameter, o.temperature)
	}
	if o.frequencyWeight < -2 || o.frequencyWeight > 2 {
		return fmt.Errorf("%w: frequency weight %g, want -2..2", ErrInvalidParameter, o.frequencyWeight)
	}
	return nil
}

// step selects the next syllable index from current's candidates.
func (w *Walker) step(rng *rand.Rand, current int, o *walkOptions) int {
	neighbors := w.graph.Neighbors(current)

	var candidates []Neighbor
	for radius := o.maxFlips; radius <= w.graph.MaxDistance() && len(candidates) == 0; radius++ {
		// Adjacency lists are sorted by distance, so candidates within the
		// radius form a prefix.
		end := 0
		for end < len(neighbors) && neighbors[end].Distance <= radius {
			end++
		}
		candidates = neighbors[:end]
	}

	if len(candidates) == 0 {
		// Isolated syllable even at the graph's full radius: draw from the
		// whole corpus in proportion to frequency.
		w.logger.Debug("No neighbors within built radius, falling back to corpus-wide draw",
			slog.String("syllable", w.corpus.Record(current).Text),
			slog.Int("max_flips", o.maxFlips),
			slog.Int("graph_max_distance", w.graph.MaxDistance()),
		)
		return w.fallbackDraw(rng)
	}

	// Weights are computed in log space and shifted by the maximum before
	// exponentiating. At very low temperatures exp(-d/temperature) underflows
	// to zero for every candidate; the shift keeps the best candidate at
	// weight 1 so the draw still favors the smallest distance.
	logWeights := make([]float64, len(candidates))
	maxLog := math.Inf(-1)
	for i, cand := range candidates {
		lw := -float64(cand.Distance)/o.temperature +
			o.frequencyWeight*math.Log(float64(w.corpus.Frequency(cand.Index)))
		logWeights[i] = lw
		if lw > maxLog {
			maxLog = lw
		}
	}
	weights := make([]float64, len(candidates))
	var totalWeight float64
	for i, lw := range logWeights {
		weights[i] = math.Exp(lw - maxLog)
		totalWeight += weights[i]
	}

	randChoice := rng.Float64() * totalWeight
	for i, cand := range candidates {
		randChoice -= weights[i]
		if randChoice < 0 {
			return cand.Index
		}
	}
	// Floating point rounding can leave a sliver of randChoice unspent.
	return candidates[len(candidates)-1].Index
}

// fallbackDraw samples a corpus index in proportion to raw frequency.
func (w *Walker) fallbackDraw(rng *rand.Rand) int {
	randChoice := rng.IntN(w.totalFreq)
	for i := 0; i < w.corpus.Size(); i++ {
		randChoice -= w.corpus.Frequency(i)
		if randChoice < 0 {
			return i
		}
	}
	return w.corpus.Size() - 1
}
