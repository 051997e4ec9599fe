package walker

import (
	"fmt"
	"math/bits"
	"sort"
)

// MaxBuildDistance is the largest Hamming radius a neighbor graph can be
// built with.
const MaxBuildDistance = 3

// Neighbor is one adjacency entry: the corpus index of a nearby syllable and
// its Hamming distance from the owning syllable.
type Neighbor struct {
	Index    int
	Distance int
}

// NeighborGraph is a precomputed adjacency structure linking every syllable
// to the syllables whose feature vectors differ by at most the build
// distance. It is built once and never mutated, so a single graph is safe to
// share by reference across any number of concurrent walks.
type NeighborGraph struct {
	adjacency   [][]Neighbor
	maxDistance int
	edgeCount   int
	buckets     int
}

// BuildGraph constructs a neighbor graph over the corpus with edges for
// every syllable pair at Hamming distance 1..maxDistance. maxDistance must
// be between 1 and MaxBuildDistance.
//
// The feature space has only 2^12 = 4096 distinct patterns, so instead of
// comparing all pairs the corpus is partitioned into buckets keyed by exact
// feature pattern. For each occupied pattern p and each bit mask m with
// 1 <= popcount(m) <= maxDistance, the pattern q = p XOR m is at distance
// popcount(m) from p, and every syllable in bucket p is a neighbor of every
// syllable in bucket q. Each unordered bucket pair corresponds to exactly
// one mask, so no pair is visited twice and no deduplication is needed.
//
// Construction is a single synchronous pass intended to run once at startup;
// it can take seconds on large corpora but never fails for a valid corpus
// and a valid maxDistance.
func BuildGraph(corpus *Corpus, maxDistance int) (*NeighborGraph, error) {
	if maxDistance < 1 || maxDistance > MaxBuildDistance {
		return nil, fmt.Errorf("%w: max distance %d, want 1..%d", ErrInvalidParameter, maxDistance, MaxBuildDistance)
	}

	buckets := make(map[FeatureVector][]int)
	for i := 0; i < corpus.Size(); i++ {
		pattern := corpus.Features(i)
		buckets[pattern] = append(buckets[pattern], i)
	}

	g := &NeighborGraph{
		adjacency:   make([][]Neighbor, corpus.Size()),
		maxDistance: maxDistance,
		buckets:     len(buckets),
	}

	masks := flipMasks(maxDistance)
	for p, members := range buckets {
		for _, mask := range masks {
			q := p ^ mask
			// Visit each unordered bucket pair once.
			if q <= p {
				continue
			}
			others, occupied := buckets[q]
			if !occupied {
				continue
			}
			d := bits.OnesCount16(uint16(mask))
			for _, i := range members {
				for _, j := range others {
					g.adjacency[i] = append(g.adjacency[i], Neighbor{Index: j, Distance: d})
					g.adjacency[j] = append(g.adjacency[j], Neighbor{Index: i, Distance: d})
					g.edgeCount++
				}
			}
		}
	}

	// Syllables sharing an exact pattern are at distance 0 and never become
	// neighbors of each other: every mask flips at least one bit.
	for i := range g.adjacency {
		sortNeighbors(g.adjacency[i], corpus)
	}

	return g, nil
}

// sortNeighbors orders an adjacency list by ascending distance, then
// descending frequency, then ascending index. The index tie-break makes the
// built graph fully deterministic for a given corpus.
func sortNeighbors(list []Neighbor, corpus *Corpus) {
	sort.Slice(list, func(a, b int) bool {
		na, nb := list[a], list[b]
		if na.Distance != nb.Distance {
			return na.Distance < nb.Distance
		}
		fa, fb := corpus.Frequency(na.Index), corpus.Frequency(nb.Index)
		if fa != fb {
			return fa > fb
		}
		return na.Index < nb.Index
	})
}

// flipMasks returns every 12-bit mask with 1..maxDistance bits set. For
// maxDistance = 3 that is C(12,1)+C(12,2)+C(12,3) = 298 masks.
func flipMasks(maxDistance int) []FeatureVector {
	var masks []FeatureVector
	for m := 1; m <= featureMask; m++ {
		if bits.OnesCount16(uint16(m)) <= maxDistance {
			masks = append(masks, FeatureVector(m))
		}
	}
	return masks
}

// Neighbors returns the adjacency list for the syllable at the given corpus
// index, ordered by ascending distance then descending frequency. The
// returned slice is shared and must not be modified.
func (g *NeighborGraph) Neighbors(i int) []Neighbor {
	return g.adjacency[i]
}

// MaxDistance returns the Hamming radius the graph was built with.
func (g *NeighborGraph) MaxDistance() int {
	return g.maxDistance
}

// EdgeCount returns the number of undirected edges in the graph.
func (g *NeighborGraph) EdgeCount() int {
	return g.edgeCount
}

// OccupiedBuckets returns the number of distinct feature patterns present in
// the corpus the graph was built from.
func (g *NeighborGraph) OccupiedBuckets() int {
	return g.buckets
}
