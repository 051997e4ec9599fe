package walker

import (
	"fmt"
	"testing"
)

// rec builds a syllable record from a raw feature bit pattern.
func rec(text string, freq int, features uint16) SyllableRecord {
	return SyllableRecord{Text: text, Frequency: freq, Features: FeatureVector(features)}
}

// tinyCorpus is the three-syllable example corpus: ka and ki differ by one
// bit, ki and ko by one bit, ka and ko by two.
func tinyCorpus(t *testing.T) *Corpus {
	t.Helper()
	c, err := NewCorpus([]SyllableRecord{
		rec("ka", 100, 0b000000000000),
		rec("ki", 50, 0b000000000001),
		rec("ko", 10, 0b000000000011),
	})
	if err != nil {
		t.Fatalf("NewCorpus() error = %v", err)
	}
	return c
}

// setupWalker builds a Walker over the example corpus with the given radius.
func setupWalker(t *testing.T, maxDistance int) *Walker {
	t.Helper()
	corpus := tinyCorpus(t)
	graph, err := BuildGraph(corpus, maxDistance)
	if err != nil {
		t.Fatalf("BuildGraph(%d) error = %v", maxDistance, err)
	}
	return NewWalker(corpus, graph)
}

// clusterCorpus generates count syllables spread across a handful of nearby
// feature patterns, for brute-force comparison and statistical tests.
func clusterCorpus(t *testing.T, count int) *Corpus {
	t.Helper()
	patterns := []uint16{
		0b000000000000, 0b000000000001, 0b000000000011, 0b000000000111,
		0b000000001000, 0b000000011000, 0b100000000000, 0b110000000000,
	}
	records := make([]SyllableRecord, count)
	for i := range records {
		records[i] = rec(fmt.Sprintf("syl%03d", i), 1+(i*7)%97, patterns[i%len(patterns)])
	}
	c, err := NewCorpus(records)
	if err != nil {
		t.Fatalf("NewCorpus() error = %v", err)
	}
	return c
}
