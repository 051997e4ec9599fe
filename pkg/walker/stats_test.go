package walker

import "testing"

func TestStats(t *testing.T) {
	corpus := tinyCorpus(t)
	graph, err := BuildGraph(corpus, 2)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	got := Stats(corpus, graph)
	want := CorpusStats{
		TotalSyllables:      3,
		TotalFrequency:      160,
		MaxNeighborDistance: 2,
		EdgeCount:           3,
		OccupiedBuckets:     3,
		MeanNeighbors:       2,
		IsolatedSyllables:   0,
	}
	if got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestStatsCountsIsolated(t *testing.T) {
	corpus, err := NewCorpus([]SyllableRecord{
		rec("ka", 100, 0b000000000000),
		rec("iso", 10, 0b111111000000),
	})
	if err != nil {
		t.Fatalf("NewCorpus() error = %v", err)
	}
	graph, err := BuildGraph(corpus, 1)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	got := Stats(corpus, graph)
	if got.IsolatedSyllables != 2 {
		t.Errorf("IsolatedSyllables = %d, want 2", got.IsolatedSyllables)
	}
	if got.EdgeCount != 0 {
		t.Errorf("EdgeCount = %d, want 0", got.EdgeCount)
	}
}
