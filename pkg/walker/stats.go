package walker

// CorpusStats holds aggregated statistics for a corpus and its neighbor
// graph, as served by the stats API.
type CorpusStats struct {
	TotalSyllables      int     `json:"total_syllables"`
	TotalFrequency      int     `json:"total_frequency"`
	MaxNeighborDistance int     `json:"max_neighbor_distance"`
	EdgeCount           int     `json:"edge_count"`
	OccupiedBuckets     int     `json:"occupied_buckets"`
	MeanNeighbors       float64 `json:"mean_neighbors"`
	IsolatedSyllables   int     `json:"isolated_syllables"`
}

// Stats returns a snapshot of corpus and graph statistics.
func Stats(corpus *Corpus, graph *NeighborGraph) CorpusStats {
	stats := CorpusStats{
		TotalSyllables:      corpus.Size(),
		MaxNeighborDistance: graph.MaxDistance(),
		EdgeCount:           graph.EdgeCount(),
		OccupiedBuckets:     graph.OccupiedBuckets(),
	}
	for i := 0; i < corpus.Size(); i++ {
		stats.TotalFrequency += corpus.Frequency(i)
		if len(graph.Neighbors(i)) == 0 {
			stats.IsolatedSyllables++
		}
	}
	// Each undirected edge contributes two adjacency entries.
	stats.MeanNeighbors = float64(2*graph.EdgeCount()) / float64(corpus.Size())
	return stats
}
