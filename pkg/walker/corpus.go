package walker

import "fmt"

// SyllableRecord is one annotated syllable as produced by the upstream
// feature-annotation pipeline.
type SyllableRecord struct {
	Text      string        `json:"syllable"`
	Frequency int           `json:"frequency"`
	Features  FeatureVector `json:"features"`
}

// Corpus is an immutable, ordered table of annotated syllables with an O(1)
// text lookup. Once constructed it is never mutated, so a single Corpus is
// safe to share by reference across any number of concurrent readers.
type Corpus struct {
	records []SyllableRecord
	index   map[string]int
}

// NewCorpus validates the given records and freezes them into a Corpus.
// It returns ErrCorpusEmpty for an empty slice and ErrCorpusInvalid for an
// empty or duplicate syllable text or a frequency below 1. The record slice
// is copied, so the caller may reuse its backing array.
func NewCorpus(records []SyllableRecord) (*Corpus, error) {
	if len(records) == 0 {
		return nil, ErrCorpusEmpty
	}

	c := &Corpus{
		records: make([]SyllableRecord, len(records)),
		index:   make(map[string]int, len(records)),
	}
	copy(c.records, records)

	for i, rec := range c.records {
		if rec.Text == "" {
			return nil, fmt.Errorf("%w: record %d has empty syllable text", ErrCorpusInvalid, i)
		}
		if rec.Frequency < 1 {
			return nil, fmt.Errorf("%w: syllable %q has frequency %d, want >= 1", ErrCorpusInvalid, rec.Text, rec.Frequency)
		}
		if rec.Features&^featureMask != 0 {
			return nil, fmt.Errorf("%w: syllable %q has feature bits outside the 12-bit range", ErrCorpusInvalid, rec.Text)
		}
		if prev, dup := c.index[rec.Text]; dup {
			return nil, fmt.Errorf("%w: syllable %q appears at both index %d and %d", ErrCorpusInvalid, rec.Text, prev, i)
		}
		c.index[rec.Text] = i
	}

	return c, nil
}

// Size returns the number of syllables in the corpus.
func (c *Corpus) Size() int {
	return len(c.records)
}

// Record returns the syllable record at the given index.
func (c *Corpus) Record(i int) SyllableRecord {
	return c.records[i]
}

// Frequency returns the corpus frequency of the syllable at the given index.
func (c *Corpus) Frequency(i int) int {
	return c.records[i].Frequency
}

// Features returns the feature vector of the syllable at the given index.
func (c *Corpus) Features(i int) FeatureVector {
	return c.records[i].Features
}

// Index returns the index of the syllable with the given text, if present.
func (c *Corpus) Index(text string) (int, bool) {
	i, ok := c.index[text]
	return i, ok
}
