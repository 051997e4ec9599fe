package walker

import (
	"errors"
	"testing"
)

func TestNewCorpus(t *testing.T) {
	testCases := []struct {
		name    string
		records []SyllableRecord
		wantErr error
	}{
		{
			name:    "Valid corpus",
			records: []SyllableRecord{rec("ka", 100, 0), rec("ki", 50, 1)},
		},
		{
			name:    "Empty corpus",
			records: nil,
			wantErr: ErrCorpusEmpty,
		},
		{
			name:    "Empty syllable text",
			records: []SyllableRecord{rec("", 10, 0)},
			wantErr: ErrCorpusInvalid,
		},
		{
			name:    "Zero frequency",
			records: []SyllableRecord{rec("ka", 0, 0)},
			wantErr: ErrCorpusInvalid,
		},
		{
			name:    "Duplicate syllable",
			records: []SyllableRecord{rec("ka", 100, 0), rec("ka", 50, 1)},
			wantErr: ErrCorpusInvalid,
		},
		{
			name:    "Feature bits outside 12-bit range",
			records: []SyllableRecord{{Text: "ka", Frequency: 1, Features: FeatureVector(1 << 12)}},
			wantErr: ErrCorpusInvalid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCorpus(tc.records)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("NewCorpus() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("NewCorpus() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestCorpusLookups(t *testing.T) {
	c := tinyCorpus(t)

	if got := c.Size(); got != 3 {
		t.Errorf("Size() = %d, want 3", got)
	}
	if got := c.Record(0).Text; got != "ka" {
		t.Errorf("Record(0).Text = %q, want %q", got, "ka")
	}
	if got := c.Frequency(1); got != 50 {
		t.Errorf("Frequency(1) = %d, want 50", got)
	}
	if got := c.Features(2); got != FeatureVector(0b11) {
		t.Errorf("Features(2) = %v, want %v", got, FeatureVector(0b11))
	}

	i, ok := c.Index("ko")
	if !ok || i != 2 {
		t.Errorf("Index(ko) = (%d, %v), want (2, true)", i, ok)
	}
	if _, ok = c.Index("missing"); ok {
		t.Error("Index(missing) reported present")
	}
}

func TestCorpusCopiesInput(t *testing.T) {
	records := []SyllableRecord{rec("ka", 100, 0)}
	c, err := NewCorpus(records)
	if err != nil {
		t.Fatalf("NewCorpus() error = %v", err)
	}

	records[0].Frequency = 1
	if got := c.Frequency(0); got != 100 {
		t.Errorf("Frequency(0) = %d after caller mutation, want 100", got)
	}
}
