package walker

import (
	"encoding/json"
	"fmt"
	"math/bits"
	"strings"
)

// FeatureCount is the number of phonetic feature bits in a FeatureVector.
const FeatureCount = 12

// featureMask covers all valid feature bits.
const featureMask = (1 << FeatureCount) - 1

// FeatureNames lists the phonetic features in canonical bit order: index i
// in this slice corresponds to bit i of a FeatureVector.
var FeatureNames = [FeatureCount]string{
	"starts_with_vowel",
	"starts_with_cluster",
	"starts_with_heavy_cluster",
	"contains_plosive",
	"contains_fricative",
	"contains_liquid",
	"contains_nasal",
	"short_vowel",
	"long_vowel",
	"ends_with_vowel",
	"ends_with_nasal",
	"ends_with_stop",
}

// FeatureVector is a fixed 12-bit encoding of the phonetic structural
// properties of a syllable. Bit i corresponds to FeatureNames[i].
type FeatureVector uint16

// Get reports whether the feature at the given bit index is set.
func (v FeatureVector) Get(bit int) bool {
	return v&(1<<bit) != 0
}

// Set returns a copy of the vector with the feature at the given bit index
// set or cleared.
func (v FeatureVector) Set(bit int, on bool) FeatureVector {
	if on {
		return v | (1 << bit)
	}
	return v &^ (1 << bit)
}

// Distance returns the Hamming distance between two feature vectors: the
// number of bit positions at which they differ.
func (v FeatureVector) Distance(o FeatureVector) int {
	return bits.OnesCount16(uint16(v ^ o))
}

// String renders the vector as a fixed-width bit string, highest bit first.
func (v FeatureVector) String() string {
	var sb strings.Builder
	for i := FeatureCount - 1; i >= 0; i-- {
		if v.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// MarshalJSON encodes the vector in the named-boolean object form used by
// the upstream annotation pipeline:
//
//	{"starts_with_vowel": false, "starts_with_cluster": true, ...}
func (v FeatureVector) MarshalJSON() ([]byte, error) {
	m := make(map[string]bool, FeatureCount)
	for i, name := range FeatureNames {
		m[name] = v.Get(i)
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes the named-boolean object form. All 12 canonical
// features must be present; unknown keys are rejected so that a renamed or
// reordered upstream feature set fails loudly at load time.
func (v *FeatureVector) UnmarshalJSON(data []byte) error {
	var m map[string]bool
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	parsed, err := featuresFromMap(m)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// featuresFromMap converts the named-boolean form into a packed vector,
// validating that the feature set is exactly the canonical one.
func featuresFromMap(m map[string]bool) (FeatureVector, error) {
	if len(m) != FeatureCount {
		return 0, fmt.Errorf("%w: got %d features, want %d", ErrCorpusInvalid, len(m), FeatureCount)
	}
	var v FeatureVector
	for i, name := range FeatureNames {
		on, ok := m[name]
		if !ok {
			return 0, fmt.Errorf("%w: missing feature %q", ErrCorpusInvalid, name)
		}
		v = v.Set(i, on)
	}
	return v, nil
}
