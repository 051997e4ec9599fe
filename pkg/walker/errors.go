package walker

import "errors"

var (
	// ErrCorpusEmpty indicates a corpus was constructed from zero records.
	ErrCorpusEmpty = errors.New("walker: corpus must contain at least one syllable")
	// ErrCorpusInvalid indicates a malformed record at corpus construction.
	ErrCorpusInvalid = errors.New("walker: invalid corpus record")
	// ErrUnknownSyllable indicates a start syllable absent from the corpus.
	ErrUnknownSyllable = errors.New("walker: syllable not in corpus")
	// ErrUnknownProfile indicates an unrecognized walk profile name.
	ErrUnknownProfile = errors.New("walker: unknown walk profile")
	// ErrInvalidParameter indicates a walk or build parameter outside its
	// documented range.
	ErrInvalidParameter = errors.New("walker: parameter out of range")
)
