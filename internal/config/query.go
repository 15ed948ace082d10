package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/cours-de-latin/paradigma"
)

// Check rejects raw when it is longer than MaxInputRunes or expands to
// more than MaxCandidates spellings. Zero limits are not enforced.
func (q QueryConfig) Check(raw string) error {
	if err := q.checkLength(raw); err != nil {
		return err
	}
	if n := paradigma.CandidateCount(raw); q.MaxCandidates > 0 && n > q.MaxCandidates {
		return fmt.Errorf("%q expands to %d spellings, limit %d: %w", raw, n, q.MaxCandidates, paradigma.ErrTooAmbiguous)
	}
	return nil
}

func (q QueryConfig) checkLength(raw string) error {
	if n := utf8.RuneCountInString(raw); q.MaxInputRunes > 0 && n > q.MaxInputRunes {
		return fmt.Errorf("%d characters, at most %d: %w", n, q.MaxInputRunes, paradigma.ErrInputTooLong)
	}
	return nil
}

// Query looks raw up in idx under the same limits as Check.
func (q QueryConfig) Query(idx *paradigma.Index, raw string) ([]paradigma.Entry, error) {
	if err := q.checkLength(raw); err != nil {
		return nil, err
	}
	return idx.QueryLimited(raw, q.MaxCandidates)
}

// CheckBatch rejects a batch of more than MaxBatchWords words, then
// checks every word.
func (q QueryConfig) CheckBatch(words []string) error {
	if q.MaxBatchWords > 0 && len(words) > q.MaxBatchWords {
		return fmt.Errorf("%d words, at most %d: %w", len(words), q.MaxBatchWords, ErrBatchTooLarge)
	}
	for _, w := range words {
		if err := q.Check(w); err != nil {
			return err
		}
	}
	return nil
}

// MaxBatchBytes bounds the encoded size of a batch request body. It fits
// MaxBatchWords words at the rune limit with each rune escaped as a
// surrogate pair, plus 1 KiB for the envelope. It returns 0 when either
// limit is unset.
func (q QueryConfig) MaxBatchBytes() int64 {
	if q.MaxBatchWords <= 0 || q.MaxInputRunes <= 0 {
		return 0
	}
	perWord := int64(q.MaxInputRunes)*12 + 8
	return int64(q.MaxBatchWords)*perWord + 1024
}
