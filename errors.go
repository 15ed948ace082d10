package paradigma

import "errors"

var (
	// ErrUnknownTable is returned when a rule table name cannot be resolved.
	ErrUnknownTable = errors.New("unknown rule table")
	// ErrMalformedTable is returned when a rule table has the wrong number of slots.
	ErrMalformedTable = errors.New("malformed rule table")
	// ErrMalformedEntry is returned for a lexicon record that cannot be parsed.
	ErrMalformedEntry = errors.New("malformed lexicon entry")
	// ErrTooAmbiguous is returned when a query expands past the candidate ceiling.
	ErrTooAmbiguous = errors.New("query too ambiguous")
	// ErrInputTooLong is returned by front ends that cap query length.
	ErrInputTooLong = errors.New("query too long")
)
