package scheduling

import "fmt"

// Kind classifies the errors the core can raise at its boundary. Only the
// loading/universe-building phase and RunGA's up-front input check ever
// return one of these; a single chromosome evaluation never fails, it just
// scores -1e9 (see ScoreFloor).
type Kind string

const (
	// KindMissingInput means one of the five input documents was not
	// supplied or could not be read.
	KindMissingInput Kind = "missing_input"
	// KindParseError means a document was malformed or an array field
	// is missing or empty.
	KindParseError Kind = "parse_error"
	// KindNoFeasibleFlights means the universe builder produced zero
	// flight templates.
	KindNoFeasibleFlights Kind = "no_feasible_flights"
	// KindMissingData means RunGA was invoked with empty routes,
	// universe, or OD demand.
	KindMissingData Kind = "missing_data"
)

// Error is the typed error surfaced at the core's boundary.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// ErrNoFeasibleFlights reports that the universe builder produced no
// flight templates from the given routes/forbidden set.
func ErrNoFeasibleFlights() error {
	return newError(KindNoFeasibleFlights, "no feasible flights built from routes/slots", nil)
}

// ErrMissingData reports that RunGA was invoked without the data it needs.
func ErrMissingData(msg string) error {
	return newError(KindMissingData, msg, nil)
}

// ErrParseError reports that an input document was malformed or an
// array field was missing/empty. Used by the loader package.
func ErrParseError(msg string, err error) error {
	return newError(KindParseError, msg, err)
}

// ErrMissingInput reports that one of the five input documents was not
// supplied or could not be read. No package in this module returns it:
// the CLI reports file-open failures as plain os errors, and the HTTP
// layer passes absent documents to the loaders, which report ParseError.
func ErrMissingInput(msg string) error {
	return newError(KindMissingInput, msg, nil)
}
