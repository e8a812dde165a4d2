package quest

import "errors"

var (
	// ErrUnknownEntry indicates that no solver is registered for a quest part.
	ErrUnknownEntry = errors.New("quest: no solver for quest part")

	// ErrMalformedInput indicates puzzle text that does not follow the
	// expected layout (missing lines, bad commands).
	ErrMalformedInput = errors.New("quest: malformed input")
)
