package hourbook

import "errors"

// The book reports failures through these sentinels, wrapped with
// context. Callers match them with errors.Is and recover by re-prompting
// (validation), showing a specific message (duplicate), or treating the
// operation as a no-op (not found). Validation never degrades into a
// silent default: the legacy behavior of coercing unparsable amounts to
// zero is deliberately not reproduced.
var (
	// ErrValidation reports malformed numeric, date or required-field input.
	ErrValidation = errors.New("invalid input")
	// ErrDuplicate reports a uniqueness violation on an (owner, mobile) pair.
	ErrDuplicate = errors.New("already registered")
	// ErrNotFound reports an operation targeting a client or entry that does
	// not exist, or does not belong to the stated parent.
	ErrNotFound = errors.New("not found")
)
