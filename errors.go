package matchgo

import (
	"errors"
)

var (
	// ErrUnknownKind is returned when the subject of a ranking call has no
	// Lost/Found discriminant set. Candidates with an unknown kind are
	// silently skipped instead; only the subject is mandatory.
	ErrUnknownKind = errors.New("item kind unknown")
)
