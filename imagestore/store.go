package imagestore

import (
	"context"
	"os"
)

// ErrNotFound is returned when an image reference does not resolve.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store resolves an item's image reference to the raw image bytes.
//
// References are whatever the surrounding upload layer stored on the item
// record: an object key, a URL or a relative path, depending on the Store
// implementation.
type Store interface {
	// Fetch reads the image identified by ref.
	Fetch(ctx context.Context, ref string) ([]byte, error)
}
