package publisher

import (
	"context"
	"errors"

	"pitemp"
)

// ErrNotCreated reports that the index store accepted the request but did
// not create the document.
var ErrNotCreated = errors.New("document not created")

// Publisher writes readings to the index store. EnsureIndex is called once
// at startup; Publish writes exactly one document per call, with no retry
// and no queue.
type Publisher interface {
	EnsureIndex(ctx context.Context) error
	Publish(ctx context.Context, r pitemp.Reading) error
}
