package port

import "context"

// ObjectStorage abstracts object downloads from a bucket fixed at
// construction time. The ingest CLI uses it to fetch document exports.
type ObjectStorage interface {
	Download(ctx context.Context, key string) ([]byte, error)
}
