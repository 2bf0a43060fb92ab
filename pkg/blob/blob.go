// Package blob abstracts the binary store behind image and signature
// uploads. The table only ever holds the URLs this package returns.
package blob

import "context"

// StoredObject describes a stored binary.
type StoredObject struct {
	URL          string
	ThumbnailURL string // empty for signatures
	SizeBytes    int
}

// Store persists uploaded binaries and returns their public URLs.
type Store interface {
	// StoreImage persists an image payload under the given id and returns
	// the image and thumbnail URLs.
	StoreImage(ctx context.Context, imageID, base64Data string) (*StoredObject, error)

	// StoreSignature persists a signature payload under the given id.
	StoreSignature(ctx context.Context, signatureID, base64Data string) (*StoredObject, error)
}
