package blob

import (
	"context"
	"fmt"
)

// MockStore fabricates stable URLs without persisting any bytes. It stands
// in for the real binary store in every environment that has none; the
// mobile client only needs the URL shape to be right.
type MockStore struct {
	baseURL string
}

// NewMockStore creates a MockStore. An empty baseURL uses the default.
func NewMockStore(baseURL string) *MockStore {
	if baseURL == "" {
		baseURL = "https://mock-storage.com"
	}
	return &MockStore{baseURL: baseURL}
}

// StoreImage implements Store.
func (s *MockStore) StoreImage(ctx context.Context, imageID, base64Data string) (*StoredObject, error) {
	return &StoredObject{
		URL:          fmt.Sprintf("%s/images/%s.jpg", s.baseURL, imageID),
		ThumbnailURL: fmt.Sprintf("%s/thumbnails/%s_thumb.jpg", s.baseURL, imageID),
		SizeBytes:    decodedSize(base64Data),
	}, nil
}

// StoreSignature implements Store.
func (s *MockStore) StoreSignature(ctx context.Context, signatureID, base64Data string) (*StoredObject, error) {
	return &StoredObject{
		URL:       fmt.Sprintf("%s/signatures/%s.png", s.baseURL, signatureID),
		SizeBytes: decodedSize(base64Data),
	}, nil
}

// decodedSize estimates the decoded byte count of a base64 payload without
// decoding it.
func decodedSize(base64Data string) int {
	return int(float64(len(base64Data)) * 0.75)
}
