package googleads

import (
	"context"
	"encoding/hex"
	"time"

	"golang.org/x/crypto/blake2b"
)

// CachedAsset is an image asset that was uploaded before
type CachedAsset struct {
	CustomerID   string    `json:"customerId"`
	Fingerprint  string    `json:"fingerprint"`
	ResourceName string    `json:"resourceName"`
	SourceURL    string    `json:"sourceUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AssetRepository defines the contract for the local image asset cache
type AssetRepository interface {
	Find(ctx context.Context, customerID, fingerprint string) (*CachedAsset, error)
	Save(ctx context.Context, asset *CachedAsset) error
}

// Image is a downloaded image ready to be uploaded as an asset
type Image struct {
	URL      string
	Data     []byte
	MimeType MimeType
}

// Fingerprint identifies image content the way the asset service
// deduplicates it: by the bytes alone.
func (img *Image) Fingerprint() string {
	sum := blake2b.Sum256(img.Data)
	return hex.EncodeToString(sum[:])
}

// ImageSource downloads images
type ImageSource interface {
	Fetch(ctx context.Context, url string) (*Image, error)
}
