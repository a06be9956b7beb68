package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"adsexamples/internal/domain/googleads"
)

// MaxImageSize is the largest image the asset service accepts (5120 KB)
const MaxImageSize = 5120 << 10

type imageSource struct {
	httpClient *http.Client
	basePath   string
}

// NewImageSource creates an image source that downloads http(s) URLs with
// httpClient and reads file:// URLs relative to basePath.
func NewImageSource(httpClient *http.Client, basePath string) googleads.ImageSource {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &imageSource{httpClient: httpClient, basePath: basePath}
}

func (s *imageSource) Fetch(ctx context.Context, url string) (*googleads.Image, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(url, "file://") {
		data, err = s.readFile(strings.TrimPrefix(url, "file://"))
	} else {
		data, err = s.download(ctx, url)
	}
	if err != nil {
		return nil, err
	}

	return &googleads.Image{
		URL:      url,
		Data:     data,
		MimeType: DetectMimeType(data),
	}, nil
}

func (s *imageSource) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", googleads.ErrImageFetchFailed, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", googleads.ErrImageFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", googleads.ErrImageFetchFailed, url, resp.Status)
	}

	return readLimited(resp.Body, url)
}

// sanitizePath prevents directory traversal out of basePath
func (s *imageSource) sanitizePath(path string) string {
	cleaned := filepath.Clean(path)
	cleaned = strings.TrimPrefix(cleaned, "/")
	if strings.HasPrefix(cleaned, "..") {
		return ""
	}
	return cleaned
}

func (s *imageSource) readFile(path string) ([]byte, error) {
	sanitized := s.sanitizePath(path)
	if sanitized == "" || s.basePath == "" {
		return nil, fmt.Errorf("%w: invalid path %q", googleads.ErrImageFetchFailed, path)
	}

	f, err := os.Open(filepath.Join(s.basePath, sanitized))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", googleads.ErrImageFetchFailed, err)
	}
	defer f.Close()

	return readLimited(f, path)
}

func readLimited(r io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", googleads.ErrImageFetchFailed, err)
	}
	if len(data) > MaxImageSize {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", googleads.ErrImageFetchFailed, name, MaxImageSize)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", googleads.ErrImageFetchFailed, name)
	}
	return data, nil
}

// DetectMimeType sniffs the image format, falling back to JPEG
func DetectMimeType(data []byte) googleads.MimeType {
	switch http.DetectContentType(data) {
	case "image/png":
		return googleads.MimeTypeImagePNG
	case "image/gif":
		return googleads.MimeTypeImageGIF
	default:
		return googleads.MimeTypeImageJPEG
	}
}
