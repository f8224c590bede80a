package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	pkgerrors "github.com/pricepulse-au/pricepulse-backend/pkg/errors"
)

// Source supplies raw feed text for a catalog load.
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

// HTTPSource fetches the feed snapshot over HTTP.
type HTTPSource struct {
	httpClient *http.Client
	url        string
}

// Option configures optional source behavior.
type Option func(*HTTPSource)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *HTTPSource) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// WithTimeout overrides the default client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(s *HTTPSource) {
		if timeout > 0 {
			s.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// NewHTTPSource builds an HTTP feed source for the given URL.
func NewHTTPSource(url string, opts ...Option) (*HTTPSource, error) {
	trimmed := strings.TrimSpace(url)
	if trimmed == "" {
		return nil, fmt.Errorf("feed url is required")
	}

	source := &HTTPSource{
		url:        trimmed,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(source)
		}
	}
	return source, nil
}

// Fetch retrieves the feed body. A 404 maps to a not-found error so the
// provider can log the missing snapshot distinctly from transport failures.
func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build feed request")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch feed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", pkgerrors.New(pkgerrors.CodeNotFound, "feed snapshot not found")
	}
	if resp.StatusCode != http.StatusOK {
		return "", pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("feed responded with status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read feed body")
	}
	return string(body), nil
}

// FileSource reads the feed snapshot from local disk.
type FileSource struct {
	path string
}

// NewFileSource builds a file-backed feed source.
func NewFileSource(path string) (*FileSource, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("feed path is required")
	}
	return &FileSource{path: trimmed}, nil
}

// Fetch reads the snapshot file.
func (s *FileSource) Fetch(_ context.Context) (string, error) {
	body, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "feed snapshot not found")
		}
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read feed snapshot")
	}
	return string(body), nil
}
