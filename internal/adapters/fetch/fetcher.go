// Package fetch implements the Fetcher port for a published digest site,
// served either over http(s) or from a local directory.
package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxDocumentSize caps the size of a single document. Larger documents are
// rejected rather than truncated.
const maxDocumentSize = 64 << 20

// Fetcher implements ports.Fetcher.
type Fetcher struct {
	root       string
	httpClient *http.Client
	maxSize    int64
}

// New creates a Fetcher for the site at root, which is an http(s) base URL or a
// local directory. timeout bounds each HTTP request.
func New(root string, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = domain.DefaultFetchTimeout
	}
	return newWithClient(root, &http.Client{Timeout: timeout})
}

// newWithClient creates a Fetcher with a custom http client (used for testing).
func newWithClient(root string, client *http.Client) *Fetcher {
	return &Fetcher{
		root:       strings.TrimSpace(root),
		httpClient: client,
		maxSize:    maxDocumentSize,
	}
}

// Fetch returns the body of the document at ref.
func (f *Fetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, domain.ErrEmptyReference
	}
	if domain.HasScheme(ref) {
		return f.get(ctx, ref)
	}

	rel, err := siteRelative(ref)
	if err != nil {
		return nil, err
	}
	if domain.HasScheme(f.root) {
		target, err := url.JoinPath(f.root, rel)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentRead.Error()), "path", ref)
		}
		return f.get(ctx, target)
	}
	return f.read(ctx, rel)
}

// siteRelative cleans ref into a slash path below the site root.
func siteRelative(ref string) (string, error) {
	clean := path.Clean(strings.TrimPrefix(ref, "/"))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", zerr.With(domain.ErrReferenceOutsideRoot, "path", ref)
	}
	return clean, nil
}

func (f *Fetcher) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentRead.Error()), "url", target)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentRead.Error()), "url", target)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := zerr.With(domain.ErrFetchStatus, "status_code", resp.StatusCode)
		return nil, zerr.With(statusErr, "url", target)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentRead.Error()), "url", target)
	}
	if int64(len(body)) > f.maxSize {
		return nil, zerr.With(zerr.With(domain.ErrDocumentTooLarge, "limit", f.maxSize), "url", target)
	}
	return body, nil
}

func (f *Fetcher) read(ctx context.Context, rel string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	root := f.root
	if root == "" {
		root = "."
	}
	p := filepath.Join(root, filepath.FromSlash(rel))

	//nolint:gosec // Path is confined to the configured site root
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentRead.Error()), "path", p)
	}
	if int64(len(data)) > f.maxSize {
		return nil, zerr.With(zerr.With(domain.ErrDocumentTooLarge, "limit", f.maxSize), "path", p)
	}
	return data, nil
}
