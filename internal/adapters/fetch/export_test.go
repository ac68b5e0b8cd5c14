package fetch

import "net/http"

// NewWithClient exposes newWithClient for tests.
func NewWithClient(root string, client *http.Client) *Fetcher {
	return newWithClient(root, client)
}

// SetMaxSize overrides the document size limit.
func (f *Fetcher) SetMaxSize(n int64) {
	f.maxSize = n
}
