package ports

import "context"

// Fetcher retrieves published documents.
//
//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Fetch returns the body of the document at ref.
	// ref is either an http(s) URL or a path relative to the site root.
	Fetch(ctx context.Context, ref string) ([]byte, error)
}
