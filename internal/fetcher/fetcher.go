// Package fetcher retrieves raw search-page markup from source sites.
package fetcher

import "context"

// Fetcher downloads the markup of a single URL.
type Fetcher interface {
	// FetchHTML issues one GET and returns the response body as text.
	// Non-success statuses and transport failures are errors; there is no
	// retry — callers decide how to degrade.
	FetchHTML(ctx context.Context, url string) (string, error)
}
