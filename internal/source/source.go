// Package source holds the per-site scrape configurations and the registry
// that resolves requested source identifiers against them.
package source

import (
	"net/url"
	"strings"

	"github.com/rotisserie/eris"
)

// Schema selects which optional field a source populates on its results.
type Schema int

const (
	// SchemaDate sources carry a publish date per item.
	SchemaDate Schema = iota + 1
	// SchemaVersion sources carry a release version string per item.
	SchemaVersion
)

// Selectors locate the pieces of one listing item within a search page.
type Selectors struct {
	// Container matches each result item on the page.
	Container string
	// Title matches the item's display name, within (or as) the container.
	Title string
	// Date matches the raw date element, looked up within DateScope.
	// Empty means the source exposes no date.
	Date string
	// DateScope is the ancestor element the date lookup is scoped to,
	// e.g. "article" or ".entry". Defaults to "article" when Date is set.
	DateScope string
	// Version matches the raw version string within the container.
	// Only consulted for SchemaVersion sources.
	Version string
}

// Config describes how to query one site and extract results from its markup.
// Configs are immutable after registry construction.
type Config struct {
	ID        string
	Name      string
	BaseURL   string
	Schema    Schema
	Selectors Selectors

	// PathSearch sites take the term as a path segment (/search/<term>)
	// instead of the usual ?s= query parameter.
	PathSearch bool

	// RelativeLinks sites emit root-relative detail hrefs that must be
	// joined with BaseURL.
	RelativeLinks bool
}

// Validate checks that the config is complete enough to scrape with.
func (c Config) Validate() error {
	if c.ID == "" {
		return eris.New("source: id is required")
	}
	if c.Name == "" {
		return eris.Errorf("source %s: display name is required", c.ID)
	}
	if c.BaseURL == "" {
		return eris.Errorf("source %s: base url is required", c.ID)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return eris.Errorf("source %s: invalid base url %q", c.ID, c.BaseURL)
	}
	if c.Schema != SchemaDate && c.Schema != SchemaVersion {
		return eris.Errorf("source %s: schema must be date or version", c.ID)
	}
	if c.Selectors.Container == "" {
		return eris.Errorf("source %s: container selector is required", c.ID)
	}
	if c.Selectors.Title == "" {
		return eris.Errorf("source %s: title selector is required", c.ID)
	}
	if c.Schema == SchemaVersion && c.Selectors.Version == "" {
		return eris.Errorf("source %s: version selector is required for version schema", c.ID)
	}
	return nil
}

// SearchURL builds the query URL for the given term.
func (c Config) SearchURL(term string) string {
	base := strings.TrimSuffix(c.BaseURL, "/")
	if c.PathSearch {
		return base + "/search/" + url.PathEscape(term)
	}
	return base + "/?s=" + url.QueryEscape(term)
}

// ResolveLink turns an extracted detail href into an absolute URL. Sites
// flagged RelativeLinks emit root-relative hrefs; everything else is already
// absolute in the markup.
func (c Config) ResolveLink(href string) string {
	if href == "" || !c.RelativeLinks {
		return href
	}
	return strings.TrimSuffix(c.BaseURL, "/") + "/" + strings.TrimPrefix(href, "/")
}

// SourceURL returns the canonical absolute site URL used for attribution.
func (c Config) SourceURL() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" {
		return c.BaseURL
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String()
}
