// Package extract pulls structured results out of a source's search-page
// markup using the source's configured selectors.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"github.com/vo1x/gamesdexer-api/internal/model"
	"github.com/vo1x/gamesdexer-api/internal/normalize"
	"github.com/vo1x/gamesdexer-api/internal/source"
)

// Results parses a search page and extracts one SearchResult per container
// match, in document order. Containers whose title resolves empty are
// dropped: many matches are decorative wrappers, not listings. Per-item
// anomalies never fail the call; only unparseable input does.
func Results(html string, cfg source.Config) ([]model.SearchResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, eris.Wrapf(err, "extract: parse %s markup", cfg.ID)
	}

	var results []model.SearchResult
	doc.Find(cfg.Selectors.Container).Each(func(_ int, item *goquery.Selection) {
		name := itemTitle(item, cfg.Selectors.Title)
		if name == "" {
			return
		}

		res := model.SearchResult{
			Name:   name,
			Repack: cfg.Name,
			Source: cfg.SourceURL(),
		}

		if href, ok := item.Find("a").First().Attr("href"); ok {
			res.URL = cfg.ResolveLink(href)
		}

		switch cfg.Schema {
		case source.SchemaDate:
			if raw := itemDate(item, cfg.Selectors); raw != "" {
				res.Date = normalize.Date(raw)
			}
		case source.SchemaVersion:
			res.Version = strings.TrimSpace(item.Find(cfg.Selectors.Version).First().Text())
		}

		results = append(results, res)
	})

	return results, nil
}

// itemTitle resolves the display name within (or as) the container.
func itemTitle(item *goquery.Selection, sel string) string {
	t := item.Find(sel).First()
	if t.Length() == 0 && item.Is(sel) {
		t = item
	}
	return strings.TrimSpace(t.Text())
}

// itemDate finds the raw date within the item's ancestor scope, preferring a
// machine-readable datetime attribute over element text.
func itemDate(item *goquery.Selection, sel source.Selectors) string {
	if sel.Date == "" {
		return ""
	}
	scope := sel.DateScope
	if scope == "" {
		scope = "article"
	}

	el := item.Closest(scope).Find(sel.Date).First()
	if dt, ok := el.Attr("datetime"); ok && strings.TrimSpace(dt) != "" {
		return strings.TrimSpace(dt)
	}
	return strings.TrimSpace(el.Text())
}
