package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vo1x/gamesdexer-api/internal/source"
)

// Selector shapes below mirror the real sites: a title-only container with a
// relative link (SteamRIP), an article-wrapped heading with a <time> element
// (FitGirl/DODI), and an .entry wrapper with a text-only date (xatab).

func steamripConfig() source.Config {
	return source.Config{
		ID:      "steamrip",
		Name:    "SteamRIP",
		BaseURL: "https://example.com",
		Schema:  source.SchemaDate,
		Selectors: source.Selectors{
			Container: ".post-element",
			Title:     ".the-post-title",
		},
		RelativeLinks: true,
	}
}

func fitgirlConfig() source.Config {
	return source.Config{
		ID:      "fitgirl",
		Name:    "FitGirl",
		BaseURL: "https://fitgirl-repacks.site",
		Schema:  source.SchemaDate,
		Selectors: source.Selectors{
			Container: ".entry-title",
			Title:     "a",
			Date:      ".entry-meta .entry-date time",
			DateScope: "article",
		},
	}
}

func xatabConfig() source.Config {
	return source.Config{
		ID:      "xatab",
		Name:    "xatab",
		BaseURL: "https://byxatab.com",
		Schema:  source.SchemaDate,
		Selectors: source.Selectors{
			Container: ".entry__title",
			Title:     "a",
			Date:      ".entry__info-categories",
			DateScope: ".entry",
		},
		PathSearch: true,
	}
}

func TestResults_TitleOnlyContainer_RelativeLink(t *testing.T) {
	html := `<html><body>
<div class="post-element">
  <h2 class="the-post-title">Game One</h2>
  <a href="/game/123">Download</a>
</div>
</body></html>`

	results, err := Results(html, steamripConfig())
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "Game One", results[0].Name)
	assert.Equal(t, "https://example.com/game/123", results[0].URL)
	assert.Equal(t, "SteamRIP", results[0].Repack)
	assert.Equal(t, "https://example.com/", results[0].Source)
	assert.Empty(t, results[0].Date)
	assert.Empty(t, results[0].Version)
}

func TestResults_ArticleScope_DatetimeAttrPreferred(t *testing.T) {
	html := `<html><body>
<article>
  <h1 class="entry-title"><a href="https://fitgirl-repacks.site/game-two/">Game Two</a></h1>
  <div class="entry-meta">
    <span class="entry-date">
      <time class="entry-date" datetime="2024-03-15T10:30:00+03:00">some display text</time>
    </span>
  </div>
</article>
</body></html>`

	results, err := Results(html, fitgirlConfig())
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "Game Two", results[0].Name)
	assert.Equal(t, "https://fitgirl-repacks.site/game-two/", results[0].URL)
	assert.Equal(t, "March 15, 2024", results[0].Date)
}

func TestResults_ArticleScope_TextFallbackWhenNoAttr(t *testing.T) {
	html := `<html><body>
<article>
  <h1 class="entry-title"><a href="https://fitgirl-repacks.site/game-three/">Game Three</a></h1>
  <div class="entry-meta">
    <span class="entry-date"><time> 2023-12-09 </time></span>
  </div>
</article>
</body></html>`

	results, err := Results(html, fitgirlConfig())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "December 9, 2023", results[0].Date)
}

func TestResults_EntryScope_TextDate(t *testing.T) {
	html := `<html><body>
<div class="entry">
  <h2 class="entry__title"><a href="https://byxatab.com/games/four">Game Four</a></h2>
  <div class="entry__info-categories">15-03-2024, 10:30</div>
</div>
</body></html>`

	results, err := Results(html, xatabConfig())
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "Game Four", results[0].Name)
	assert.Equal(t, "March 15, 2024", results[0].Date)
	assert.Equal(t, "https://byxatab.com/games/four", results[0].URL)
}

func TestResults_UnparseableDate_KeptRaw(t *testing.T) {
	html := `<html><body>
<div class="entry">
  <h2 class="entry__title"><a href="https://byxatab.com/games/five">Game Five</a></h2>
  <div class="entry__info-categories">Action / RPG</div>
</div>
</body></html>`

	results, err := Results(html, xatabConfig())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Action / RPG", results[0].Date)
}

func TestResults_EmptyTitleDropped(t *testing.T) {
	html := `<html><body>
<div class="post-element"><h2 class="the-post-title">   </h2></div>
<div class="post-element"></div>
<div class="post-element">
  <h2 class="the-post-title">Real Game</h2>
  <a href="/real-game">x</a>
</div>
</body></html>`

	results, err := Results(html, steamripConfig())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Real Game", results[0].Name)
}

func TestResults_DocumentOrderPreserved(t *testing.T) {
	html := `<html><body>
<div class="post-element"><h2 class="the-post-title">First</h2></div>
<div class="post-element"><h2 class="the-post-title">Second</h2></div>
<div class="post-element"><h2 class="the-post-title">Third</h2></div>
</body></html>`

	results, err := Results(html, steamripConfig())
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "First", results[0].Name)
	assert.Equal(t, "Second", results[1].Name)
	assert.Equal(t, "Third", results[2].Name)
}

func TestResults_ContainerIsTitleElement(t *testing.T) {
	// When the container itself matches the title selector, its own text is
	// the name.
	cfg := source.Config{
		ID:      "heading",
		Name:    "Heading",
		BaseURL: "https://heading.example",
		Schema:  source.SchemaDate,
		Selectors: source.Selectors{
			Container: ".entry-title",
			Title:     ".entry-title",
		},
	}

	html := `<html><body>
<h1 class="entry-title"><a href="https://heading.example/one">Game One</a></h1>
</body></html>`

	results, err := Results(html, cfg)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Game One", results[0].Name)
}

func TestResults_MissingLink_NoURL(t *testing.T) {
	html := `<div class="post-element"><h2 class="the-post-title">Linkless</h2></div>`

	results, err := Results(html, steamripConfig())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].URL)
}

func TestResults_VersionSchema(t *testing.T) {
	cfg := source.Config{
		ID:      "versioned",
		Name:    "Versioned",
		BaseURL: "https://versioned.example",
		Schema:  source.SchemaVersion,
		Selectors: source.Selectors{
			Container: ".release",
			Title:     ".release-name",
			Version:   ".release-version",
		},
	}

	html := `<html><body>
<div class="release">
  <span class="release-name">Game Six</span>
  <span class="release-version"> v1.2.3 </span>
  <a href="https://versioned.example/six">dl</a>
</div>
</body></html>`

	results, err := Results(html, cfg)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "Game Six", results[0].Name)
	assert.Equal(t, "v1.2.3", results[0].Version)
	assert.Empty(t, results[0].Date)
}

func TestResults_NoContainers_EmptyResult(t *testing.T) {
	results, err := Results("<html><body><p>nothing here</p></body></html>", steamripConfig())
	require.NoError(t, err)
	assert.Empty(t, results)
}
