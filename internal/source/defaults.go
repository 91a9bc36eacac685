package source

// DefaultRegistry returns the built-in repack sources. Adding a site means
// adding a Config here; there is no dynamic registration.
func DefaultRegistry() *Registry {
	reg, err := NewRegistry(
		Config{
			ID:      "steamrip",
			Name:    "SteamRIP",
			BaseURL: "https://steamrip.com",
			Schema:  SchemaDate,
			Selectors: Selectors{
				Container: ".post-element",
				Title:     ".the-post-title",
			},
			// SteamRIP listing links are root-relative.
			RelativeLinks: true,
		},
		Config{
			ID:      "fitgirl",
			Name:    "FitGirl",
			BaseURL: "https://fitgirl-repacks.site",
			Schema:  SchemaDate,
			Selectors: Selectors{
				Container: ".entry-title",
				Title:     "a",
				Date:      ".entry-meta .entry-date time",
				DateScope: "article",
			},
		},
		Config{
			ID:      "dodi",
			Name:    "DODI",
			BaseURL: "https://game-repack.site",
			Schema:  SchemaDate,
			Selectors: Selectors{
				Container: ".entry-title",
				Title:     "a",
				Date:      "time.entry-date.published",
				DateScope: "article",
			},
		},
		Config{
			ID:      "xatab",
			Name:    "xatab",
			BaseURL: "https://byxatab.com",
			Schema:  SchemaDate,
			Selectors: Selectors{
				Container: ".entry__title",
				Title:     "a",
				Date:      ".entry__info-categories",
				DateScope: ".entry",
			},
			PathSearch: true,
		},
	)
	if err != nil {
		panic(err)
	}
	return reg
}
