package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/vo1x/gamesdexer-api/internal/fetcher"
	"github.com/vo1x/gamesdexer-api/internal/search"
	"github.com/vo1x/gamesdexer-api/internal/source"
)

var searchSources []string

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Run a one-shot search and print the results as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sources := searchSources
		if len(sources) == 0 {
			sources = cfg.Search.DefaultSources
		}

		f := fetcher.NewHTTPFetcher(time.Duration(cfg.Fetch.TimeoutSecs) * time.Second)
		svc := search.NewService(source.DefaultRegistry(), f)

		resp, err := svc.Search(cmd.Context(), args[0], sources)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return eris.Wrap(err, "search: encode results")
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	searchCmd.Flags().StringSliceVar(&searchSources, "repacks", nil, "source ids to query (default from config)")
	rootCmd.AddCommand(searchCmd)
}
