package main

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vo1x/gamesdexer-api/internal/api"
	"github.com/vo1x/gamesdexer-api/internal/fetcher"
	"github.com/vo1x/gamesdexer-api/internal/search"
	"github.com/vo1x/gamesdexer-api/internal/source"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the search API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if servePort != 0 {
			cfg.Server.Port = servePort
		}

		f := fetcher.NewHTTPFetcher(time.Duration(cfg.Fetch.TimeoutSecs) * time.Second)
		svc := search.NewService(source.DefaultRegistry(), f)
		srv := api.NewServer(svc, *cfg)

		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
