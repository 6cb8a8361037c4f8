package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mikeydub/go-nostrss/broker"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	godotenv.Load()

	cfg := broker.Config{}

	cmd := &cobra.Command{
		Use:          "broker",
		Short:        "Poll RSS feeds and publish their entries to nostr relays",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return broker.Run(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.FeedsPath, "feeds", "", "feeds config file (yaml or json)")
	cmd.Flags().StringVar(&cfg.ProfilesPath, "profiles", "", "profiles config file (yaml or json)")
	cmd.Flags().StringVar(&cfg.RelaysPath, "relays", "", "relays config file (yaml or json)")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
	os.Exit(0)
}
