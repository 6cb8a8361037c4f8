package cli

import (
	"context"
	"fmt"

	"github.com/mikeydub/go-nostrss/controlapi/pb"
	"github.com/spf13/cobra"
)

func feedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Manage scheduled feeds",
	}

	cmd.AddCommand(feedListCmd())
	cmd.AddCommand(feedInfoCmd())
	cmd.AddCommand(feedAddCmd())
	cmd.AddCommand(feedDeleteCmd())

	return cmd
}

func feedListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scheduled feeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client pb.ControlClient) error {
				resp, err := client.FeedsList(ctx, &pb.FeedsListRequest{})
				if err != nil {
					return err
				}
				return printJSON(resp.Feeds)
			})
		},
	}
}

func feedInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <id>",
		Short: "Show a scheduled feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client pb.ControlClient) error {
				resp, err := client.FeedInfo(ctx, &pb.FeedInfoRequest{ID: args[0]})
				if err != nil {
					return err
				}
				return printJSON(resp.Feed)
			})
		},
	}
}

func feedAddCmd() *cobra.Command {
	var (
		feed      pb.FeedItem
		template  string
		cacheSize int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a new feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("template") {
				feed.Template = &template
			}
			if cmd.Flags().Changed("cache-size") {
				feed.CacheSize = &cacheSize
			}

			return withClient(func(ctx context.Context, client pb.ControlClient) error {
				if _, err := client.AddFeed(ctx, &pb.AddFeedRequest{Feed: feed, Save: saveFlag}); err != nil {
					return err
				}
				fmt.Printf("feed %s added\n", feed.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&feed.ID, "id", "", "feed id (required)")
	cmd.Flags().StringVar(&feed.Name, "name", "", "display name used by the {name} placeholder")
	cmd.Flags().StringVar(&feed.URL, "url", "", "feed URL (required)")
	cmd.Flags().StringVar(&feed.Schedule, "schedule", "", "six-field cron expression (required)")
	cmd.Flags().StringSliceVar(&feed.Profiles, "profiles", nil, "profile ids to publish through")
	cmd.Flags().StringSliceVar(&feed.Tags, "tags", nil, "hashtags attached to every event")
	cmd.Flags().StringVar(&template, "template", "", "path to the feed's template file")
	cmd.Flags().IntVar(&cacheSize, "cache-size", 0, "dedup cache capacity")
	cmd.Flags().IntVar(&feed.PowLevel, "pow-level", 0, "proof-of-work difficulty for this feed")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("url")
	cmd.MarkFlagRequired("schedule")

	return cmd
}

func feedDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Unschedule a feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client pb.ControlClient) error {
				if _, err := client.DeleteFeed(ctx, &pb.DeleteFeedRequest{ID: args[0], Save: saveFlag}); err != nil {
					return err
				}
				fmt.Printf("feed %s deleted\n", args[0])
				return nil
			})
		},
	}
}
