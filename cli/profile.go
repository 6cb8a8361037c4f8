package cli

import (
	"context"
	"fmt"

	"github.com/mikeydub/go-nostrss/controlapi/pb"
	"github.com/mikeydub/go-nostrss/util"
	"github.com/spf13/cobra"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage publishing profiles",
	}

	cmd.AddCommand(profileListCmd())
	cmd.AddCommand(profileInfoCmd())
	cmd.AddCommand(profileAddCmd())
	cmd.AddCommand(profileDeleteCmd())

	return cmd
}

func profileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client pb.ControlClient) error {
				resp, err := client.ProfilesList(ctx, &pb.ProfilesListRequest{})
				if err != nil {
					return err
				}
				return printJSON(resp.Profiles)
			})
		},
	}
}

func profileInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <id>",
		Short: "Show a registered profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client pb.ControlClient) error {
				resp, err := client.ProfileInfo(ctx, &pb.ProfileInfoRequest{ID: args[0]})
				if err != nil {
					return err
				}
				return printJSON(resp.Profile)
			})
		},
	}
}

func profileAddCmd() *cobra.Command {
	var (
		id          string
		privateKey  string
		name        string
		displayName string
		description string
		picture     string
		banner      string
		nip05       string
		lud16       string
		powLevel    int
		recommended []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			item := pb.NewProfileItem{
				ID:                id,
				PrivateKey:        privateKey,
				Name:              util.StringToPointerIfNotEmpty(name),
				DisplayName:       util.StringToPointerIfNotEmpty(displayName),
				Description:       util.StringToPointerIfNotEmpty(description),
				Picture:           util.StringToPointerIfNotEmpty(picture),
				Banner:            util.StringToPointerIfNotEmpty(banner),
				Nip05:             util.StringToPointerIfNotEmpty(nip05),
				Lud16:             util.StringToPointerIfNotEmpty(lud16),
				RecommendedRelays: recommended,
			}
			if cmd.Flags().Changed("pow-level") {
				item.PowLevel = &powLevel
			}

			return withClient(func(ctx context.Context, client pb.ControlClient) error {
				if _, err := client.AddProfile(ctx, &pb.AddProfileRequest{Profile: item, Save: saveFlag}); err != nil {
					return err
				}
				fmt.Printf("profile %s added\n", id)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "profile id (required)")
	cmd.Flags().StringVar(&privateKey, "private-key", "", "hex or nsec private key (required)")
	cmd.Flags().StringVar(&name, "name", "", "profile name")
	cmd.Flags().StringVar(&displayName, "display-name", "", "display name")
	cmd.Flags().StringVar(&description, "description", "", "about text")
	cmd.Flags().StringVar(&picture, "picture", "", "picture URL")
	cmd.Flags().StringVar(&banner, "banner", "", "banner URL")
	cmd.Flags().StringVar(&nip05, "nip05", "", "NIP-05 identifier")
	cmd.Flags().StringVar(&lud16, "lud16", "", "lightning address")
	cmd.Flags().IntVar(&powLevel, "pow-level", 0, "proof-of-work difficulty for this profile")
	cmd.Flags().StringSliceVar(&recommended, "recommended-relays", nil, "relay names to tag as recommended")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("private-key")

	return cmd
}

func profileDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client pb.ControlClient) error {
				if _, err := client.DeleteProfile(ctx, &pb.DeleteProfileRequest{ID: args[0], Save: saveFlag}); err != nil {
					return err
				}
				fmt.Printf("profile %s deleted\n", args[0])
				return nil
			})
		},
	}
}
