package cli

import (
	"fmt"

	"github.com/mikeydub/go-nostrss/profile"
	"github.com/mikeydub/go-nostrss/service/configstore"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Relay commands operate on the relays config file directly; the file
// is read by the broker at boot, so changes take effect on restart.
func relayCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "relay",
		Short: "Manage the default relay set",
	}

	cmd.PersistentFlags().StringVar(&file, "file", "relays.yaml", "relays config file")

	cmd.AddCommand(relayListCmd(&file))
	cmd.AddCommand(relayAddCmd(&file))
	cmd.AddCommand(relayDeleteCmd(&file))

	return cmd
}

func relayListCmd(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured relays",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			relays, err := configstore.LoadRelays(*file)
			if err != nil {
				return err
			}
			return printJSON(relays)
		},
	}
}

func relayAddCmd(file *string) *cobra.Command {
	var relay profile.Relay

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a relay to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			relays, err := configstore.LoadRelays(*file)
			if err != nil {
				return err
			}

			for _, existing := range relays {
				if existing.Name == relay.Name {
					return errors.Errorf("a relay named %s already exists", relay.Name)
				}
			}

			relays = append(relays, relay)
			if err := configstore.SaveRelays(*file, relays); err != nil {
				return err
			}

			fmt.Printf("relay %s added to %s\n", relay.Name, *file)
			return nil
		},
	}

	cmd.Flags().StringVar(&relay.Name, "name", "", "relay name (required)")
	cmd.Flags().StringVar(&relay.Target, "target", "", "relay websocket URL (required)")
	cmd.Flags().BoolVar(&relay.Active, "active", true, "whether events are published to this relay")
	cmd.Flags().IntVar(&relay.PowLevel, "pow-level", 0, "minimum proof-of-work difficulty this relay expects")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("target")

	return cmd
}

func relayDeleteCmd(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a relay from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			relays, err := configstore.LoadRelays(*file)
			if err != nil {
				return err
			}

			kept := relays[:0]
			for _, relay := range relays {
				if relay.Name != args[0] {
					kept = append(kept, relay)
				}
			}
			if len(kept) == len(relays) {
				return errors.Errorf("no relay named %s in %s", args[0], *file)
			}

			if err := configstore.SaveRelays(*file, kept); err != nil {
				return err
			}

			fmt.Printf("relay %s removed from %s\n", args[0], *file)
			return nil
		},
	}
}
