// Package cli implements the nostrss command line client: a thin
// wrapper over the broker's grpc control plane plus local relay config
// editing.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mikeydub/go-nostrss/controlapi"
	"github.com/mikeydub/go-nostrss/controlapi/pb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const rpcTimeout = 10 * time.Second

var saveFlag bool

// New builds the root nostrss command.
func New() *cobra.Command {
	root := &cobra.Command{
		Use:           "nostrss",
		Short:         "Control a running nostrss broker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&saveFlag, "save", "s", false, "persist the change to the broker's config file")

	root.AddCommand(stateCmd())
	root.AddCommand(feedCmd())
	root.AddCommand(profileCmd())
	root.AddCommand(relayCmd())

	return root
}

// Execute runs the CLI and returns a process exit code. A failed RPC
// prints its status but still exits zero; only an unreachable broker
// (or local usage error) is fatal.
func Execute() int {
	viper.SetDefault("GRPC_ADDRESS", controlapi.DefaultAddress)
	viper.AutomaticEnv()

	if err := New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// withClient dials the broker and runs fn against the control client.
func withClient(fn func(ctx context.Context, client pb.ControlClient) error) error {
	target := viper.GetString("GRPC_ADDRESS")

	conn, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(pb.CodecName)),
	)
	if err != nil {
		return errors.Wrapf(err, "failed to connect to %s", target)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	err = fn(ctx, pb.NewControlClient(conn))
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() == codes.Unavailable || st.Code() == codes.DeadlineExceeded {
		return errors.Wrapf(err, "broker unreachable at %s", target)
	}

	// The broker answered with an application error; report it without
	// failing the process.
	fmt.Fprintf(os.Stderr, "%s: %s\n", st.Code(), st.Message())
	return nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Report broker liveness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, client pb.ControlClient) error {
				resp, err := client.State(ctx, &pb.StateRequest{})
				if err != nil {
					return err
				}
				fmt.Println(resp.State)
				return nil
			})
		},
	}
}
