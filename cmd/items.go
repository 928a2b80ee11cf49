package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"reorder/core/ordering"

	"github.com/spf13/cobra"
)

// ownerID is shared by the list maintenance commands.
var ownerID string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print a user's list in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd, func(ctx context.Context, a *app) ([]ordering.Item, error) {
			return a.items.List(ctx, ownerID)
		})
	},
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Respace a user's list to multiples of the step",
	Long: `Rewrites every key of the list in one transaction so that the k-th item
sits at k*step. Order is preserved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd, func(ctx context.Context, a *app) ([]ordering.Item, error) {
			return a.items.Normalize(ctx, ownerID)
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace a user's list with a fresh seed",
	Long: `Deletes every item of the user and recreates the seeded list.
The old list is snapshotted first when storage is enabled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd, func(ctx context.Context, a *app) ([]ordering.Item, error) {
			return a.items.Reset(ctx, ownerID)
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{listCmd, normalizeCmd, resetCmd} {
		c.Flags().StringVar(&ownerID, "owner", "", "Id of the list owner")
		_ = c.MarkFlagRequired("owner")
		RootCmd.AddCommand(c)
	}
}

func withEngine(cmd *cobra.Command, fn func(context.Context, *app) ([]ordering.Item, error)) error {
	if strings.TrimSpace(ownerID) == "" {
		return fmt.Errorf("--owner must not be empty")
	}
	ctx := context.Background()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	list, err := fn(ctx, a)
	if err != nil {
		return err
	}
	return printItems(cmd.OutOrStdout(), list)
}

// printItems writes the list as an aligned table.
func printItems(w io.Writer, list []ordering.Item) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tLABEL\tPOSITION\tCOLOR")
	for i, item := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%g\t%s\n", i+1, item.ID, item.Label, item.Position, item.Color)
	}
	return tw.Flush()
}
