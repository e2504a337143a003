package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TessVincent/prismhealth/internal/client"
	"github.com/TessVincent/prismhealth/models"
)

func newScoreCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute, store and show the encrypted health score",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "compute",
			Short: "Compute the score from the latest health record without storing it",
			Args:  cobra.NoArgs,
			RunE: a.run(func(ctx context.Context, cmd *cobra.Command, c *client.Client, _ []string) error {
				v, err := c.ComputeScore(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderScore("Computed health score", v))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "store",
			Short: "Compute the score and store it as the current one",
			Args:  cobra.NoArgs,
			RunE: a.run(func(ctx context.Context, cmd *cobra.Command, c *client.Client, _ []string) error {
				txHash, err := c.StoreScore(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderFields("Health score stored", f("Transaction", txHash.Hex())))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "show",
			Short: "Decrypt the stored score",
			Args:  cobra.NoArgs,
			RunE: a.run(func(ctx context.Context, cmd *cobra.Command, c *client.Client, _ []string) error {
				v, err := c.DecryptScore(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderScore("Health score", v))
				return nil
			}),
		},
	)
	return cmd
}

func renderScore(title string, v models.ScoreValues) string {
	return renderFields(title,
		f("Total", v.TotalScore),
		f("Cardiovascular", v.Cardiovascular),
		f("Metabolic", v.Metabolic),
		f("Exercise", v.Exercise),
		f("Medication", v.Medication),
		f("Risk", renderRisk(v.RiskLevel)),
		f("Computed", renderTime(v.Timestamp)),
	)
}
