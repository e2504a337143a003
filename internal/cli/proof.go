package cli

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/TessVincent/prismhealth/internal/client"
	"github.com/TessVincent/prismhealth/internal/resolver"
)

func newProofCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "proof",
		Aliases: []string{"proofs"},
		Short:   "Record and read verification proofs",
	}
	cmd.AddCommand(
		newProofGenerateCommand(a),
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show a verification proof",
			Args:  cobra.ExactArgs(1),
			RunE: a.run(func(ctx context.Context, cmd *cobra.Command, c *client.Client, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				p, err := c.GetProof(ctx, id)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderFields(fmt.Sprintf("Proof %d", p.ID),
					f("Type", p.VerificationType),
					f("Result", p.Result.Hex()),
					f("Transaction", p.TransactionHash.Hex()),
					f("Recorded", renderTime(p.Timestamp)),
				))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "count",
			Short: "Count the account's proofs",
			Args:  cobra.NoArgs,
			RunE: a.run(func(ctx context.Context, cmd *cobra.Command, c *client.Client, _ []string) error {
				n, err := c.CountProofs(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderFields("Proofs", f("Count", n)))
				return nil
			}),
		},
	)
	return cmd
}

func newProofGenerateCommand(a *app) *cobra.Command {
	var (
		verificationType string
		result           string
		copyHash         bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Record a verification result as a proof",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, cmd *cobra.Command, c *client.Client, _ []string) error {
			handle, err := resolver.Normalize(result)
			if err != nil {
				return err
			}
			sub, err := c.GenerateProof(ctx, verificationType, handle)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderFields("Proof recorded",
				f("ID", sub.Result),
				f("Type", verificationType),
				f("Transaction", sub.TxHash.Hex()),
			))
			if copyHash {
				copyToClipboard(cmd, a, sub.TxHash)
			}
			return nil
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&verificationType, "type", "", "verification type, e.g. insurance")
	flags.StringVar(&result, "result", "", "result handle printed by a verify command")
	flags.BoolVar(&copyHash, "copy", false, "copy the transaction hash to the clipboard")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("result")
	return cmd
}

// copyToClipboard is best effort: headless hosts have no clipboard.
func copyToClipboard(cmd *cobra.Command, a *app, hash common.Hash) {
	if err := clipboard.WriteAll(hash.Hex()); err != nil {
		a.logger.Warn().Err(err).Msg("clipboard unavailable")
		fmt.Fprintln(cmd.ErrOrStderr(), labelStyle.Render("clipboard unavailable: "+err.Error()))
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render("transaction hash copied to clipboard"))
}
