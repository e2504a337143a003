package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TessVincent/prismhealth/internal/client"
	"github.com/TessVincent/prismhealth/models"
)

func newInfoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show what the ledger node advertises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			transport, err := a.transport()
			if err != nil {
				return err
			}
			info, err := transport.LedgerInfo(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderLedgerInfo(info, a.build))
			return nil
		},
	}
}

func newConnectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Check the protocol and log in with the account key",
		Args:  cobra.NoArgs,
		RunE: a.run(func(_ context.Context, cmd *cobra.Command, c *client.Client, _ []string) error {
			info := c.Info()
			fmt.Fprintln(cmd.OutOrStdout(), renderFields("Connected",
				f("Chain", info.ChainID),
				f("Contract", info.ContractAddress.Hex()),
				f("Protocol", info.ProtocolID),
			))
			return nil
		}),
	}
}

func renderLedgerInfo(info models.LedgerInfo, build models.AppBuildInfo) string {
	return renderFields("Ledger",
		f("Chain", info.ChainID),
		f("Contract", info.ContractAddress.Hex()),
		f("Protocol", info.ProtocolID),
		f("Oracle", info.Oracle.VerifyingContract.Hex()),
		f("Node version", info.Build.Version),
		f("Client version", build.Version),
	)
}
