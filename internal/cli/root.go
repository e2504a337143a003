// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	kc "github.com/TessVincent/prismhealth/internal/crypto"
	"github.com/TessVincent/prismhealth/models"
)

// NewRootCommand builds the prismctl command tree.
func NewRootCommand(build models.AppBuildInfo) *cobra.Command {
	a := &app{build: build, keyChain: kc.NewKeyChain()}

	root := &cobra.Command{
		Use:   "prismctl",
		Short: "PrismHealth confidential health ledger client",
		Long: `prismctl keeps encrypted health records on a PrismHealth ledger, computes
an encrypted health score from them and proves facts about them (a blood
pressure within range, a score above a threshold) without revealing the values.`,
		Version:       fmt.Sprintf("%s (built %s, commit %s)", build.Version, build.Date, build.Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.flags.ServerAddress, "server", "s", "", "ledger node address (PRISM_SERVER_ADDRESS)")
	flags.StringVarP(&a.flags.KeyFile, "key-file", "k", "", "account key file (PRISM_KEY_FILE)")
	flags.StringVar(&a.flags.LogFile, "log-file", "", "log file (PRISM_LOG_FILE)")
	flags.StringVarP(&a.flags.ConfigFile, "config", "c", "", "JSON config file (PRISM_CONFIG)")
	flags.Uint64Var(&a.flags.ExpectedProtocolID, "protocol", 0, "expected confidential protocol id (PRISM_EXPECTED_PROTOCOL_ID)")
	flags.DurationVar(&a.flags.RequestTimeout, "timeout", 0, "per-request timeout (PRISM_REQUEST_TIMEOUT)")
	flags.IntVar(&a.flags.RetryCount, "retries", 0, "retries of a read failing with 5xx (PRISM_RETRY_COUNT)")
	flags.DurationVar(&a.flags.FinalityTimeout, "finality-timeout", 0, "wait for a transaction to be sealed (PRISM_FINALITY_TIMEOUT)")

	root.AddCommand(
		newKeyCommand(a),
		newInfoCommand(a),
		newConnectCommand(a),
		newRecordCommand(a),
		newScoreCommand(a),
		newVerifyCommand(a),
		newProofCommand(a),
	)
	return root
}

// Execute runs prismctl with ctx and renders a failure for humans.
func Execute(ctx context.Context, build models.AppBuildInfo) error {
	root := NewRootCommand(build)
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), renderError(err))
	}
	return err
}
