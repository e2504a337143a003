package cli

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"github.com/TessVincent/prismhealth/internal/authz"
)

func newKeyCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the account key file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "new",
			Short: "Generate an account key and seal it into the key file",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				key, err := crypto.GenerateKey()
				if err != nil {
					return fmt.Errorf("generate key: %w", err)
				}
				return a.saveKey(cmd, key)
			},
		},
		&cobra.Command{
			Use:   "import <hex-private-key>",
			Short: "Seal an existing secp256k1 private key into the key file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(args[0]), "0x"))
				if err != nil {
					return fmt.Errorf("parse private key: %w", err)
				}
				return a.saveKey(cmd, key)
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the address of the key file",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				pw, err := a.password(cmd)
				if err != nil {
					return err
				}
				key, err := authz.LoadKey(a.cfg.KeyFile, pw, a.keyChain)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderFields("Account",
					f("Address", crypto.PubkeyToAddress(key.PublicKey).Hex()),
					f("Key file", a.cfg.KeyFile),
				))
				return nil
			},
		},
	)
	return cmd
}

func (a *app) saveKey(cmd *cobra.Command, key *ecdsa.PrivateKey) error {
	pw, err := a.password(cmd)
	if err != nil {
		return err
	}
	address, err := authz.SaveKey(a.cfg.KeyFile, pw, key, a.keyChain)
	if err != nil {
		return err
	}

	a.logger.Info().Str("address", address.Hex()).Str("key_file", a.cfg.KeyFile).Msg("account key saved")
	fmt.Fprintln(cmd.OutOrStdout(), renderFields("Account key saved",
		f("Address", address.Hex()),
		f("Key file", a.cfg.KeyFile),
	))
	return nil
}
