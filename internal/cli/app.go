package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TessVincent/prismhealth/internal/adapter"
	"github.com/TessVincent/prismhealth/internal/authz"
	"github.com/TessVincent/prismhealth/internal/client"
	"github.com/TessVincent/prismhealth/internal/config"
	kc "github.com/TessVincent/prismhealth/internal/crypto"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/models"
)

const passwordEnv = "PRISM_KEY_PASSWORD"

var errEmptyPassword = errors.New("key file password is empty")

// app is the state shared by all commands of one invocation.
type app struct {
	build    models.AppBuildInfo
	flags    config.ClientConfig
	keyChain kc.KeyChain

	cfg    *config.ClientConfig
	logger *logger.Logger
	client *client.Client
}

// load resolves the configuration and opens the log file. It runs before
// every command.
func (a *app) load() error {
	cfg, err := config.GetClientConfig(a.flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	a.logger = logger.NewClientLogger("prismctl", cfg.LogFile)
	return nil
}

// password reads the key file password from the environment or the first
// line of the command's input.
func (a *app) password(cmd *cobra.Command) (string, error) {
	if pw, ok := os.LookupEnv(passwordEnv); ok {
		if pw == "" {
			return "", errEmptyPassword
		}
		return pw, nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Key file password: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	pw := strings.TrimRight(line, "\r\n")
	if pw == "" {
		return "", errEmptyPassword
	}
	return pw, nil
}

// transport builds the HTTP adapter for the configured ledger node.
func (a *app) transport() (*adapter.HTTPAdapter, error) {
	return adapter.NewHTTPAdapter(*a.cfg, a.logger)
}

// connect loads the account key and logs in. The connected client is kept
// for the rest of the invocation.
func (a *app) connect(cmd *cobra.Command) (*client.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	pw, err := a.password(cmd)
	if err != nil {
		return nil, err
	}
	key, err := authz.LoadKey(a.cfg.KeyFile, pw, a.keyChain)
	if err != nil {
		return nil, err
	}
	signer, err := authz.NewKeySigner(key)
	if err != nil {
		return nil, err
	}

	transport, err := a.transport()
	if err != nil {
		return nil, err
	}

	c := client.New(transport, transport, signer, a.cfg.ExpectedProtocolID, a.logger)
	if _, err = c.Connect(cmd.Context()); err != nil {
		c.Close()
		return nil, err
	}
	a.client = c
	return c, nil
}

func (a *app) close() {
	if a.client != nil {
		a.client.Close()
		a.client = nil
	}
}

// run wraps a command body that needs a connected client.
func (a *app) run(fn func(ctx context.Context, cmd *cobra.Command, c *client.Client, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c, err := a.connect(cmd)
		if err != nil {
			return err
		}
		return fn(cmd.Context(), cmd, c, args)
	}
}
