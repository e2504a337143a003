// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/TessVincent/prismhealth/internal/authz"
)

// AccountSigner signs grants and login challenges for one account.
type AccountSigner interface {
	authz.Signer
	// SignText signs text as an EIP-191 personal message.
	SignText(ctx context.Context, text string) ([]byte, error)
}
