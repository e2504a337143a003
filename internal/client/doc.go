// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the account-side flows of the health ledger.
//
// A [Client] connects to one ledger node for one account: it checks the
// confidential protocol the node speaks, opens a session with a signed login
// challenge, and then runs every operation under a session guard so results
// produced for a previous account or chain are discarded.
//
// Values are encrypted by the relayer before they are submitted, and every
// decryption signs a fresh single-use grant. Verification results are
// recovered from the sealed receipt, falling back to one simulated call.
package client
