// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements prismctl, the command-line client of a PrismHealth
// ledger.
//
// Commands that talk to the ledger load the account key file, connect (the
// ledger's confidential protocol id must match the configured one) and log
// in before running. Health values are encrypted before they leave the
// process and are only ever decrypted locally, under a one-shot decryption
// grant signed by the account key.
//
// Configuration follows [config.GetClientConfig]: flags override PRISM_*
// environment variables, which override the optional JSON file. The key file
// password is read from PRISM_KEY_PASSWORD or, when unset, from stdin.
package cli
