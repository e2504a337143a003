// Package config provides configuration loading, merging, and validation
// for the ledger node and the prismctl client.
//
// The node merges, in priority order (first non-zero field wins):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the node and
// [GetClientConfig] for the client, whose flags come from cobra.
package config
