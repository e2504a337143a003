// Package authz implements the client side of user decryption: it generates
// an ephemeral keypair, has the account sign an EIP-712 decryption grant over
// the oracle's domain, and spends that grant exactly once to open the sealed
// values the oracle returns.
//
// A grant moves through the states
//
//	Init -> KeypairGenerated -> GrantSigned -> GrantConsumed
//
// and any failure on the way ends in Failed, reported as a [*FailedAttempt]
// carrying the reason. Grants are never cached or persisted; every decryption
// starts from a fresh one.
package authz
