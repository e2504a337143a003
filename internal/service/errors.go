package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrChallengeExpired        = errors.New("login challenge is outside the accepted window")
	ErrChallengeSignature      = errors.New("login challenge signature does not match address")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrReceiptNotFound = errors.New("receipt not found")
	ErrRateLimited     = errors.New("too many decryption requests")

	ErrGrantsNotApplied = errors.New("transaction committed but decryption rights were not granted")
)
