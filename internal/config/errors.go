package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client transport settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an unknown driver or empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing token or identity settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidEngineConfigs indicates missing engine secrets or oracle address.
	ErrInvalidEngineConfigs = errors.New("invalid engine configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive seal interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
