package config

// SupportedProtocolID is the confidential-computation protocol version this
// build speaks.
const SupportedProtocolID uint64 = 1

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)
