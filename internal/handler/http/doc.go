// Package http is the HTTP transport of the ledger node. It serves the
// ledger API under /api/v1, the relayer under /relayer/v1 and Prometheus
// metrics under /metrics.
package http
