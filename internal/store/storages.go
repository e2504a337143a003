package store

import (
	"github.com/TessVincent/prismhealth/internal/config"
	"github.com/TessVincent/prismhealth/internal/fhe"
)

// Storages is everything the services persist through. The embedded
// Repositories run outside any transaction and serve reads.
type Storages struct {
	Repositories
	UnitOfWork UnitOfWork
	Engine     fhe.Store
}

// NewStorages wires repositories over db. The sqlite ledger keeps engine
// state in memory: its single connection is held by the open ledger
// transaction while the engine writes. That state dies with the process,
// so config validation keeps the node itself on postgres.
func NewStorages(db *DB) *Storages {
	engine := NewEngineStore(db)
	if db.dialect == config.DriverSQLite {
		engine = fhe.NewMemoryStore()
	}

	return &Storages{
		Repositories: newRepositories(db, db.DB),
		UnitOfWork:   db,
		Engine:       engine,
	}
}
