package store

// Repositories groups the repositories of one unit of work.
type Repositories struct {
	Records      RecordRepository
	Scores       ScoreRepository
	Proofs       ProofRepository
	Transactions TransactionRepository
}

func newRepositories(db *DB, q querier) Repositories {
	return Repositories{
		Records:      &recordRepository{q: q, builder: db.builder, classifier: db.errorClassificator},
		Scores:       &scoreRepository{q: q, builder: db.builder},
		Proofs:       &proofRepository{q: q, builder: db.builder, classifier: db.errorClassificator},
		Transactions: &transactionRepository{q: q, builder: db.builder},
	}
}
