package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Compress(5, "application/json"))

	router.Handle("/metrics", promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{}))

	router.Route("/api/v1", func(r chi.Router) {
		// routes without authorization
		r.Get("/info", h.ledgerInfo)
		r.Get("/protocol", h.protocol)
		r.Post("/auth/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/records/health", h.addHealthRecord)
			r.Post("/records/medication", h.addMedicationRecord)
			r.Post("/records/exercise", h.addExerciseRecord)
			r.Get("/records/{kind}/count", h.countRecords)
			r.Get("/records/{kind}/{id}", h.getRecord)
			r.Delete("/records/health/{id}", h.deleteHealthRecord)

			r.Post("/score/compute", h.computeScore)
			r.Post("/score", h.storeScore)
			r.Get("/score", h.getScore)

			r.Post("/verify/range", h.verifyRange)
			r.Post("/verify/threshold", h.verifyThreshold)

			r.Post("/proofs", h.generateProof)
			r.Get("/proofs/count", h.countProofs)
			r.Get("/proofs/{id}", h.getProof)

			r.Get("/tx/{hash}/receipt", h.getReceipt)
		})
	})

	// the oracle authorizes each request by its EIP-712 signature
	router.Route("/relayer/v1", func(r chi.Router) {
		r.Post("/inputs", h.encryptInputs)
		r.Post("/user-decrypt", h.userDecrypt)
	})

	return router
}
