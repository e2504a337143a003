package http

import (
	"net/http"

	"github.com/TessVincent/prismhealth/internal/utils"
)

func (h *Handler) ledgerInfo(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetLedgerInfo(r.Context()), http.StatusOK)
}

// protocol answers capability discovery. Clients refuse to talk to a ledger
// whose protocol id differs from the one they were built for.
func (h *Handler) protocol(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetProtocol(r.Context()), http.StatusOK)
}
