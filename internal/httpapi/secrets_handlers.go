package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
)

type SecretsHandler struct {
	// Injected so tests never touch the OS keyring.
	SetAPIKey func(key string) error
}

type setAPIKeyReq struct {
	Key string `json:"key"`
}

func (h SecretsHandler) SetRapidAPIKey(w http.ResponseWriter, r *http.Request) {
	var req setAPIKeyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Key) == "" {
		http.Error(w, "key must not be empty", http.StatusBadRequest)
		return
	}

	if err := h.SetAPIKey(req.Key); err != nil {
		http.Error(w, "failed to store key: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
