package httpapi

import (
	"net/http"

	"github.com/narendercheckout-spec/Yelvantix/internal/roles"
)

type RolesHandler struct{}

func (h RolesHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"roles": roles.All()})
}
