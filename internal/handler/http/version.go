package http

import (
	"fmt"
	"net/http"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppInfo(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "version: %s\ndate: %s\ncommit: %s\n", info.BuildVersion(), info.BuildDate(), info.BuildCommit())
}
