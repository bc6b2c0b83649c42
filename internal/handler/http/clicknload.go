package http

import (
	"net/http"

	"github.com/MKhiriev/go-cnl-relay/internal/logger"
	"github.com/MKhiriev/go-cnl-relay/models"
)

const (
	// jdCheckBody is evaluated by the requesting page as JavaScript.
	jdCheckBody = "jdownloader=true;"
	flashBody   = "JDownloader"
)

func (h *Handler) jdCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript")
	w.Write([]byte(jdCheckBody))
}

func (h *Handler) flash(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(flashBody))
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.PlainRequest
	if err := decodeRequest(w, r, &req, map[string]*string{
		"submit": &req.Submit,
		"urls":   &req.URLs,
	}); err != nil {
		log.Err(err).Msg("invalid plain click'n'load request")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	result, err := h.services.ClickNLoadService.AddPlain(r.Context(), req)
	if err != nil {
		// 502 on pyLoad failures, see addCrypted.
		log.Err(err).Msg("error relaying plain click'n'load package")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	log.Debug().Int("links", result.LinkCount).Bool("forwarded", result.Forwarded).Msg("plain package handled")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) addCrypted(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CryptedRequest
	if err := decodeRequest(w, r, &req, map[string]*string{
		"crypted":   &req.Crypted,
		"jk":        &req.JK,
		"passwords": &req.Passwords,
		"package":   &req.Package,
		"source":    &req.Source,
		"submit":    &req.Submit,
	}); err != nil {
		log.Err(err).Msg("invalid encrypted click'n'load request")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	result, err := h.services.ClickNLoadService.AddCrypted(r.Context(), req)
	if err != nil {
		// pyLoad login and submission failures answer 502, not an empty 200,
		// so the page can tell the links were not added.
		log.Err(err).Msg("error relaying encrypted click'n'load package")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	log.Debug().Int("links", result.LinkCount).Bool("forwarded", result.Forwarded).Msg("encrypted package handled")
	w.WriteHeader(http.StatusOK)
}
