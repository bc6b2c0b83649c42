// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
//
// ClickNLoad senders only probe with GET and submit with POST, and a page
// that probes /flash/addcrypted2 with GET must see the same 404 as for an
// unknown path. A request whose method has no handler on the exactly
// matching route pattern therefore gets 404 instead of chi's 405. A request
// whose method is registered is routed again through router.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !methodRegistered(router, r.URL.Path, r.Method) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

// methodRegistered reports whether a route with exactly pattern path
// handles method.
func methodRegistered(router *chi.Mux, path, method string) bool {
	for _, route := range router.Routes() {
		if route.Pattern != path {
			continue
		}
		_, ok := route.Handlers[method]
		return ok
	}
	return false
}
