// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// Instead of chi's default 405 it answers 404 when the requested method is
// not registered for the path, hiding the route from callers that use an
// unsupported method. Only exact pattern matches are considered, so
// parameterised routes such as /api/client/{id} always get 404 here.
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			writeError(w, r, errRouteNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
