// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It intentionally does not use Handler.Init() to avoid service/logger setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/clients", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Put("/api/client/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Delete("/api/client/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/clients", http.StatusOK},
		{http.MethodPut, "/api/client/new", http.StatusOK},
		{http.MethodDelete, "/api/client/@bot:example.org", http.StatusNoContent},
		{http.MethodPost, "/api/clients", http.StatusNotFound},
		{http.MethodDelete, "/api/clients", http.StatusNotFound},
		{http.MethodGet, "/api/client/@bot:example.org", http.StatusNotFound},
		{http.MethodPatch, "/api/client/new", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.want, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}
