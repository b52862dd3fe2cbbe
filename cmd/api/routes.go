package main

import (
	"net/http"

	"bandcatalog/internal/catalog"
	"bandcatalog/internal/httpx"
)

func newRouter(handler *catalog.HTTPHandler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", handler.Ready)

	router.HandleFunc("GET /{$}", handler.Page)
	router.HandleFunc("GET /v1/albums", handler.ListAlbums)
	router.HandleFunc("GET /v1/filters", handler.Filters)

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Route not found")
	})

	return httpx.Chain(router, middlewares...)
}
