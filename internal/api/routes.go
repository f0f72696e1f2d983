package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /find", handler.HandleFind)
	mux.HandleFunc("GET /vocabulary", handler.HandleVocabulary)
	mux.Handle("GET /metrics", handler.metrics.Handler())
}
