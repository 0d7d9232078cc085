// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/cinecat/internal/platform/respond"
)

// Handler implements the read-only HTTP layer for reference data.
type Handler struct {
	service *Service
}

// NewHandler constructs a new reference [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the reference listings on router.
func (handler *Handler) Register(router chi.Router) {
	router.Get("/countries", handler.listCountries)
	router.Get("/genres", handler.listEntities(KindGenre))
	router.Get("/actors", handler.listEntities(KindActor))
	router.Get("/languages", handler.listEntities(KindLanguage))
}

/*
GET /api/v1/countries.

Response:
  - 200: []Country
*/
func (handler *Handler) listCountries(writer http.ResponseWriter, request *http.Request) {
	countries, err := handler.service.ListCountries(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, nonNil(countries))
}

/*
GET /api/v1/{genres|actors|languages}.

Response:
  - 200: []Entity
*/
func (handler *Handler) listEntities(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		entities, err := handler.service.ListEntities(request.Context(), kind)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.OK(writer, nonNil(entities))
	}
}

// nonNil keeps empty listings encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
