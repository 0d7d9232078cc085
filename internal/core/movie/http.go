// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/cinecat/internal/platform/request"
	"github.com/taibuivan/cinecat/internal/platform/respond"
	"github.com/taibuivan/cinecat/pkg/pagination"
)

// MsgUpdated acknowledges a successful partial update.
const MsgUpdated = "Movie updated successfully."

// Handler implements the HTTP layer for the movie catalog.
type Handler struct {
	service *Service
}

// NewHandler constructs a new movie [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the movie endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listMovies)
	router.Post("/", handler.createMovie)
	router.Get("/{id}", handler.getMovie)
	router.Patch("/{id}", handler.updateMovie)
	router.Delete("/{id}", handler.deleteMovie)

	return router
}

/*
GET /api/v1/movies/.

Description: Lists movie summaries newest first.

Request:
  - page: int (default 1, >= 1)
  - per_page: int (default 10, 1..20)

Response:
  - 200: []Summary with pagination meta (prev_page/next_page links)
  - 400: ErrValidation: Malformed or out-of-range query
  - 404: ErrNotFound: No movies, or page past the end
*/
func (handler *Handler) listMovies(writer http.ResponseWriter, request *http.Request) {
	params, err := pagination.FromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.ListMovies(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, page.Movies, page.Window.Meta(request.URL.Path))
}

/*
GET /api/v1/movies/{id}.

Response:
  - 200: Movie: Full record with relationships
  - 400: ErrValidation: id is not an integer >= 1
  - 404: ErrNotFound: Movie not found
*/
func (handler *Handler) getMovie(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.PositiveID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	movie, err := handler.service.GetMovie(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, movie)
}

/*
POST /api/v1/movies/.

Request (Body):
  - CreateInput: JSON object

Response:
  - 201: Movie: Created record with resolved relationships
  - 400: ErrValidation: Invalid input data
  - 409: ErrConflict: Same name and release date already exist
*/
func (handler *Handler) createMovie(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	movie, err := handler.service.CreateMovie(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, movie)
}

/*
PATCH /api/v1/movies/{id}.

Request:
  - id: int
  - body: UpdatePatch (any subset of name, date, score, overview, status, budget, revenue)

Response:
  - 200: {"detail": "Movie updated successfully."}
  - 400: ErrValidation: Empty patch or invalid field
  - 404: ErrNotFound: Movie not found
  - 409: ErrConflict: New name and date collide with another movie
*/
func (handler *Handler) updateMovie(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.PositiveID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch UpdatePatch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateMovie(request.Context(), id, patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Acknowledge(writer, MsgUpdated)
}

/*
DELETE /api/v1/movies/{id}.

Response:
  - 204: No Content: Success
  - 404: ErrNotFound: Movie not found
*/
func (handler *Handler) deleteMovie(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.PositiveID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteMovie(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
