// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/neo-f/go-blog/internal/apperr"
	"github.com/neo-f/go-blog/internal/utils"
	"github.com/neo-f/go-blog/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.UserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext, "post creation without user")
		return
	}

	var post models.Post
	if !decodeJSON(w, r, &post) {
		return
	}
	post.AuthorID = userID

	created, err := h.services.PostService.CreatePost(ctx, post)
	if err != nil {
		writeError(w, r, err, "post creation failed")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.services.PostService.GetPost(r.Context(), slug)
	if err != nil {
		writeError(w, r, err, "post lookup failed")
		return
	}

	utils.WriteJSON(w, http.StatusOK, post)
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, err, msgInvalidPage)
		return
	}

	list, err := h.services.PostService.ListPosts(r.Context(), page)
	if err != nil {
		writeError(w, r, err, "post listing failed")
		return
	}

	utils.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.UserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext, "post deletion without user")
		return
	}

	if err := h.services.PostService.DeletePost(ctx, userID, chi.URLParam(r, "slug")); err != nil {
		writeError(w, r, err, "post deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pageFromQuery reads the limit and offset query parameters. Absent values
// are zero.
func pageFromQuery(r *http.Request) (models.Page, error) {
	var page models.Page
	q := r.URL.Query()

	for name, dst := range map[string]*uint64{"limit": &page.Limit, "offset": &page.Offset} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseUint(raw, 10, 63)
		if err != nil {
			return models.Page{}, apperr.BadRequest(msgInvalidPage)
		}
		*dst = v
	}

	return page, nil
}
