package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"newsportal/internal/repository"
)

type CreateNewsRequest struct {
	Title     string `json:"title" validate:"required"`
	Body      string `json:"body" validate:"required"`
	CreatedAt string `json:"created_at" validate:"omitempty"`
}

type UpdateNewsRequest struct {
	Title *string `json:"title" validate:"omitempty,min=1"`
	Body  *string `json:"body" validate:"omitempty,min=1"`
}

type AddCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// queryParam reads the plain name first and falls back to the
// json-server style underscore alias the frontend uses.
func queryParam(r *http.Request, name string) string {
	if value := r.URL.Query().Get(name); value != "" {
		return value
	}
	return r.URL.Query().Get("_" + name)
}

func (h *Handlers) GetNewsList(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(queryParam(r, "page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(queryParam(r, "limit"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	listQuery := repository.ListNewsQuery{
		Page:  page,
		Limit: limit,
		Query: r.URL.Query().Get("q"),
		Sort:  queryParam(r, "sort"),
		Order: queryParam(r, "order"),
	}

	items, total, err := h.NewsService.GetAll(r.Context(), listQuery)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("X-Total-Count", strconv.Itoa(total))
	WriteSuccess(w, items, http.StatusOK)
}

func (h *Handlers) GetNewsItem(w http.ResponseWriter, r *http.Request) {
	newsID := mux.Vars(r)["id"]

	news, err := h.NewsService.GetByID(r.Context(), newsID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, news, http.StatusOK)
}

func (h *Handlers) CreateNews(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateNewsRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	serviceReq := repository.CreateNewsRequest{
		Title: req.Title,
		Body:  req.Body,
	}
	if req.CreatedAt != "" {
		createdAt, err := time.Parse(time.RFC3339, req.CreatedAt)
		if err != nil {
			WriteError(w, "created_at must be an RFC3339 timestamp", http.StatusBadRequest)
			return
		}
		serviceReq.CreatedAt = &createdAt
	}

	news, err := h.NewsService.Create(r.Context(), serviceReq, principal.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, news, http.StatusCreated)
}

func (h *Handlers) UpdateNews(w http.ResponseWriter, r *http.Request) {
	newsID := mux.Vars(r)["id"]

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateNewsRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	news, err := h.NewsService.Update(r.Context(), repository.UpdateNewsRequest{
		NewsID: newsID,
		Title:  req.Title,
		Body:   req.Body,
	}, principal.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, news, http.StatusOK)
}

func (h *Handlers) DeleteNews(w http.ResponseWriter, r *http.Request) {
	newsID := mux.Vars(r)["id"]

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.NewsService.Delete(r.Context(), newsID, principal.ID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	newsID := mux.Vars(r)["id"]

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req AddCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	news, err := h.NewsService.AddComment(r.Context(), newsID, req.Text, principal.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, news, http.StatusCreated)
}

func (h *Handlers) RemoveComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	newsID := vars["id"]
	commentID := vars["cid"]

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	news, err := h.NewsService.RemoveComment(r.Context(), newsID, commentID, principal.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, news, http.StatusOK)
}

// allowed image content types
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (h *Handlers) AttachImage(w http.ResponseWriter, r *http.Request) {
	newsID := mux.Vars(r)["id"]

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, fmt.Sprintf("File too large (max %d MB)",
			h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Could not read the uploaded file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		WriteError(w, "Unsupported file type, allowed: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}

	image, err := h.NewsService.AttachImage(r.Context(), newsID, principal.ID, header.Filename, file, header.Size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, image, http.StatusCreated)
}

func (h *Handlers) RemoveImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	newsID := vars["id"]
	imageID := vars["imageId"]

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.NewsService.RemoveImage(r.Context(), newsID, imageID, principal.ID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
