package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campuslib/backend/internal/models"
	"github.com/campuslib/backend/internal/services"
)

type CatalogHandler struct {
	service   *services.CatalogService
	validator *services.ValidationHelper
}

func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service:   service,
		validator: services.NewValidationHelper(),
	}
}

// BookRequest represents a catalog create/update request
type BookRequest struct {
	Title           string `json:"title" validate:"required"`
	Author          string `json:"author" validate:"required"`
	ISBN            string `json:"isbn" validate:"required,min=10,max=13"`
	Subject         string `json:"subject,omitempty"`
	Faculty         string `json:"faculty,omitempty"`
	Edition         string `json:"edition,omitempty"`
	Publisher       string `json:"publisher,omitempty"`
	PublicationYear string `json:"publicationYear,omitempty"`
	Copies          int    `json:"copies,omitempty" validate:"gte=0"`
	Location        string `json:"location,omitempty"`
	Description     string `json:"description,omitempty"`
	Language        string `json:"language,omitempty"`
	Barcode         string `json:"barcode,omitempty"`
}

func (req *BookRequest) toModel() models.Book {
	return models.Book{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Subject:         req.Subject,
		Faculty:         req.Faculty,
		Edition:         req.Edition,
		Publisher:       req.Publisher,
		PublicationYear: req.PublicationYear,
		Copies:          req.Copies,
		Location:        req.Location,
		Description:     req.Description,
		Language:        req.Language,
		Barcode:         req.Barcode,
	}
}

func (h *CatalogHandler) decodeBookRequest(w http.ResponseWriter, r *http.Request) (*BookRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req BookRequest
	if err := dec.Decode(&req); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return nil, false
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		services.SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return nil, false
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return nil, false
	}
	return &req, true
}

// AddBook creates a catalog entry
// @Summary Add a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BookRequest true "Book data"
// @Success 201 {object} models.Book
// @Failure 400 {object} services.ErrorResponse
// @Router /books [post]
func (h *CatalogHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBookRequest(w, r)
	if !ok {
		return
	}

	book := h.service.AddBook(req.toModel())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(book)
}

// UpdateBook updates a catalog entry
// @Summary Update a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookId path string true "Book ID"
// @Param request body BookRequest true "Book data"
// @Success 200 {object} models.Book
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /books/{bookId} [put]
func (h *CatalogHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBookRequest(w, r)
	if !ok {
		return
	}

	book, err := h.service.UpdateBook(chi.URLParam(r, "bookId"), req.toModel())
	if err != nil {
		services.SendServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(book)
}

// GetBook retrieves a catalog entry
// @Summary Get book details
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param bookId path string true "Book ID"
// @Success 200 {object} models.Book
// @Failure 404 {object} services.ErrorResponse
// @Router /books/{bookId} [get]
func (h *CatalogHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	book, err := h.service.GetBook(chi.URLParam(r, "bookId"))
	if err != nil {
		services.SendServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(book)
}

// DeleteBook removes a catalog entry
// @Summary Delete a book
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param bookId path string true "Book ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse
// @Router /books/{bookId} [delete]
func (h *CatalogHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteBook(chi.URLParam(r, "bookId")); err != nil {
		services.SendServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Book deleted successfully"})
}

// BulkDeleteRequest represents a bulk delete request
type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// BulkDelete removes several catalog entries
// @Summary Bulk delete books
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BulkDeleteRequest true "Book IDs"
// @Success 200 {object} object{deleted=int}
// @Failure 400 {object} services.ErrorResponse
// @Router /books/bulk-delete [post]
func (h *CatalogHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req BulkDeleteRequest
	if err := dec.Decode(&req); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		services.SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	deleted := h.service.DeleteBooks(req.IDs)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"deleted": deleted})
}

// ListBooks lists catalog entries with filtering, sorting and pagination
// @Summary List books
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search in title, author, ISBN and barcode"
// @Param faculty query string false "Filter by faculty"
// @Param status query string false "Filter by status (Available|Borrowed|Reserved)"
// @Param sortBy query string false "Sort key (title|author|isbn|status|lastUpdated)"
// @Param order query string false "Sort order (asc|desc)"
// @Param page query int false "Page number"
// @Param perPage query int false "Page size"
// @Success 200 {object} object{books=[]models.Book,total=int}
// @Router /books [get]
func (h *CatalogHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := services.BookListOptions{
		Search:  q.Get("q"),
		Faculty: q.Get("faculty"),
		Status:  q.Get("status"),
		SortBy:  q.Get("sortBy"),
		Order:   q.Get("order"),
		Page:    queryInt(q.Get("page"), 1),
		PerPage: queryInt(q.Get("perPage"), 10),
	}

	books, total := h.service.ListBooks(opts)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"books":   books,
		"total":   total,
		"page":    opts.Page,
		"perPage": opts.PerPage,
	})
}

// Statistics returns catalog dashboard counters
// @Summary Catalog statistics
// @Tags books
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.CatalogStats
// @Router /books/statistics [get]
func (h *CatalogHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.service.Statistics())
}
