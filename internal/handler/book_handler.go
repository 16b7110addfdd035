package handler

import (
	"bookstore-server/internal/model"
	"bookstore-server/internal/model/requestresponse"
	"bookstore-server/internal/ports"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type BookHandler struct {
	ports.BookService
}

func NewBookHandler(bookService ports.BookService) *BookHandler {
	return &BookHandler{bookService}
}

// ListBooks godoc
// @Summary Каталог книг
// @Tags Books
// @Produce json
// @Param page query int false "Номер страницы (с нуля)"
// @Param size query int false "Размер страницы"
// @Param sort query string false "Сортировка, например price,ASC"
// @Param keyword query string false "Поиск по названию и автору"
// @Param category query string false "Фильтр по категории"
// @Success 200 {object} requestresponse.BooksPageResponse
// @Failure 503 {object} requestresponse.ErrorResponse "БД недоступна"
// @Router /api/public/books [get]
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filter := model.BookFilter{
		Keyword:  r.URL.Query().Get("keyword"),
		Category: r.URL.Query().Get("category"),
		Sort:     r.URL.Query().Get("sort"),
	}
	filter.Page, filter.Size = pageParams(r)

	books, total, err := h.BookService.ListBooks(r.Context(), filter)
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.BooksPageResponse{
		Message: "каталог книг",
		Payload: newPage(books, filter.Page, filter.Size, total, filter.Sort),
	})
}

// GetBook godoc
// @Summary Карточка книги
// @Tags Books
// @Produce json
// @Param uuid path string true "UUID книги"
// @Success 200 {object} requestresponse.BookResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Книга не найдена"
// @Router /api/public/books/{uuid} [get]
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	book, err := h.BookService.GetBook(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.BookResponse{
		Message: "карточка книги",
		Payload: book,
	})
}

// CreateBook godoc
// @Summary Добавление книги (админ)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body requestresponse.CreateBookRequest true "Тело запроса"
// @Success 201 {object} requestresponse.BookResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Ошибка валидации"
// @Failure 403 {object} requestresponse.ErrorResponse "Недостаточно прав"
// @Router /api/admin/books [post]
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.CreateBookRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	book, err := h.BookService.CreateBook(r.Context(), &model.Book{
		Title:       req.Title,
		Author:      req.Author,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(201)
	json.NewEncoder(w).Encode(requestresponse.BookResponse{
		Message: "книга добавлена",
		Payload: book,
	})
}

// UpdateBook godoc
// @Summary Изменение книги (админ)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "UUID книги"
// @Param body body requestresponse.UpdateBookRequest true "Изменяемые поля"
// @Success 200 {object} requestresponse.BookResponse
// @Failure 403 {object} requestresponse.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} requestresponse.ErrorResponse "Книга не найдена"
// @Router /api/admin/books/{uuid} [patch]
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.UpdateBookRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	book, err := h.BookService.UpdateBook(r.Context(), chi.URLParam(r, "uuid"), func(b *model.Book) {
		if req.Title != nil {
			b.Title = *req.Title
		}
		if req.Author != nil {
			b.Author = *req.Author
		}
		if req.Category != nil {
			b.Category = req.Category
		}
		if req.Description != nil {
			b.Description = req.Description
		}
		if req.Price != nil {
			b.Price = *req.Price
		}
		if req.Stock != nil {
			b.Stock = *req.Stock
		}
	})
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.BookResponse{
		Message: "книга обновлена",
		Payload: book,
	})
}

// DeleteBook godoc
// @Summary Удаление книги (админ)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param uuid path string true "UUID книги"
// @Success 200 {object} requestresponse.DeletedResponse
// @Failure 403 {object} requestresponse.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} requestresponse.ErrorResponse "Книга не найдена"
// @Router /api/admin/books/{uuid} [delete]
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.BookService.DeleteBook(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		sendError(w, r, err)
		return
	}

	sendDeleted(w, "книга удалена")
}
