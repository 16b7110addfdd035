package handler

import (
	"bookstore-server/internal/model/requestresponse"
	"bookstore-server/internal/ports"
	"bookstore-server/internal/security"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type FavoriteHandler struct {
	ports.FavoriteService
}

func NewFavoriteHandler(favoriteService ports.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService}
}

// ListMine godoc
// @Summary Избранное пользователя
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} requestresponse.FavoritesResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Не авторизован"
// @Router /api/favorites [get]
func (h *FavoriteHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	user, err := security.GetUserFromContext(ctx)
	if err != nil {
		sendError(w, r, err)
		return
	}

	favorites, err := h.FavoriteService.ListMine(ctx, user.UUID)
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.FavoritesResponse{
		Message: "избранное пользователя",
		Payload: favorites,
	})
}

// AddFavorite godoc
// @Summary Добавление книги в избранное
// @Tags Favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body requestresponse.AddFavoriteRequest true "Тело запроса"
// @Success 201 {object} requestresponse.FavoriteResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Книга не найдена"
// @Failure 409 {object} requestresponse.ErrorResponse "Книга уже в избранном"
// @Router /api/favorites [post]
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	user, err := security.GetUserFromContext(ctx)
	if err != nil {
		sendError(w, r, err)
		return
	}

	var req requestresponse.AddFavoriteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	favorite, err := h.FavoriteService.AddFavorite(ctx, user.UUID, req.BookUUID)
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(201)
	json.NewEncoder(w).Encode(requestresponse.FavoriteResponse{
		Message: "книга добавлена в избранное",
		Payload: favorite,
	})
}

// RemoveFavorite godoc
// @Summary Удаление книги из избранного
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Param bookUUID path string true "UUID книги"
// @Success 200 {object} requestresponse.DeletedResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Книги нет в избранном"
// @Router /api/favorites/{bookUUID} [delete]
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	ctx := r.Context()

	user, err := security.GetUserFromContext(ctx)
	if err != nil {
		sendError(w, r, err)
		return
	}

	if err := h.FavoriteService.RemoveFavorite(ctx, user.UUID, chi.URLParam(r, "bookUUID")); err != nil {
		sendError(w, r, err)
		return
	}

	sendDeleted(w, "книга удалена из избранного")
}
