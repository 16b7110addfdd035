package handler

import (
	"bookstore-server/internal/model/requestresponse"
	"bookstore-server/internal/ports"
	"encoding/json"
	"net/http"
)

type StatsHandler struct {
	ports.StatsService
}

func NewStatsHandler(statsService ports.StatsService) *StatsHandler {
	return &StatsHandler{statsService}
}

// Summary godoc
// @Summary Сводная статистика (админ)
// @Description Количество пользователей, книг и заказов
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} requestresponse.StatsSummaryResponse
// @Failure 403 {object} requestresponse.ErrorResponse "Недостаточно прав"
// @Failure 503 {object} requestresponse.ErrorResponse "БД недоступна"
// @Router /api/admin/stats/summary [get]
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summary, err := h.StatsService.Summary(r.Context())
	if err != nil {
		sendError(w, r, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.StatsSummaryResponse{
		Message: "сводная статистика",
		Payload: summary,
	})
}
