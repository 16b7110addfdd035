package requestresponse

import "bookstore-server/internal/model"

// StatsSummaryResponse : сводные счётчики для админки
type StatsSummaryResponse struct {
	Message string              `json:"message"`
	Payload *model.StatsSummary `json:"payload"`
}
