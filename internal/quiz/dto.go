package quiz

import (
	"time"

	"github.com/raizapp/raizapp-backend/pkg/db/models"
)

// ResponseDTO is the wire shape of a stored answer.
type ResponseDTO struct {
	QuestionID   int       `json:"question_id"`
	QuestionText string    `json:"question_text"`
	Answer       string    `json:"answer"`
	CreatedAt    time.Time `json:"created_at"`
}

// ResponsesFromModels converts stored answers to their wire shape.
func ResponsesFromModels(rows []models.QuizResponse) []ResponseDTO {
	out := make([]ResponseDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, ResponseDTO{
			QuestionID:   row.QuestionID,
			QuestionText: row.QuestionText,
			Answer:       row.Answer,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out
}
