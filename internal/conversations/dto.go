package conversations

import (
	"time"

	"github.com/google/uuid"

	"github.com/raizapp/raizapp-backend/pkg/db/models"
)

// ConversationDTO is the wire shape of one chat exchange.
type ConversationDTO struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModel converts a stored exchange to its wire shape.
func FromModel(c *models.AIConversation) *ConversationDTO {
	if c == nil {
		return nil
	}
	return &ConversationDTO{
		ID:        c.ID,
		Message:   c.Message,
		Response:  c.Response,
		CreatedAt: c.CreatedAt,
	}
}

// FromModels converts a slice of stored exchanges.
func FromModels(rows []models.AIConversation) []*ConversationDTO {
	out := make([]*ConversationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
