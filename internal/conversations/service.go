package conversations

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/raizapp/raizapp-backend/pkg/db/models"
	pkgerrors "github.com/raizapp/raizapp-backend/pkg/errors"
)

// Canned reply returned while the personalized engine is not live.
const cannedResponse = "Obrigado por compartilhar! Estou analisando seus padrões e em breve terei insights personalizados para você."

const defaultHistoryLimit = 20

// Service records user messages with their reply.
type Service interface {
	Send(ctx context.Context, userID uuid.UUID, message string) (*models.AIConversation, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]models.AIConversation, error)
}

type service struct {
	repo Repository
}

// NewService wires conversations dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "conversations repository required")
	}
	return &service{repo: repo}, nil
}

// Send stores the message together with the current reply. This is a write
// path: store errors propagate.
func (s *service) Send(ctx context.Context, userID uuid.UUID, message string) (*models.AIConversation, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "message required")
	}

	conversation := &models.AIConversation{
		UserID:   userID,
		Message:  message,
		Response: cannedResponse,
	}
	if err := s.repo.Create(ctx, conversation); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save conversation")
	}
	return conversation, nil
}

func (s *service) History(ctx context.Context, userID uuid.UUID, limit int) ([]models.AIConversation, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if limit <= 0 || limit > 100 {
		limit = defaultHistoryLimit
	}
	rows, err := s.repo.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list conversations")
	}
	return rows, nil
}
