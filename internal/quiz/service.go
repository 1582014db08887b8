package quiz

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/raizapp/raizapp-backend/pkg/db/models"
	pkgerrors "github.com/raizapp/raizapp-backend/pkg/errors"
)

// Activity rows written when the journey quiz is completed.
const (
	completionActivityTitle       = "Quiz de Jornada Completo"
	completionActivityDescription = "Você completou o quiz de configuração da sua jornada"
	completionActivityType        = "quiz_completed"
)

// Service serves the question catalog and persists submissions.
type Service interface {
	Questions() []Question
	Submit(ctx context.Context, userID uuid.UUID, answers map[int]string) error
	Completed(ctx context.Context, userID uuid.UUID) (bool, error)
	Responses(ctx context.Context, userID uuid.UUID) ([]models.QuizResponse, error)
}

type activityRecorder interface {
	Record(ctx context.Context, userID uuid.UUID, title, description, activityType string) (*models.UserActivity, error)
}

type service struct {
	repo       Repository
	activities activityRecorder
}

// ServiceParams bundles the dependencies required to build a quiz service.
type ServiceParams struct {
	Repo       Repository
	Activities activityRecorder
}

// NewService wires quiz dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "quiz repository required")
	}
	if params.Activities == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "activity recorder required")
	}
	return &service{repo: params.Repo, activities: params.Activities}, nil
}

func (s *service) Questions() []Question {
	return Catalog()
}

// Submit upserts every answered question in a single statement and records
// the quiz_completed activity. Re-submitting overwrites prior answers.
func (s *service) Submit(ctx context.Context, userID uuid.UUID, answers map[int]string) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if len(answers) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "at least one answer required")
	}

	ids := make([]int, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	rows := make([]models.QuizResponse, 0, len(ids))
	for _, id := range ids {
		question, ok := QuestionByID(id)
		if !ok {
			return pkgerrors.New(pkgerrors.CodeValidation, "unknown question id").
				WithDetails(map[string]any{"question_id": id})
		}
		answer := strings.TrimSpace(answers[id])
		if answer == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "answer must not be empty").
				WithDetails(map[string]any{"question_id": id})
		}
		rows = append(rows, models.QuizResponse{
			UserID:       userID,
			QuestionID:   question.ID,
			QuestionText: question.Question,
			Answer:       answer,
		})
	}

	if err := s.repo.UpsertResponses(ctx, rows); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save quiz responses")
	}

	if _, err := s.activities.Record(ctx, userID, completionActivityTitle, completionActivityDescription, completionActivityType); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record quiz activity")
	}
	return nil
}

// Completed is derived state: the quiz counts as complete as soon as any
// response row exists for the user.
func (s *service) Completed(ctx context.Context, userID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	count, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count quiz responses")
	}
	return count > 0, nil
}

func (s *service) Responses(ctx context.Context, userID uuid.UUID) ([]models.QuizResponse, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list quiz responses")
	}
	return rows, nil
}
