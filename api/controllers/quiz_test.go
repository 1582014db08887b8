package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/raizapp/raizapp-backend/internal/quiz"
	"github.com/raizapp/raizapp-backend/pkg/db/models"
	pkgerrors "github.com/raizapp/raizapp-backend/pkg/errors"
)

type stubQuizService struct {
	submitFn    func(ctx context.Context, userID uuid.UUID, answers map[int]string) error
	completedFn func(ctx context.Context, userID uuid.UUID) (bool, error)
}

func (s stubQuizService) Questions() []quiz.Question {
	return quiz.Catalog()
}

func (s stubQuizService) Submit(ctx context.Context, userID uuid.UUID, answers map[int]string) error {
	if s.submitFn != nil {
		return s.submitFn(ctx, userID, answers)
	}
	return nil
}

func (s stubQuizService) Completed(ctx context.Context, userID uuid.UUID) (bool, error) {
	if s.completedFn != nil {
		return s.completedFn(ctx, userID)
	}
	return false, nil
}

func (s stubQuizService) Responses(ctx context.Context, userID uuid.UUID) ([]models.QuizResponse, error) {
	return nil, nil
}

func TestQuizQuestionsReturnsFullCatalog(t *testing.T) {
	handler := QuizQuestions(stubQuizService{})

	req := httptest.NewRequest(http.MethodGet, "/api/quiz/questions", nil)
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data struct {
			Questions []quiz.Question `json:"questions"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Questions) != 15 {
		t.Fatalf("expected 15 questions, got %d", len(envelope.Data.Questions))
	}
}

func TestQuizSubmitForwardsAnswers(t *testing.T) {
	userID := uuid.New()
	var got map[int]string
	svc := stubQuizService{
		submitFn: func(ctx context.Context, id uuid.UUID, answers map[int]string) error {
			if id != userID {
				t.Fatalf("unexpected user %v", id)
			}
			got = answers
			return nil
		},
	}
	handler := QuizSubmit(svc, nil)

	body := []byte(`{"answers":{"1":"Mais energia","2":"Ansioso(a)"}}`)
	req := authedRequest(http.MethodPost, "/api/quiz/submit", body, userID, "maria@example.com", "Maria")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got[1] != "Mais energia" || got[2] != "Ansioso(a)" {
		t.Fatalf("answers lost in transport: %v", got)
	}
}

func TestQuizSubmitRejectsUnknownQuestion(t *testing.T) {
	svc := stubQuizService{
		submitFn: func(ctx context.Context, id uuid.UUID, answers map[int]string) error {
			return pkgerrors.New(pkgerrors.CodeValidation, "unknown question id").
				WithDetails(map[string]int{"question_id": 99})
		},
	}
	handler := QuizSubmit(svc, nil)

	body := []byte(`{"answers":{"99":"whatever"}}`)
	req := authedRequest(http.MethodPost, "/api/quiz/submit", body, uuid.New(), "maria@example.com", "Maria")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestQuizStatusReportsCompletion(t *testing.T) {
	svc := stubQuizService{
		completedFn: func(ctx context.Context, userID uuid.UUID) (bool, error) { return true, nil },
	}
	handler := QuizStatus(svc, nil)

	req := authedRequest(http.MethodGet, "/api/quiz/status", nil, uuid.New(), "maria@example.com", "Maria")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data map[string]bool `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Data["completed"] {
		t.Fatal("expected completed true")
	}
}
