package quiz

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/raizapp/raizapp-backend/pkg/db/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:quiz_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.QuizResponse{}); err != nil {
		t.Fatalf("migrate quiz responses: %v", err)
	}
	return db
}

func TestRepo_UpsertOverwritesInPlace(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	first := []models.QuizResponse{
		{UserID: userID, QuestionID: 1, QuestionText: "q1", Answer: "Perdido"},
		{UserID: userID, QuestionID: 2, QuestionText: "q2", Answer: "Foco"},
	}
	if err := repo.UpsertResponses(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := []models.QuizResponse{
		{UserID: userID, QuestionID: 1, QuestionText: "q1", Answer: "Motivado"},
	}
	if err := repo.UpsertResponses(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	rows, err := repo.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows after re-submit, got %d", len(rows))
	}
	if rows[0].QuestionID != 1 || rows[0].Answer != "Motivado" {
		t.Fatalf("expected overwritten answer, got %+v", rows[0])
	}
	if rows[1].QuestionID != 2 || rows[1].Answer != "Foco" {
		t.Fatalf("untouched answer mangled: %+v", rows[1])
	}
}

func TestRepo_ListOrdersByQuestionID(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	rows := []models.QuizResponse{
		{UserID: userID, QuestionID: 3, QuestionText: "q3", Answer: "Ok"},
		{UserID: userID, QuestionID: 1, QuestionText: "q1", Answer: "Equilibrado"},
	}
	if err := repo.UpsertResponses(ctx, rows); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got[0].QuestionID != 1 || got[1].QuestionID != 3 {
		t.Fatalf("expected question_id order, got %+v", got)
	}
}

func TestRepo_CountScopedToUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	if err := repo.UpsertResponses(ctx, []models.QuizResponse{
		{UserID: alice, QuestionID: 1, QuestionText: "q1", Answer: "Sim"},
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	count, err := repo.CountByUser(ctx, alice)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1, got %d", count)
	}

	count, err = repo.CountByUser(ctx, bob)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0, got %d", count)
	}
}
