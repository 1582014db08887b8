package insights

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raizapp/raizapp-backend/pkg/db/models"
	pkgerrors "github.com/raizapp/raizapp-backend/pkg/errors"
)

type fakeRepository struct {
	createFn func(ctx context.Context, insight *models.AIInsight) error
	latestFn func(ctx context.Context, userID uuid.UUID, limit int) ([]models.AIInsight, error)
	creates  int
}

func (f *fakeRepository) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeRepository) Create(ctx context.Context, insight *models.AIInsight) error {
	f.creates++
	if f.createFn != nil {
		return f.createFn(ctx, insight)
	}
	return nil
}

func (f *fakeRepository) LatestByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.AIInsight, error) {
	if f.latestFn != nil {
		return f.latestFn(ctx, userID, limit)
	}
	return nil, nil
}

func TestEnsure_SeedsDefaultOnFirstVisit(t *testing.T) {
	repo := &fakeRepository{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	userID := uuid.New()

	insight, err := svc.Ensure(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if insight.InsightType != "recommendation" {
		t.Fatalf("unexpected type %q", insight.InsightType)
	}
	if insight.Title != "Recomendações de Hoje" {
		t.Fatalf("unexpected title %q", insight.Title)
	}
	if insight.ProgressPercentage != 75 {
		t.Fatalf("unexpected progress %d", insight.ProgressPercentage)
	}
	if insight.UserID != userID {
		t.Fatalf("insight keyed wrong: %v", insight.UserID)
	}
	if repo.creates != 1 {
		t.Fatalf("expected one seed insert, got %d", repo.creates)
	}
}

func TestEnsure_ReturnsNewestWithoutSeeding(t *testing.T) {
	existing := models.AIInsight{ID: uuid.New(), Title: "Semana de Foco", InsightType: "recommendation"}
	repo := &fakeRepository{
		latestFn: func(ctx context.Context, userID uuid.UUID, limit int) ([]models.AIInsight, error) {
			if limit != 1 {
				t.Fatalf("expected limit 1, got %d", limit)
			}
			return []models.AIInsight{existing}, nil
		},
	}
	svc, _ := NewService(repo)

	insight, err := svc.Ensure(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if insight.ID != existing.ID {
		t.Fatalf("expected existing insight, got %v", insight)
	}
	if repo.creates != 0 {
		t.Fatal("must not seed when an insight exists")
	}
}

func TestEnsure_ReadErrorsPropagate(t *testing.T) {
	repo := &fakeRepository{
		latestFn: func(ctx context.Context, userID uuid.UUID, limit int) ([]models.AIInsight, error) {
			return nil, errors.New("boom")
		},
	}
	svc, _ := NewService(repo)

	_, err := svc.Ensure(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
