package activities

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
	createFn func(ctx context.Context, activity *models.UserActivity) error
	listFn   func(ctx context.Context, userID uuid.UUID, limit int) ([]models.UserActivity, error)
}

func (f *fakeRepository) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeRepository) Create(ctx context.Context, activity *models.UserActivity) error {
	if f.createFn != nil {
		return f.createFn(ctx, activity)
	}
	return nil
}

func (f *fakeRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.UserActivity, error) {
	if f.listFn != nil {
		return f.listFn(ctx, userID, limit)
	}
	return nil, nil
}

func TestRecord_TrimsAndStores(t *testing.T) {
	repo := &fakeRepository{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	activity, err := svc.Record(context.Background(), uuid.New(), "  Quiz de Jornada Completo  ", " desc ", " quiz_completed ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if activity.Title != "Quiz de Jornada Completo" {
		t.Fatalf("title not trimmed: %q", activity.Title)
	}
	if activity.ActivityType != "quiz_completed" {
		t.Fatalf("type not trimmed: %q", activity.ActivityType)
	}
}

func TestRecord_RejectsMissingFields(t *testing.T) {
	svc, _ := NewService(&fakeRepository{})

	cases := []struct {
		name  string
		id    uuid.UUID
		title string
		typ   string
	}{
		{"missing user", uuid.Nil, "t", "x"},
		{"missing title", uuid.New(), "", "x"},
		{"missing type", uuid.New(), "t", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Record(context.Background(), tc.id, tc.title, "", tc.typ)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestListRecent_ClampsLimit(t *testing.T) {
	var gotLimit int
	repo := &fakeRepository{
		listFn: func(ctx context.Context, userID uuid.UUID, limit int) ([]models.UserActivity, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc, _ := NewService(repo)
	ctx := context.Background()
	id := uuid.New()

	if _, err := svc.ListRecent(ctx, id, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != defaultListLimit {
		t.Fatalf("expected default limit %d, got %d", defaultListLimit, gotLimit)
	}

	if _, err := svc.ListRecent(ctx, id, 500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != maxListLimit {
		t.Fatalf("expected max limit %d, got %d", maxListLimit, gotLimit)
	}
}

func TestListRecent_WrapsRepoErrors(t *testing.T) {
	repo := &fakeRepository{
		listFn: func(ctx context.Context, userID uuid.UUID, limit int) ([]models.UserActivity, error) {
			return nil, errors.New("boom")
		},
	}
	svc, _ := NewService(repo)

	_, err := svc.ListRecent(context.Background(), uuid.New(), 10)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
