package quiz

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
	upsertFn func(ctx context.Context, rows []models.QuizResponse) error
	listFn   func(ctx context.Context, userID uuid.UUID) ([]models.QuizResponse, error)
	countFn  func(ctx context.Context, userID uuid.UUID) (int64, error)
}

func (f *fakeRepository) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeRepository) UpsertResponses(ctx context.Context, rows []models.QuizResponse) error {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, rows)
	}
	return nil
}

func (f *fakeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.QuizResponse, error) {
	if f.listFn != nil {
		return f.listFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if f.countFn != nil {
		return f.countFn(ctx, userID)
	}
	return 0, nil
}

type fakeActivityRecorder struct {
	calls []string
	err   error
}

func (f *fakeActivityRecorder) Record(ctx context.Context, userID uuid.UUID, title, description, activityType string) (*models.UserActivity, error) {
	f.calls = append(f.calls, activityType)
	if f.err != nil {
		return nil, f.err
	}
	return &models.UserActivity{UserID: userID, Title: title, ActivityType: activityType}, nil
}

func newTestService(t *testing.T, repo Repository, recorder activityRecorder) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo, Activities: recorder})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestQuestions_CatalogShape(t *testing.T) {
	svc := newTestService(t, &fakeRepository{}, &fakeActivityRecorder{})

	questions := svc.Questions()
	if len(questions) != 15 {
		t.Fatalf("expected 15 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q.ID != i+1 {
			t.Fatalf("question %d has id %d", i, q.ID)
		}
		if q.Question == "" || len(q.Options) < 3 {
			t.Fatalf("question %d incomplete: %+v", q.ID, q)
		}
	}
	if questions[0].Question != "Como você descreveria seu momento atual da vida?" {
		t.Fatalf("unexpected first question: %q", questions[0].Question)
	}
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	svc := newTestService(t, &fakeRepository{}, &fakeActivityRecorder{})

	questions := svc.Questions()
	questions[0].Question = "mutated"

	if svc.Questions()[0].Question == "mutated" {
		t.Fatal("catalog must not be mutable through the returned slice")
	}
}

func TestSubmit_UpsertsRowsWithCatalogText(t *testing.T) {
	var gotRows []models.QuizResponse
	repo := &fakeRepository{
		upsertFn: func(ctx context.Context, rows []models.QuizResponse) error {
			gotRows = rows
			return nil
		},
	}
	recorder := &fakeActivityRecorder{}
	svc := newTestService(t, repo, recorder)
	userID := uuid.New()

	err := svc.Submit(context.Background(), userID, map[int]string{
		1: "Equilibrado",
		2: "Foco",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotRows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(gotRows))
	}
	if gotRows[0].QuestionID != 1 || gotRows[1].QuestionID != 2 {
		t.Fatalf("rows not ordered by question id: %+v", gotRows)
	}
	if gotRows[0].QuestionText != "Como você descreveria seu momento atual da vida?" {
		t.Fatalf("question text must come from the catalog, got %q", gotRows[0].QuestionText)
	}
	if len(recorder.calls) != 1 || recorder.calls[0] != "quiz_completed" {
		t.Fatalf("expected one quiz_completed activity, got %v", recorder.calls)
	}
}

func TestSubmit_RejectsUnknownQuestion(t *testing.T) {
	svc := newTestService(t, &fakeRepository{}, &fakeActivityRecorder{})

	err := svc.Submit(context.Background(), uuid.New(), map[int]string{16: "x"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmit_RejectsEmptyAnswer(t *testing.T) {
	svc := newTestService(t, &fakeRepository{}, &fakeActivityRecorder{})

	err := svc.Submit(context.Background(), uuid.New(), map[int]string{1: "   "})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmit_RejectsEmptySubmission(t *testing.T) {
	recorder := &fakeActivityRecorder{}
	svc := newTestService(t, &fakeRepository{}, recorder)

	err := svc.Submit(context.Background(), uuid.New(), nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(recorder.calls) != 0 {
		t.Fatal("must not record activity for rejected submissions")
	}
}

func TestSubmit_RepoErrorPropagates(t *testing.T) {
	repo := &fakeRepository{
		upsertFn: func(ctx context.Context, rows []models.QuizResponse) error {
			return errors.New("boom")
		},
	}
	recorder := &fakeActivityRecorder{}
	svc := newTestService(t, repo, recorder)

	err := svc.Submit(context.Background(), uuid.New(), map[int]string{1: "Equilibrado"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if len(recorder.calls) != 0 {
		t.Fatal("must not record activity when upsert fails")
	}
}

func TestCompleted_DerivedFromRowCount(t *testing.T) {
	repo := &fakeRepository{
		countFn: func(ctx context.Context, userID uuid.UUID) (int64, error) {
			return 1, nil
		},
	}
	svc := newTestService(t, repo, &fakeActivityRecorder{})

	done, err := svc.Completed(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !done {
		t.Fatal("expected completed with one row")
	}

	repo.countFn = func(ctx context.Context, userID uuid.UUID) (int64, error) { return 0, nil }
	done, err = svc.Completed(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if done {
		t.Fatal("expected incomplete with zero rows")
	}
}
