package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgdb "github.com/raizapp/raizapp-backend/pkg/db"
	"github.com/raizapp/raizapp-backend/pkg/db/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:auth_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.AuthAccount{}); err != nil {
		t.Fatalf("migrate accounts: %v", err)
	}
	return db
}

func TestRepo_CreateAndFindByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	account := &models.AuthAccount{
		Email:        "maria@example.com",
		PasswordHash: "$argon2id$stub",
		Name:         "Maria",
	}
	if err := repo.Create(ctx, account); err != nil {
		t.Fatalf("create: %v", err)
	}
	if account.ID == uuid.Nil {
		t.Fatal("expected an assigned id")
	}

	got, err := repo.FindByEmail(ctx, "maria@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ID != account.ID || got.Name != "Maria" {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestRepo_DuplicateEmailClassifiedAsDuplicateKey(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	first := &models.AuthAccount{Email: "maria@example.com", PasswordHash: "h", Name: "Maria"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}

	second := &models.AuthAccount{Email: "maria@example.com", PasswordHash: "h", Name: "Other"}
	err := repo.Create(ctx, second)
	if err == nil {
		t.Fatal("expected duplicate insert to fail")
	}
	if pkgdb.KindOf(err) != pkgdb.KindDuplicateKey {
		t.Fatalf("expected duplicate key kind, got %v (%v)", pkgdb.KindOf(err), err)
	}
}

func TestRepo_FindMissReturnsRecordNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByEmail(context.Background(), "ninguem@example.com")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestRepo_UpdateLastLogin(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	account := &models.AuthAccount{Email: "joao@example.com", PasswordHash: "h", Name: "João"}
	if err := repo.Create(ctx, account); err != nil {
		t.Fatalf("create: %v", err)
	}

	at := time.Now().UTC().Truncate(time.Second)
	if err := repo.UpdateLastLogin(ctx, account.ID, at); err != nil {
		t.Fatalf("update last login: %v", err)
	}

	got, err := repo.FindByID(ctx, account.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.LastLoginAt == nil || !got.LastLoginAt.Equal(at) {
		t.Fatalf("last login not recorded: %+v", got.LastLoginAt)
	}
}
