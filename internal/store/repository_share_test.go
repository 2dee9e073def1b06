package store

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/recipebookapp/recipebook-server/internal/logger"
	"github.com/recipebookapp/recipebook-server/models"
)

const testShareID = "5d3e1f2a-7b8c-4d9e-a0b1-c2d3e4f5a6b7"

func newTestShareRepo(t *testing.T) (*shareRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &shareRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestShareRepository_Create_Success(t *testing.T) {
	repo, mock, db := newTestShareRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	share := models.ShareConfig{
		ID:        testShareID,
		GranterID: 1,
		GranteeID: 2,
		Role:      models.RoleEditor,
	}

	rows := sqlmock.
		NewRows([]string{"id", "granter_id", "grantee_id", "role", "created_at"}).
		AddRow(testShareID, int64(1), int64(2), "Editor", now)

	mock.ExpectQuery("INSERT INTO share_configs").
		WithArgs(testShareID, int64(1), int64(2), "Editor").
		WillReturnRows(rows)

	saved, err := repo.Create(ctx, share)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != testShareID {
		t.Errorf("expected id %s, got %s", testShareID, saved.ID)
	}
	if saved.Role != models.RoleEditor {
		t.Errorf("expected role Editor, got %s", saved.Role)
	}
}

func TestShareRepository_Create_UnknownUser(t *testing.T) {
	repo, mock, db := newTestShareRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO share_configs").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.Create(ctx, models.ShareConfig{ID: testShareID, GranterID: 1, GranteeID: 404})
	if !errors.Is(err, ErrUnknownUserReferenced) {
		t.Fatalf("expected ErrUnknownUserReferenced, got %v", err)
	}
}

func TestShareRepository_Delete_NotFound(t *testing.T) {
	repo, mock, db := newTestShareRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM share_configs").
		WithArgs(testShareID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(ctx, testShareID)
	if !errors.Is(err, ErrShareNotFound) {
		t.Fatalf("expected ErrShareNotFound, got %v", err)
	}
}

func TestShareRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, db := newTestShareRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WithArgs(testShareID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(ctx, testShareID)
	if !errors.Is(err, ErrShareNotFound) {
		t.Fatalf("expected ErrShareNotFound, got %v", err)
	}
}

func TestShareRepository_ListForUser_BothDirections(t *testing.T) {
	repo, mock, db := newTestShareRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "granter_id", "grantee_id", "role", "created_at"}).
		AddRow("share-1", int64(1), int64(2), "Editor", now).
		AddRow("share-2", int64(3), int64(1), "Viewer", now)

	mock.ExpectQuery("SELECT id").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	shares, err := repo.ListForUser(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shares) != 2 {
		t.Fatalf("expected 2 shares, got %d", len(shares))
	}
	if shares[1].GranterID != 3 || shares[1].GranteeID != 1 {
		t.Errorf("expected incoming grant 3->1, got %d->%d", shares[1].GranterID, shares[1].GranteeID)
	}
}

// The peer set is built from both columns of the directed rows, excludes the
// user itself, collapses duplicates and comes back sorted.
func TestShareRepository_SharedPeerIDs(t *testing.T) {
	repo, mock, db := newTestShareRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"granter_id", "grantee_id"}).
		AddRow(int64(1), int64(7)).
		AddRow(int64(5), int64(1)).
		AddRow(int64(1), int64(5)).
		AddRow(int64(1), int64(1))

	mock.ExpectQuery("SELECT granter_id").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	peers, err := repo.SharedPeerIDs(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int64{5, 7}; !reflect.DeepEqual(peers, want) {
		t.Errorf("expected peers %v, got %v", want, peers)
	}
}

func TestShareRepository_SharedPeerIDs_NoGrants(t *testing.T) {
	repo, mock, db := newTestShareRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT granter_id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"granter_id", "grantee_id"}))

	peers, err := repo.SharedPeerIDs(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(peers) != 0 {
		t.Errorf("expected no peers, got %v", peers)
	}
}

func TestShareRepository_SharingExists(t *testing.T) {
	repo, mock, db := newTestShareRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.SharingExists(ctx, 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected sharing to exist")
	}
}

func TestShareRepository_SharingExists_False(t *testing.T) {
	repo, mock, db := newTestShareRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(1), int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.SharingExists(ctx, 1, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected no sharing relation")
	}
}

// newRetryingShareRepo builds a repository whose connection classifies
// driver errors, the way the PostgreSQL connector wires it.
func newRetryingShareRepo(t *testing.T) (*shareRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &shareRepository{
		db: &DB{
			DB:                 db,
			logger:             l,
			errorClassificator: NewPostgresErrorClassifier(),
		},
		logger: l,
	}
	return repo, mock, db
}

func TestShareRepository_SharingExists_RetriesTransientFailure(t *testing.T) {
	repo, mock, db := newRetryingShareRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(1), int64(2)).
		WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.SharingExists(ctx, 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected sharing to exist after retry")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestShareRepository_SharingExists_NoRetryOnNonTransientFailure(t *testing.T) {
	repo, mock, db := newRetryingShareRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(1), int64(2)).
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.SharingExists(ctx, 1, 2)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Errorf("expected ErrExecutingQuery, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestShareRepository_SharedPeerIDs_RetriesTransientFailure(t *testing.T) {
	repo, mock, db := newRetryingShareRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT granter_id").
		WithArgs(int64(1)).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectQuery("SELECT granter_id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.
			NewRows([]string{"granter_id", "grantee_id"}).
			AddRow(int64(1), int64(7)))

	peers, err := repo.SharedPeerIDs(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int64{7}; !reflect.DeepEqual(peers, want) {
		t.Errorf("expected peers %v, got %v", want, peers)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
