package jobroles_test

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/codynn/internal/jobroles"
	"github.com/JaimeStill/codynn/pkg/pagination"
)

var columns = []string{"id", "name", "created_at", "updated_at"}

func newSystem(t *testing.T) (jobroles.System, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := pagination.Config{DefaultLimit: 6, MaxLimit: 100}
	return jobroles.New(db, slog.New(slog.DiscardHandler), cfg), mock
}

func TestCreate(t *testing.T) {
	sys, mock := newSystem(t)
	id := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM job_roles WHERE name = $1 AND id <> $2)")).
		WithArgs("Backend", uuid.Nil).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery("INSERT INTO job_roles").
		WithArgs(sqlmock.AnyArg(), "Backend").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(id.String(), "Backend", now, now))
	mock.ExpectCommit()

	role, err := sys.Create(context.Background(), jobroles.CreateCommand{Name: "Backend"})
	require.NoError(t, err)
	assert.Equal(t, id, role.ID)
	assert.Equal(t, "Backend", role.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Errors(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		sys, mock := newSystem(t)
		_, err := sys.Create(context.Background(), jobroles.CreateCommand{Name: "  "})
		assert.ErrorIs(t, err, jobroles.ErrValidation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate pre-check", func(t *testing.T) {
		sys, mock := newSystem(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		_, err := sys.Create(context.Background(), jobroles.CreateCommand{Name: "Backend"})
		assert.ErrorIs(t, err, jobroles.ErrDuplicate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation race", func(t *testing.T) {
		sys, mock := newSystem(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("INSERT INTO job_roles").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "job_roles_name_key"})
		mock.ExpectRollback()

		_, err := sys.Create(context.Background(), jobroles.CreateCommand{Name: "Backend"})
		assert.ErrorIs(t, err, jobroles.ErrDuplicate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestList_Alphabetical(t *testing.T) {
	sys, mock := newSystem(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM public.job_roles j")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY j.name ASC, j.created_at ASC, j.id ASC LIMIT 2 OFFSET 0")).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.NewString(), "Backend", now, now).
			AddRow(uuid.NewString(), "Frontend", now, now))

	result, err := sys.List(context.Background(), pagination.PageRequest{Page: 1, Limit: 2, SortBy: "alphabetical"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalPages)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "Backend", result.Data[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Empty(t *testing.T) {
	sys, mock := newSystem(t)

	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT (.+) FROM public.job_roles j").WillReturnRows(sqlmock.NewRows(columns))

	result, err := sys.List(context.Background(), pagination.PageRequest{Page: 1, Limit: 6})
	require.NoError(t, err)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
	assert.Equal(t, 0, result.TotalPages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_DuplicateName(t *testing.T) {
	sys, mock := newSystem(t)
	id := uuid.New()
	name := "Frontend"

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(name, id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := sys.Update(context.Background(), id, jobroles.UpdateCommand{Name: &name})
	assert.ErrorIs(t, err, jobroles.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_BlockedByQuestion(t *testing.T) {
	sys, mock := newSystem(t)
	id := uuid.New()
	question := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM interview_questions").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(question.String()))
	mock.ExpectRollback()

	err := sys.Delete(context.Background(), id)

	var inUse *jobroles.InUseError
	require.True(t, errors.As(err, &inUse))
	assert.Equal(t, "interviewQuestion", inUse.Kind)
	assert.Equal(t, question, inUse.ID)
	assert.ErrorIs(t, err, jobroles.ErrInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_ForeignKeyRace(t *testing.T) {
	sys, mock := newSystem(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM interview_questions").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("DELETE FROM job_roles").
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "interview_questions_job_role_fkey"})
	mock.ExpectRollback()

	err := sys.Delete(context.Background(), id)
	assert.ErrorIs(t, err, jobroles.ErrInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}
