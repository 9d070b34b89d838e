package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/codynn/pkg/repository"
)

var (
	errNotFound  = errors.New("not found")
	errDuplicate = errors.New("duplicate")
)

func TestMapError(t *testing.T) {
	other := errors.New("some other error")
	otherPg := &pgconn.PgError{Code: "12345"}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", sql.ErrNoRows, errNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, errDuplicate},
		{"other pg error", otherPg, otherPg},
		{"other error", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repository.MapError(tt.err, errNotFound, errDuplicate)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapError_WrappedNoRows(t *testing.T) {
	wrapped := errors.Join(errors.New("scan"), sql.ErrNoRows)
	assert.ErrorIs(t, repository.MapError(wrapped, errNotFound, errDuplicate), errNotFound)
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "videos_language_id_fkey"}

	assert.True(t, repository.IsForeignKeyViolation(fk))
	assert.False(t, repository.IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, repository.IsForeignKeyViolation(errors.New("x")))
	assert.Equal(t, "videos_language_id_fkey", repository.ConstraintName(fk))
	assert.Empty(t, repository.ConstraintName(errors.New("x")))
}

type row struct {
	ID   int
	Name string
}

func scanRow(s repository.Scanner) (row, error) {
	var r row
	err := s.Scan(&r.ID, &r.Name)
	return r, err
}

func TestQueryMany(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name FROM job_roles").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Backend").
			AddRow(2, "Frontend"))

	rows, err := repository.QueryMany(context.Background(), db, "SELECT id, name FROM job_roles", nil, scanRow)
	require.NoError(t, err)
	assert.Equal(t, []row{{1, "Backend"}, {2, "Frontend"}}, rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryMany_EmptyIsNotNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	rows, err := repository.QueryMany(context.Background(), db, "SELECT id, name FROM job_roles", nil, scanRow)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestQueryOne_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WithArgs(7).WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err = repository.QueryOne(context.Background(), db, "SELECT id, name FROM job_roles WHERE id = $1", []any{7}, scanRow)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").WithArgs("go").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repository.Exists(context.Background(), db, "SELECT EXISTS(SELECT 1 FROM languages WHERE language_type = $1)", "go")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWithTx_Commit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM job_roles").WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err = repository.WithTx(context.Background(), db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(context.Background(), tx, "DELETE FROM job_roles WHERE id = $1", 1)
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM job_roles").WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err = repository.WithTx(context.Background(), db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(context.Background(), tx, "DELETE FROM job_roles WHERE id = $1", 1)
	})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecExpectOne_TooMany(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE").WillReturnResult(sqlmock.NewResult(0, 2))

	err = repository.ExecExpectOne(context.Background(), db, "UPDATE job_roles SET name = name")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, sql.ErrNoRows)
}
