package repositories_test

import (
	"context"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/codynn/internal/languages"
	"github.com/JaimeStill/codynn/internal/repositories"
	"github.com/JaimeStill/codynn/pkg/pagination"
)

var columns = []string{"id", "title", "language", "no_of_lessons", "created_at", "updated_at"}

type knownLanguages struct {
	languages.System
	ids map[uuid.UUID]bool
}

func (k *knownLanguages) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return k.ids[id], nil
}

func newSystem(t *testing.T, known ...uuid.UUID) (repositories.System, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	langs := &knownLanguages{ids: make(map[uuid.UUID]bool)}
	for _, id := range known {
		langs.ids[id] = true
	}

	cfg := pagination.Config{DefaultLimit: 6, MaxLimit: 100}
	return repositories.New(langs, db, slog.New(slog.DiscardHandler), cfg), mock
}

func intPtr(n int) *int { return &n }

func TestCreate(t *testing.T) {
	lang := uuid.New()
	sys, mock := newSystem(t, lang)
	id := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO repositories").
		WithArgs(sqlmock.AnyArg(), "Basics", lang, 0).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(id.String(), "Basics", lang.String(), 0, now, now))
	mock.ExpectCommit()

	rp, err := sys.Create(context.Background(), repositories.CreateCommand{
		Title:       "Basics",
		Language:    lang,
		NoOfLessons: intPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, rp.NoOfLessons)
	assert.Equal(t, lang, rp.Language)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Rejected(t *testing.T) {
	lang := uuid.New()

	tests := []struct {
		name    string
		cmd     repositories.CreateCommand
		wantErr error
	}{
		{"missing lessons", repositories.CreateCommand{Title: "T", Language: lang}, repositories.ErrValidation},
		{"negative lessons", repositories.CreateCommand{Title: "T", Language: lang, NoOfLessons: intPtr(-1)}, repositories.ErrValidation},
		{"missing title", repositories.CreateCommand{Language: lang, NoOfLessons: intPtr(3)}, repositories.ErrValidation},
		{"unknown language", repositories.CreateCommand{Title: "T", Language: uuid.New(), NoOfLessons: intPtr(3)}, repositories.ErrInvalidReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, mock := newSystem(t, lang)

			_, err := sys.Create(context.Background(), tt.cmd)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestList_LanguageFilter(t *testing.T) {
	lang := uuid.New()
	sys, mock := newSystem(t, lang)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM public.repositories r WHERE r.language = $1")).
		WithArgs(lang).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(13))
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT 6 OFFSET 12")).
		WillReturnRows(sqlmock.NewRows(columns))

	result, err := sys.List(context.Background(), pagination.PageRequest{Page: 3, Limit: 6}, repositories.Filters{Language: &lang})
	require.NoError(t, err)
	assert.Equal(t, 13, result.Total)
	assert.Equal(t, 3, result.TotalPages)
	assert.Empty(t, result.Data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	sys, mock := newSystem(t)
	title := "Advanced"

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE repositories SET").WillReturnRows(sqlmock.NewRows(columns))
	mock.ExpectRollback()

	_, err := sys.Update(context.Background(), uuid.New(), repositories.UpdateCommand{Title: &title})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	sys, mock := newSystem(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM repositories").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, sys.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}
