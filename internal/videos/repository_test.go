package videos_test

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

	"github.com/JaimeStill/codynn/internal/languages"
	"github.com/JaimeStill/codynn/internal/videos"
	"github.com/JaimeStill/codynn/pkg/pagination"
)

var columns = []string{"id", "title", "duration", "level", "language", "url", "image", "created_at", "updated_at"}

// knownLanguages satisfies languages.System for reference checks.
type knownLanguages struct {
	languages.System
	ids map[uuid.UUID]bool
	err error
}

func (k *knownLanguages) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return k.ids[id], k.err
}

func newSystem(t *testing.T, langs *knownLanguages) (videos.System, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := pagination.Config{DefaultLimit: 6, MaxLimit: 100}
	return videos.New(langs, db, slog.New(slog.DiscardHandler), cfg), mock
}

func videoRow(id, language uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(columns).
		AddRow(id.String(), "Intro", "10:00", "beginner", language.String(), "https://v/1", "", now, now)
}

func TestCreate(t *testing.T) {
	lang := uuid.New()
	sys, mock := newSystem(t, &knownLanguages{ids: map[uuid.UUID]bool{lang: true}})
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO videos").
		WithArgs(sqlmock.AnyArg(), "Intro", "10:00", "beginner", lang, "https://v/1", "").
		WillReturnRows(videoRow(id, lang))
	mock.ExpectCommit()

	v, err := sys.Create(context.Background(), videos.CreateCommand{
		Title:    "Intro",
		Duration: "10:00",
		Level:    videos.Beginner,
		Language: lang,
		URL:      "https://v/1",
	})
	require.NoError(t, err)
	assert.Equal(t, id, v.ID)
	assert.Equal(t, videos.Beginner, v.Level)
	assert.Equal(t, lang, v.Language)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Rejected(t *testing.T) {
	lang := uuid.New()
	valid := videos.CreateCommand{Title: "Intro", Duration: "10:00", Level: videos.Advanced, Language: lang, URL: "u"}

	tests := []struct {
		name    string
		mutate  func(*videos.CreateCommand)
		wantErr error
	}{
		{"bad level", func(c *videos.CreateCommand) { c.Level = "expert" }, videos.ErrValidation},
		{"missing url", func(c *videos.CreateCommand) { c.URL = "" }, videos.ErrValidation},
		{"missing language", func(c *videos.CreateCommand) { c.Language = uuid.Nil }, videos.ErrValidation},
		{"unknown language", func(c *videos.CreateCommand) { c.Language = uuid.New() }, videos.ErrInvalidReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, mock := newSystem(t, &knownLanguages{ids: map[uuid.UUID]bool{lang: true}})

			cmd := valid
			tt.mutate(&cmd)

			_, err := sys.Create(context.Background(), cmd)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreate_ForeignKeyRace(t *testing.T) {
	lang := uuid.New()
	sys, mock := newSystem(t, &knownLanguages{ids: map[uuid.UUID]bool{lang: true}})

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO videos").
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "videos_language_fkey"})
	mock.ExpectRollback()

	_, err := sys.Create(context.Background(), videos.CreateCommand{
		Title: "Intro", Duration: "1:00", Level: videos.Beginner, Language: lang, URL: "u",
	})
	assert.ErrorIs(t, err, videos.ErrInvalidReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Filters(t *testing.T) {
	lang := uuid.New()
	sys, mock := newSystem(t, &knownLanguages{ids: map[uuid.UUID]bool{lang: true}})

	level := videos.Intermediate
	search := "loops"

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM public.videos v WHERE (v.title ILIKE $1) AND v.language = $2 AND v.level = $3")).
		WithArgs("%loops%", lang, "intermediate").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY v.created_at ASC, v.id ASC LIMIT 6 OFFSET 0")).
		WithArgs("%loops%", lang, "intermediate").
		WillReturnRows(videoRow(uuid.New(), lang))

	result, err := sys.List(context.Background(),
		pagination.PageRequest{Page: 1, Limit: 6, Search: &search},
		videos.Filters{Language: &lang, Level: &level},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_LevelOnlyFilter(t *testing.T) {
	sys, mock := newSystem(t, &knownLanguages{})
	level := videos.Advanced

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM public.videos v WHERE v.level = $1")).
		WithArgs("advanced").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE v.level = $1 ORDER BY")).
		WithArgs("advanced").
		WillReturnRows(sqlmock.NewRows(columns))

	result, err := sys.List(context.Background(),
		pagination.PageRequest{Page: 1, Limit: 6},
		videos.Filters{Level: &level},
	)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_UnknownLanguageFilter(t *testing.T) {
	sys, mock := newSystem(t, &knownLanguages{})
	missing := uuid.New()

	_, err := sys.List(context.Background(), pagination.PageRequest{Page: 1, Limit: 6}, videos.Filters{Language: &missing})
	assert.ErrorIs(t, err, videos.ErrInvalidReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	lang := uuid.New()
	other := uuid.New()
	sys, mock := newSystem(t, &knownLanguages{ids: map[uuid.UUID]bool{lang: true}})
	id := uuid.New()

	t.Run("reference re-resolved", func(t *testing.T) {
		_, err := sys.Update(context.Background(), id, videos.UpdateCommand{Language: &other})
		assert.ErrorIs(t, err, videos.ErrInvalidReference)
	})

	t.Run("level re-validated", func(t *testing.T) {
		bad := videos.Level("Beginner")
		_, err := sys.Update(context.Background(), id, videos.UpdateCommand{Level: &bad})
		assert.ErrorIs(t, err, videos.ErrValidation)
	})

	t.Run("partial", func(t *testing.T) {
		level := videos.Advanced
		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE videos SET").
			WithArgs(id, nil, nil, "advanced", nil, nil, nil).
			WillReturnRows(videoRow(id, lang))
		mock.ExpectCommit()

		_, err := sys.Update(context.Background(), id, videos.UpdateCommand{Level: &level})
		require.NoError(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFind_StoreError(t *testing.T) {
	sys, mock := newSystem(t, &knownLanguages{})
	boom := errors.New("connection reset")

	mock.ExpectQuery("SELECT (.+) FROM public.videos v").WillReturnError(boom)

	_, err := sys.Find(context.Background(), uuid.New())
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, videos.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
