package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixtures_Embedded(t *testing.T) {
	fx, err := loadFixtures("")
	require.NoError(t, err)

	assert.NotEmpty(t, fx.Languages)
	assert.NotEmpty(t, fx.JobRoles)
	assert.NotEmpty(t, fx.Documentation)
	assert.NotEmpty(t, fx.Videos)
	assert.NotEmpty(t, fx.Repositories)
	assert.NotEmpty(t, fx.Questions)
}

func TestLoadFixtures_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jobRoles:\n  - Data Engineer\n"), 0o644))

	fx, err := loadFixtures(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Data Engineer"}, fx.JobRoles)
	assert.Empty(t, fx.Languages)
}

func TestLoadFixtures_Missing(t *testing.T) {
	_, err := loadFixtures(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSeeders_Order(t *testing.T) {
	var names []string
	for _, s := range seeders {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"languages", "jobroles", "documentation", "videos", "repositories", "questions"}, names)
}

func TestRun_All(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	fx, err := loadFixtures("")
	require.NoError(t, err)

	langIDs := map[string]uuid.UUID{}
	for _, l := range fx.Languages {
		langIDs[l.LanguageType] = uuid.New()
	}
	roleIDs := map[string]uuid.UUID{}
	for _, r := range fx.JobRoles {
		roleIDs[r] = uuid.New()
	}

	mock.ExpectBegin()
	for range fx.Languages {
		mock.ExpectExec("INSERT INTO languages").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	for range fx.JobRoles {
		mock.ExpectExec("INSERT INTO job_roles").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	for range fx.Documentation {
		mock.ExpectExec("INSERT INTO documentation").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for _, v := range fx.Videos {
		mock.ExpectQuery("SELECT id FROM languages").
			WithArgs(v.Language).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(langIDs[v.Language]))
		mock.ExpectExec("INSERT INTO videos").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	for _, r := range fx.Repositories {
		mock.ExpectQuery("SELECT id FROM languages").
			WithArgs(r.Language).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(langIDs[r.Language]))
		mock.ExpectExec("INSERT INTO repositories").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	for _, q := range fx.Questions {
		mock.ExpectQuery("SELECT id FROM job_roles").
			WithArgs(q.JobRole).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(roleIDs[q.JobRole]))
		mock.ExpectExec("INSERT INTO interview_questions").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	inserted, err := run(context.Background(), db, fx)
	require.NoError(t, err)

	assert.Equal(t, len(fx.Languages), inserted["languages"])
	assert.Equal(t, 0, inserted["documentation"])
	assert.Equal(t, len(fx.Questions), inserted["questions"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_UnknownReferenceRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	fx := &Fixtures{
		Videos: []VideoFixture{{
			Title:    "Rust Ownership",
			Duration: "20:00",
			Level:    "intermediate",
			Language: "Rust",
			URL:      "https://videos.codynn.com/rust-ownership",
		}},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM languages").
		WithArgs("Rust").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err = run(context.Background(), db, fx, "videos")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown reference "Rust"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_InvalidFixture(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	fx := &Fixtures{
		Documentation: []DocumentationFixture{{Title: "Empty", Popularity: -1}},
	}

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err = run(context.Background(), db, fx, "documentation")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "popularity must be >= 0")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_UnknownSeeder(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = run(context.Background(), db, &Fixtures{}, "profiles")
	assert.EqualError(t, err, "seeder not found: profiles")
}
