package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/JaimeStill/codynn/internal/docs"
	"github.com/JaimeStill/codynn/internal/jobroles"
	"github.com/JaimeStill/codynn/internal/languages"
	"github.com/JaimeStill/codynn/internal/questions"
	"github.com/JaimeStill/codynn/internal/repositories"
	"github.com/JaimeStill/codynn/internal/videos"
	"github.com/JaimeStill/codynn/pkg/repository"
)

func init() {
	registerSeeder(languageSeeder{})
	registerSeeder(jobRoleSeeder{})
	registerSeeder(documentationSeeder{})
	registerSeeder(videoSeeder{})
	registerSeeder(repositorySeeder{})
	registerSeeder(questionSeeder{})
}

func exec(ctx context.Context, tx *sql.Tx, query string, args ...any) (int, error) {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func lookupID(ctx context.Context, tx *sql.Tx, query, key string) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRowContext(ctx, query, key).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("unknown reference %q", key)
	}
	return id, err
}

type languageSeeder struct{}

func (languageSeeder) Name() string        { return "languages" }
func (languageSeeder) Description() string { return "Seeds programming-language profiles" }

func (languageSeeder) Seed(ctx context.Context, tx *sql.Tx, fx *Fixtures) (int, error) {
	const query = `
		INSERT INTO languages (
			id, language_type, language_extension, app_icon, application_name, app_store_link,
			banner_image, description, playstore_link, images, qr_image, features)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9, $10::jsonb, $11, $12::jsonb)
		ON CONFLICT ON CONSTRAINT languages_language_type_key DO NOTHING`

	total := 0
	for _, f := range fx.Languages {
		features := make([]languages.Feature, len(f.Features))
		for i, ft := range f.Features {
			features[i] = languages.Feature{FeatureTitle: ft.Title, FeatureDescription: ft.Description}
		}

		cmd := languages.CreateCommand{
			LanguageType:      f.LanguageType,
			LanguageExtension: f.LanguageExtension,
			AppIcon:           f.AppIcon,
			ApplicationName:   f.ApplicationName,
			AppStoreLink:      f.AppStoreLink,
			BannerImage:       f.BannerImage,
			Description:       f.Description,
			PlaystoreLink:     f.PlaystoreLink,
			Images:            f.Images,
			QRImage:           f.QRImage,
			Features:          features,
		}
		if err := cmd.Validate(); err != nil {
			return total, fmt.Errorf("language %q: %w", f.LanguageType, err)
		}

		n, err := exec(ctx, tx, query,
			uuid.New(), cmd.LanguageType, cmd.LanguageExtension, cmd.AppIcon, cmd.ApplicationName,
			cmd.AppStoreLink, cmd.BannerImage, repository.JSON[[]string]{V: cmd.Description},
			cmd.PlaystoreLink, repository.JSON[[]string]{V: cmd.Images}, cmd.QRImage,
			repository.JSON[[]languages.Feature]{V: cmd.Features},
		)
		if err != nil {
			return total, fmt.Errorf("language %q: %w", f.LanguageType, err)
		}
		total += n
	}
	return total, nil
}

type jobRoleSeeder struct{}

func (jobRoleSeeder) Name() string        { return "jobroles" }
func (jobRoleSeeder) Description() string { return "Seeds interview job roles" }

func (jobRoleSeeder) Seed(ctx context.Context, tx *sql.Tx, fx *Fixtures) (int, error) {
	const query = `
		INSERT INTO job_roles (id, name) VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT job_roles_name_key DO NOTHING`

	total := 0
	for _, name := range fx.JobRoles {
		cmd := jobroles.CreateCommand{Name: name}
		if err := cmd.Validate(); err != nil {
			return total, err
		}
		n, err := exec(ctx, tx, query, uuid.New(), cmd.Name)
		if err != nil {
			return total, fmt.Errorf("job role %q: %w", name, err)
		}
		total += n
	}
	return total, nil
}

type documentationSeeder struct{}

func (documentationSeeder) Name() string        { return "documentation" }
func (documentationSeeder) Description() string { return "Seeds documentation articles" }

func (documentationSeeder) Seed(ctx context.Context, tx *sql.Tx, fx *Fixtures) (int, error) {
	const query = `
		INSERT INTO documentation (id, title, content, popularity) VALUES ($1, $2, $3::jsonb, $4)
		ON CONFLICT ON CONSTRAINT documentation_title_key DO NOTHING`

	total := 0
	for _, f := range fx.Documentation {
		cmd := docs.CreateCommand{Title: f.Title, Content: f.Content, Popularity: f.Popularity}
		if err := cmd.Validate(); err != nil {
			return total, fmt.Errorf("documentation %q: %w", f.Title, err)
		}
		n, err := exec(ctx, tx, query, uuid.New(), cmd.Title, repository.JSON[[]string]{V: cmd.Content}, cmd.Popularity)
		if err != nil {
			return total, fmt.Errorf("documentation %q: %w", f.Title, err)
		}
		total += n
	}
	return total, nil
}

const languageByType = `SELECT id FROM languages WHERE language_type = $1`

type videoSeeder struct{}

func (videoSeeder) Name() string        { return "videos" }
func (videoSeeder) Description() string { return "Seeds tutorial videos for seeded languages" }

func (videoSeeder) Seed(ctx context.Context, tx *sql.Tx, fx *Fixtures) (int, error) {
	const query = `
		INSERT INTO videos (id, title, duration, level, language, url, image)
		SELECT $1::uuid, $2::text, $3::text, $4::text, $5::uuid, $6::text, $7::text
		WHERE NOT EXISTS (SELECT 1 FROM videos WHERE title = $2 AND language = $5)`

	total := 0
	for _, f := range fx.Videos {
		langID, err := lookupID(ctx, tx, languageByType, f.Language)
		if err != nil {
			return total, fmt.Errorf("video %q: %w", f.Title, err)
		}

		cmd := videos.CreateCommand{
			Title:    f.Title,
			Duration: f.Duration,
			Level:    videos.Level(f.Level),
			Language: langID,
			URL:      f.URL,
			Image:    f.Image,
		}
		if err := cmd.Validate(); err != nil {
			return total, fmt.Errorf("video %q: %w", f.Title, err)
		}

		n, err := exec(ctx, tx, query, uuid.New(), cmd.Title, cmd.Duration, string(cmd.Level), cmd.Language, cmd.URL, cmd.Image)
		if err != nil {
			return total, fmt.Errorf("video %q: %w", f.Title, err)
		}
		total += n
	}
	return total, nil
}

type repositorySeeder struct{}

func (repositorySeeder) Name() string        { return "repositories" }
func (repositorySeeder) Description() string { return "Seeds lesson repositories for seeded languages" }

func (repositorySeeder) Seed(ctx context.Context, tx *sql.Tx, fx *Fixtures) (int, error) {
	const query = `
		INSERT INTO repositories (id, title, language, no_of_lessons)
		SELECT $1::uuid, $2::text, $3::uuid, $4::integer
		WHERE NOT EXISTS (SELECT 1 FROM repositories WHERE title = $2 AND language = $3)`

	total := 0
	for _, f := range fx.Repositories {
		langID, err := lookupID(ctx, tx, languageByType, f.Language)
		if err != nil {
			return total, fmt.Errorf("repository %q: %w", f.Title, err)
		}

		lessons := f.NoOfLessons
		cmd := repositories.CreateCommand{Title: f.Title, Language: langID, NoOfLessons: &lessons}
		if err := cmd.Validate(); err != nil {
			return total, fmt.Errorf("repository %q: %w", f.Title, err)
		}

		n, err := exec(ctx, tx, query, uuid.New(), cmd.Title, cmd.Language, *cmd.NoOfLessons)
		if err != nil {
			return total, fmt.Errorf("repository %q: %w", f.Title, err)
		}
		total += n
	}
	return total, nil
}

type questionSeeder struct{}

func (questionSeeder) Name() string        { return "questions" }
func (questionSeeder) Description() string { return "Seeds interview questions for seeded job roles" }

func (questionSeeder) Seed(ctx context.Context, tx *sql.Tx, fx *Fixtures) (int, error) {
	const (
		roleByName = `SELECT id FROM job_roles WHERE name = $1`
		query      = `
			INSERT INTO interview_questions (id, question, answer, job_role, level)
			SELECT $1::uuid, $2::text, $3::text, $4::uuid, $5::text
			WHERE NOT EXISTS (SELECT 1 FROM interview_questions WHERE question = $2 AND job_role = $4)`
	)

	total := 0
	for _, f := range fx.Questions {
		roleID, err := lookupID(ctx, tx, roleByName, f.JobRole)
		if err != nil {
			return total, fmt.Errorf("question %q: %w", f.Question, err)
		}

		cmd := questions.CreateCommand{
			Question: f.Question,
			Answer:   f.Answer,
			JobRole:  roleID,
			Level:    questions.Level(f.Level),
		}
		if err := cmd.Validate(); err != nil {
			return total, fmt.Errorf("question %q: %w", f.Question, err)
		}

		n, err := exec(ctx, tx, query, uuid.New(), cmd.Question, cmd.Answer, cmd.JobRole, string(cmd.Level))
		if err != nil {
			return total, fmt.Errorf("question %q: %w", f.Question, err)
		}
		total += n
	}
	return total, nil
}
