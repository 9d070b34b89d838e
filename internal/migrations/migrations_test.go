package migrations_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/JaimeStill/codynn/internal/migrations"
)

func TestFiles_Paired(t *testing.T) {
	entries, err := fs.ReadDir(migrations.Files(), "sql")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no migrations embedded")
	}

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected file %q", name)
		}
	}

	for base := range ups {
		if !downs[base] {
			t.Errorf("migration %s has no down file", base)
		}
	}
	for base := range downs {
		if !ups[base] {
			t.Errorf("migration %s has no up file", base)
		}
	}
}

func TestFiles_SchemaConstraints(t *testing.T) {
	data, err := fs.ReadFile(migrations.Files(), "sql/000001_create_catalog.up.sql")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	schema := string(data)

	for _, want := range []string{
		"languages_language_type_key UNIQUE (language_type)",
		"documentation_title_key UNIQUE (title)",
		"job_roles_name_key UNIQUE (name)",
		"REFERENCES languages (id) ON DELETE RESTRICT",
		"REFERENCES job_roles (id) ON DELETE RESTRICT",
	} {
		if !strings.Contains(schema, want) {
			t.Errorf("schema missing %q", want)
		}
	}
}
