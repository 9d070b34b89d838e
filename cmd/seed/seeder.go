// Package main provides the seed command for populating the catalog with
// fixture data. Seeders run in registration order inside one transaction so
// rows that reference a language or job role find their parent already written.
package main

import (
	"context"
	"database/sql"
	"fmt"
)

// Seeder populates one slice of the catalog from fixtures.
type Seeder interface {
	Name() string
	Description() string

	// Seed writes fixture rows within tx. Rows already present are skipped,
	// so running a seeder twice leaves the catalog unchanged.
	Seed(ctx context.Context, tx *sql.Tx, fx *Fixtures) (int, error)
}

var seeders []Seeder

func registerSeeder(s Seeder) {
	seeders = append(seeders, s)
}

func getSeeder(name string) (Seeder, bool) {
	for _, s := range seeders {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// run executes the named seeders, or every seeder when names is empty,
// within a single transaction.
func run(ctx context.Context, db *sql.DB, fx *Fixtures, names ...string) (map[string]int, error) {
	selected := seeders
	if len(names) > 0 {
		selected = make([]Seeder, 0, len(names))
		for _, name := range names {
			s, ok := getSeeder(name)
			if !ok {
				return nil, fmt.Errorf("seeder not found: %s", name)
			}
			selected = append(selected, s)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	inserted := make(map[string]int, len(selected))
	for _, s := range selected {
		n, err := s.Seed(ctx, tx, fx)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		inserted[s.Name()] = n
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return inserted, nil
}
