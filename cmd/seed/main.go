package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/codynn/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", config.BaseConfigFile, "path to the base configuration file")
		dsn        = flag.String("dsn", "", "database connection string (overrides configuration)")
		only       = flag.String("only", "", "comma-separated seeders to run (default all)")
		file       = flag.String("file", "", "external fixture file (overrides embedded)")
		list       = flag.Bool("list", false, "list available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range seeders {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	if *dsn == "" {
		cfg, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("config load failed: %v", err)
		}
		*dsn = cfg.Database.Dsn()
	}

	fx, err := loadFixtures(*file)
	if err != nil {
		log.Fatalf("fixtures: %v", err)
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	var names []string
	if *only != "" {
		names = strings.Split(*only, ",")
	}

	inserted, err := run(ctx, db, fx, names...)
	if err != nil {
		log.Printf("seeding failed: %v", err)
		os.Exit(1)
	}

	for _, s := range seeders {
		if n, ok := inserted[s.Name()]; ok {
			fmt.Printf("%s: %d inserted\n", s.Name(), n)
		}
	}
}
