// Command migrate applies or rolls back the catalog schema.
//
//	migrate up
//	migrate down
//	migrate steps -n 1
//	migrate version
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/JaimeStill/codynn/internal/config"
	"github.com/JaimeStill/codynn/internal/migrations"
	"github.com/JaimeStill/codynn/pkg/logging"
)

func main() {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	configPath := fs.String("config", config.BaseConfigFile, "path to the base configuration file")
	steps := fs.Int("n", 1, "number of migrations for the steps command; negative rolls back")

	if len(os.Args) < 2 {
		usage(fs)
		os.Exit(2)
	}
	command := os.Args[1]
	fs.Parse(os.Args[2:])

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatal("config load failed: ", err)
	}

	logger := logging.New(&cfg.Logging).With("command", "migrate")
	dsn := cfg.Database.Dsn()

	switch command {
	case "up":
		err = migrations.Up(dsn, logger)
	case "down":
		err = migrations.Down(dsn, logger)
	case "steps":
		err = migrations.Steps(dsn, *steps, logger)
	case "version":
		var (
			version uint
			dirty   bool
		)
		version, dirty, err = migrations.Version(dsn, logger)
		if err == nil {
			fmt.Printf("version %d (dirty: %t)\n", version, dirty)
		}
	default:
		usage(fs)
		os.Exit(2)
	}

	if err != nil {
		logger.Error("migration failed", "command", command, "error", err)
		os.Exit(1)
	}
	logger.Info("migration complete", "command", command)
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "usage: migrate <up|down|steps|version> [flags]")
	fs.PrintDefaults()
}
