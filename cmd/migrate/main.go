package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"PredictAdmin/internal/config"
	"PredictAdmin/internal/database"

	_ "github.com/lib/pq"
)

func main() {
	var (
		dsn     = flag.String("dsn", "", "PostgreSQL DSN（默认读取配置 database.dsn）")
		command = flag.String("command", "", "Command to run (up, down, version)")
	)
	flag.Parse()

	if *command == "" {
		flag.Usage()
		os.Exit(1)
	}
	if *dsn == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("加载配置文件失败: %v", err)
		}
		*dsn = cfg.Database.DSN
	}

	db, err := sql.Open("postgres", *dsn)
	if err != nil {
		log.Fatalf("连接PostgreSQL失败: %v", err)
	}
	defer db.Close()

	m, err := database.NewMigrator(db)
	if err != nil {
		log.Fatalf("Migration init failed: %v", err)
	}
	defer m.Close()

	switch *command {
	case "up":
		if err := m.Up(); err != nil {
			log.Fatalf("Migration up failed: %v", err)
		}
	case "down":
		if err := m.Down(); err != nil {
			log.Fatalf("Migration down failed: %v", err)
		}
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			log.Fatalf("Get version failed: %v", err)
		}
		fmt.Printf("Version: %d, Dirty: %v\n", version, dirty)
	default:
		log.Fatalf("Unknown command: %s", *command)
	}
}
