package main

import (
	"flag"
	"log"

	"github.com/icerikfikri/blog-backend/internal/config"
	"github.com/icerikfikri/blog-backend/internal/migration"
	pkglogger "github.com/icerikfikri/blog-backend/pkg/logger"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "configs/config.local.yaml", "config file path")
	recompile := flag.Bool("recompile", false, "rebuild html_content of every blog from its stored blocks")
	verbose := flag.Bool("verbose", false, "verbose SQL logging")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	pkglogger.InitStructured(cfg.Env)

	logLevel := gormlogger.Warn
	if *verbose {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.GetDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying DB: %v", err)
	}
	defer sqlDB.Close()

	if err := migration.Run(db); err != nil {
		log.Fatalf("Schema migration failed: %v", err)
	}
	log.Println("Schema up to date")

	if !*recompile {
		return
	}

	updated, skipped, err := migration.RecompileHTML(db)
	if err != nil {
		log.Fatalf("Recompile failed after %d rows: %v", updated, err)
	}
	log.Printf("Recompiled html_content: %d updated, %d skipped", updated, skipped)
}
