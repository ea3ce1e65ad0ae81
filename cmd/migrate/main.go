package main

import (
	"log"
	"os"

	"testinesia-be/internal/model"
	"testinesia-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	log.Println("Step 1: Setting up Extensions and Enums...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,

		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'plan_type') THEN CREATE TYPE plan_type AS ENUM ('MONTHLY', 'YEARLY', 'LIFETIME'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'subscription_type') THEN CREATE TYPE subscription_type AS ENUM ('free', 'premium'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'admin_role') THEN CREATE TYPE admin_role AS ENUM ('superadmin', 'admin', 'inputer'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'transaction_status') THEN CREATE TYPE transaction_status AS ENUM ('PENDING', 'SUCCESS', 'FAILED', 'ACTIVE', 'INACTIVE'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'form_status') THEN CREATE TYPE form_status AS ENUM ('DRAFT', 'PUBLISHED', 'PAUSED'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'testimonial_type') THEN CREATE TYPE testimonial_type AS ENUM ('text', 'video', 'import'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'testimonial_source') THEN CREATE TYPE testimonial_source AS ENUM ('instagram', 'twitter', 'facebook', 'linkedin', 'tiktok', 'youtube', 'other'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'testimonial_status') THEN CREATE TYPE testimonial_status AS ENUM ('pending', 'approved', 'unapproved'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'showcase_status') THEN CREATE TYPE showcase_status AS ENUM ('draft', 'active', 'not-active'); END IF; END $$;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.Admin{},
		&model.Subscription{},
		&model.OrderSubscription{},
		&model.CurrentSubscription{},
		&model.Project{},
		&model.CurrentProject{},
		&model.Form{},
		&model.Testimonial{},
		&model.Showcase{},
		&model.Widget{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}

	log.Println("Migration completed successfully!")
}
