package main

import (
	"log"
	"os"
	"time"

	"testinesia-be/internal/entity"
	"testinesia-be/internal/mapper"
	"testinesia-be/internal/model"
	"testinesia-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// defaultFreeFeatures is the ledger a fresh account starts with.
func defaultFreeFeatures() entity.FeatureMap {
	return entity.FeatureMap{
		entity.FeatureProject: entity.Count(1),
		entity.FeatureForm: entity.Count(1),
		entity.FeatureShowcasePage: entity.Count(1),
		entity.FeatureMaxTestimoni: entity.Count(10),
		entity.FeatureVideo: entity.Count(1),
		entity.FeatureRemoveBrand: entity.Flag(false),
		entity.FeatureUnlimitedTag: entity.Flag(false),
		entity.FeatureUnlimitedImportSocialMedia: entity.Flag(true),
	}
}

func premiumMonthlyFeatures() entity.FeatureMap {
	return entity.FeatureMap{
		entity.FeatureProject: entity.Count(5),
		entity.FeatureForm: entity.Count(10),
		entity.FeatureShowcasePage: entity.Count(5),
		entity.FeatureMaxTestimoni: entity.Count(200),
		entity.FeatureVideo: entity.Count(50),
		entity.FeatureImportSocialMedia: entity.Count(100),
		entity.FeatureRemoveBrand: entity.Flag(true),
		entity.FeatureUnlimitedTag: entity.Flag(true),
		entity.FeatureUnlimitedImportSocialMedia: entity.Flag(false),
	}
}

func lifetimeFeatures() entity.FeatureMap {
	return entity.FeatureMap{
		entity.FeatureProject: entity.Unlimited(),
		entity.FeatureForm: entity.Unlimited(),
		entity.FeatureShowcasePage: entity.Unlimited(),
		entity.FeatureMaxTestimoni: entity.Unlimited(),
		entity.FeatureVideo: entity.Unlimited(),
		entity.FeatureImportSocialMedia: entity.Unlimited(),
		entity.FeatureRemoveBrand: entity.Flag(true),
		entity.FeatureUnlimitedTag: entity.Flag(true),
		entity.FeatureUnlimitedImportSocialMedia: entity.Flag(true),
	}
}

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

	color.Cyan("Seeding Testinesia catalog...")

	superadminId := seedSuperadmin(db)
	seedPlans(db, superadminId)

	color.Green("Seeding completed!")
}

func seedSuperadmin(db *gorm.DB) uuid.UUID {
	email := os.Getenv("SEED_SUPERADMIN_EMAIL")
	if email == "" {
		email = "superadmin@testinesia.id"
	}
	password := os.Getenv("SEED_SUPERADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe123!"
		color.Yellow("SEED_SUPERADMIN_PASSWORD not set, using the default. Change it.")
	}

	var existing model.Admin
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("Superadmin '%s' already exists, skipping...", email)
		return existing.Id
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash superadmin password:", err)
	}

	admin := model.Admin{
		Id:           uuid.New(),
		Name:         "Super Admin",
		Email:        email,
		PasswordHash: string(hashed),
		Role:         string(entity.AdminRoleSuperadmin),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Error: Failed to create superadmin:", err)
	}

	color.Green("Created superadmin: %s", email)
	return admin.Id
}

func seedPlans(db *gorm.DB, adminId uuid.UUID) {
	m := mapper.NewSubscriptionMapper()
	now := time.Now()

	plans := []*entity.Subscription{
		{
			Id:          uuid.New(),
			AdminId:     adminId,
			Name:        "Free",
			Description: "Get started collecting testimonials",
			Features:    defaultFreeFeatures(),
			Price:       0,
			Position:    1,
			PlanType:    entity.PlanTypeLifetime,
			Type:        entity.SubscriptionTypeFree,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Id:          uuid.New(),
			AdminId:     adminId,
			Name:        "Pro Monthly",
			Description: "For growing businesses",
			Features:    premiumMonthlyFeatures(),
			Price:       99000,
			Position:    2,
			PlanType:    entity.PlanTypeMonthly,
			Type:        entity.SubscriptionTypePremium,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Id:          uuid.New(),
			AdminId:     adminId,
			Name:        "Pro Yearly",
			Description: "Two months free, billed yearly",
			Features:    premiumMonthlyFeatures(),
			Price:       990000,
			Position:    3,
			PlanType:    entity.PlanTypeYearly,
			Type:        entity.SubscriptionTypePremium,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Id:          uuid.New(),
			AdminId:     adminId,
			Name:        "Lifetime",
			Description: "Pay once, collect forever",
			Features:    lifetimeFeatures(),
			Price:       2990000,
			Position:    4,
			PlanType:    entity.PlanTypeLifetime,
			Type:        entity.SubscriptionTypePremium,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	for _, plan := range plans {
		var existing model.Subscription
		if err := db.Where("name = ?", plan.Name).First(&existing).Error; err == nil {
			color.Yellow("Plan '%s' already exists, skipping...", plan.Name)
			continue
		}

		if err := db.Create(m.ToModel(plan)).Error; err != nil {
			color.Red("Error creating plan '%s': %v", plan.Name, err)
			continue
		}
		color.Green("Created plan: %s", plan.Name)
	}
}
