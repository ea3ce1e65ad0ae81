package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"testinesia-be/internal/entity"
	"testinesia-be/internal/repository/specification"
	"testinesia-be/internal/repository/unitofwork"
	"testinesia-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.SubscriptionRepository())
	assert.NotNil(t, uow.CurrentSubscriptionRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Testimonial Repository", func(t *testing.T) {
		count, err := uow.TestimonialRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Testimonial count: %d", count)
	})

	t.Run("Transactional Project With Current Pointer", func(t *testing.T) {
		ctx := context.Background()

		hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		userId := uuid.New()
		user := &entity.User{
			Id:           userId,
			Name:         "Integration Test User",
			Email:        "test-integration-" + uuid.New().String() + "@example.com",
			Phone:        fmt.Sprintf("+6281%09d", time.Now().UnixNano()%1_000_000_000),
			PasswordHash: string(hash),
			IsVerified:   true,
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)
		defer uow.UserRepository().Delete(ctx, userId)

		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		projectId := uuid.New()
		project := &entity.Project{
			Id:     projectId,
			UserId: userId,
			Title:  "Integration Project",
			Slug:   "integration-project-" + uuid.New().String()[:8],
		}
		err = uow.ProjectRepository().Create(ctx, project)
		assert.NoError(t, err)

		err = uow.ProjectRepository().UpsertCurrentProject(ctx, &entity.CurrentProject{
			Id:        uuid.New(),
			UserId:    userId,
			ProjectId: projectId,
		})
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		current, err := uow.ProjectRepository().FindCurrentProject(ctx, userId)
		assert.NoError(t, err)
		if assert.NotNil(t, current) {
			assert.Equal(t, projectId, current.ProjectId)
		}

		found, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: projectId})
		assert.NoError(t, err)
		assert.NotNil(t, found)

		t.Log("Successfully created Project with Current pointer in Transaction")
	})
}
