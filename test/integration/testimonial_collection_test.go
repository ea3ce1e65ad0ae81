package integration

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"testinesia-be/internal/bootstrap"
	"testinesia-be/internal/config"
	"testinesia-be/internal/dto"
	"testinesia-be/internal/model"
	"testinesia-be/internal/server"
	"testinesia-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

// End-to-end collection path: a public visitor submits through a published
// form and the quota is charged to the form owner's entitlement.
func TestPublicTestimonialCollection(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	app := server.New(cfg, container).GetApp()

	// Seed: admin -> plan -> user -> entitlement -> project -> published form.
	adminId := uuid.New()
	admin := model.Admin{
		Id:           adminId,
		Name:         "Seed Admin",
		Email:        fmt.Sprintf("seed-admin-%s@example.com", uuid.New().String()[:8]),
		PasswordHash: "x",
		Role:         "admin",
	}
	db.Create(&admin)
	defer db.Delete(&model.Admin{}, adminId)

	features := datatypes.JSON(`{"max_testimoni": 1, "video": 0}`)
	planId := uuid.New()
	plan := model.Subscription{
		Id:       planId,
		AdminId:  adminId,
		Name:     "Collection Test Plan " + uuid.New().String()[:8],
		Features: features,
		PlanType: "LIFETIME",
		Type:     "free",
	}
	db.Create(&plan)
	defer db.Delete(&model.Subscription{}, planId)

	userId := uuid.New()
	user := model.User{
		Id:           userId,
		Name:         "Form Owner",
		Email:        fmt.Sprintf("owner-%s@example.com", uuid.New().String()[:8]),
		Phone:        fmt.Sprintf("+6281%09d", time.Now().UnixNano()%1_000_000_000),
		PasswordHash: "x",
		IsVerified:   true,
	}
	db.Create(&user)
	defer db.Delete(&model.User{}, userId)

	entId := uuid.New()
	now := time.Now()
	entitlement := model.CurrentSubscription{
		Id:             entId,
		UserId:         userId,
		SubscriptionId: planId,
		Type:           "free",
		FeatureUsage:   features,
		FeatureLimit:   features,
		StartDate:      now,
		EndDate:        now.AddDate(1, 0, 0),
		IsActive:       true,
	}
	db.Create(&entitlement)
	defer db.Delete(&model.CurrentSubscription{}, entId)

	projectId := uuid.New()
	project := model.Project{
		Id:     projectId,
		UserId: userId,
		Title:  "Collection Project",
		Slug:   "collection-" + uuid.New().String()[:8],
	}
	db.Create(&project)
	defer db.Delete(&model.Project{}, projectId)
	defer db.Where("project_id = ?", projectId).Delete(&model.Testimonial{})

	formSlug := uuid.New().String()[:8]
	formId := uuid.New()
	form := model.Form{
		Id:                      formId,
		ProjectId:               projectId,
		Slug:                    formSlug,
		Name:                    "Collection Form",
		Status:                  "PUBLISHED",
		AutoApproveTestimonials: true,
	}
	db.Create(&form)
	defer db.Delete(&model.Form{}, formId)

	submit := func(authorName string) int {
		text := "Great product"
		body, _ := json.Marshal(dto.SubmitTestimonialRequest{
			AuthorName: authorName,
			Text:       &text,
			Rating:     5,
			Type:       "text",
		})
		req := httptest.NewRequest("POST", "/api/public/v1/form/"+formSlug+"/testimonial", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req, -1)
		return resp.StatusCode
	}

	t.Run("First submission accepted", func(t *testing.T) {
		assert.Equal(t, 201, submit("First Visitor"))
	})

	t.Run("Second submission exhausts the owner quota", func(t *testing.T) {
		assert.Equal(t, 403, submit("Second Visitor"))
	})

	t.Run("Video submission blocked at zero quota", func(t *testing.T) {
		url := "https://example.com/clip.mp4"
		body, _ := json.Marshal(dto.SubmitTestimonialRequest{
			AuthorName: "Video Visitor",
			Rating:     4,
			Type:       "video",
			MediaURL:   &url,
		})
		req := httptest.NewRequest("POST", "/api/public/v1/form/"+formSlug+"/testimonial", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req, -1)
		assert.Equal(t, 403, resp.StatusCode)
	})

	t.Run("Import type rejected on the public form", func(t *testing.T) {
		src := "instagram"
		body, _ := json.Marshal(dto.SubmitTestimonialRequest{
			AuthorName: "Importer",
			Rating:     5,
			Type:       "import",
			Source:     &src,
		})
		req := httptest.NewRequest("POST", "/api/public/v1/form/"+formSlug+"/testimonial", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req, -1)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("Draft form invisible to the public", func(t *testing.T) {
		db.Model(&model.Form{}).Where("id = ?", formId).Update("status", "DRAFT")
		req := httptest.NewRequest("GET", "/api/public/v1/form/"+formSlug, nil)
		resp, _ := app.Test(req, -1)
		assert.Equal(t, 404, resp.StatusCode)
	})
}
