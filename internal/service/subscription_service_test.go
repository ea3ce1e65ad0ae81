package service

import (
	"encoding/json"
	"testing"
	"time"

	"testinesia-be/internal/entity"

	"github.com/google/uuid"
)

func TestToPublicPlanResponse(t *testing.T) {
	plan := &entity.Subscription{
		Id:          uuid.New(),
		AdminId:     uuid.New(),
		Name:        "Starter",
		Description: "For trying things out",
		Features: entity.FeatureMap{
			entity.FeatureProject:     entity.Count(1),
			entity.FeatureRemoveBrand: entity.Flag(false),
		},
		Price:     0,
		Position:  1,
		PlanType:  entity.PlanTypeLifetime,
		Type:      entity.SubscriptionTypeFree,
		CreatedAt: time.Now(),
	}

	got := toPublicPlanResponse(plan)

	if got.Id != plan.Id {
		t.Errorf("Id = %v, want %v", got.Id, plan.Id)
	}
	if got.Name != plan.Name || got.Description != plan.Description {
		t.Errorf("name/description = %q/%q, want %q/%q", got.Name, got.Description, plan.Name, plan.Description)
	}
	if got.Price != plan.Price || got.Position != plan.Position {
		t.Errorf("price/position = %d/%d, want %d/%d", got.Price, got.Position, plan.Price, plan.Position)
	}
	if got.PlanType != string(entity.PlanTypeLifetime) {
		t.Errorf("PlanType = %q, want %q", got.PlanType, entity.PlanTypeLifetime)
	}
	// The pricing page keys its free/premium badge off this field.
	if got.Type != string(entity.SubscriptionTypeFree) {
		t.Errorf("Type = %q, want %q", got.Type, entity.SubscriptionTypeFree)
	}
	if len(got.Features) != len(plan.Features) {
		t.Errorf("features has %d keys, want %d", len(got.Features), len(plan.Features))
	}

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if string(payload["type"]) != `"free"` {
		t.Errorf(`payload["type"] = %s, want "free"`, payload["type"])
	}
	if string(payload["plan_type"]) != `"LIFETIME"` {
		t.Errorf(`payload["plan_type"] = %s, want "LIFETIME"`, payload["plan_type"])
	}
}
