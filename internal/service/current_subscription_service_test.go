package service

import (
	"testing"
	"time"

	"testinesia-be/internal/entity"
)

func TestComputeBillingDates(t *testing.T) {
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	t.Run("monthly", func(t *testing.T) {
		end, next := computeBillingDates(entity.PlanTypeMonthly, start)
		wantEnd := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)
		if !end.Equal(wantEnd) {
			t.Errorf("end = %v, want %v", end, wantEnd)
		}
		if next == nil {
			t.Fatal("monthly plan should have a next billing checkpoint")
		}
		wantNext := time.Date(2024, 2, 8, 10, 0, 0, 0, time.UTC)
		if !next.Equal(wantNext) {
			t.Errorf("nextBilling = %v, want %v", next, wantNext)
		}
	})

	t.Run("yearly", func(t *testing.T) {
		end, next := computeBillingDates(entity.PlanTypeYearly, start)
		wantEnd := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
		if !end.Equal(wantEnd) {
			t.Errorf("end = %v, want %v", end, wantEnd)
		}
		if next == nil {
			t.Fatal("yearly plan should have a next billing checkpoint")
		}
		wantNext := time.Date(2025, 1, 8, 10, 0, 0, 0, time.UTC)
		if !next.Equal(wantNext) {
			t.Errorf("nextBilling = %v, want %v", next, wantNext)
		}
	})

	t.Run("lifetime", func(t *testing.T) {
		end, next := computeBillingDates(entity.PlanTypeLifetime, start)
		wantEnd := time.Date(2124, 1, 15, 10, 0, 0, 0, time.UTC)
		if !end.Equal(wantEnd) {
			t.Errorf("end = %v, want %v", end, wantEnd)
		}
		if next != nil {
			t.Errorf("lifetime plan should have no checkpoint, got %v", next)
		}
	})

	t.Run("unknown plan type falls back to monthly", func(t *testing.T) {
		end, next := computeBillingDates(entity.PlanType("WEEKLY"), start)
		if !end.Equal(start.AddDate(0, 1, 0)) {
			t.Errorf("end = %v, want one month out", end)
		}
		if next == nil {
			t.Error("fallback window should still have a checkpoint")
		}
	})
}
