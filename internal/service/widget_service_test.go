package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestParseTestimonialIds(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	ids, err := parseTestimonialIds([]string{a.String(), b.String()})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(ids) != 2 || ids[0] != a || ids[1] != b {
		t.Errorf("parsed %v, want [%s %s] in order", ids, a, b)
	}

	if _, err := parseTestimonialIds([]string{a.String(), "not-a-uuid"}); err == nil {
		t.Error("malformed id should error")
	}

	ids, err = parseTestimonialIds(nil)
	if err != nil {
		t.Fatalf("nil input error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("nil input parsed to %v, want empty", ids)
	}
}
