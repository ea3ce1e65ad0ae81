package entity

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFeatureValueJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FeatureValue
	}{
		{"count", `10`, Count(10)},
		{"zero count", `0`, Count(0)},
		{"flag on", `true`, Flag(true)},
		{"flag off", `false`, Flag(false)},
		{"unlimited", `null`, Unlimited()},
		{"legacy float count", `5.0`, Count(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FeatureValue
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}

	var bad FeatureValue
	if err := json.Unmarshal([]byte(`"ten"`), &bad); err == nil {
		t.Error("Unmarshal of a string should error")
	}
}

func TestFeatureValueJSONRoundTrip(t *testing.T) {
	values := []FeatureValue{Count(42), Flag(true), Flag(false), Unlimited()}
	for _, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("Marshal(%+v) error: %v", v, err)
		}
		var back FeatureValue
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s) error: %v", data, err)
		}
		if back != v {
			t.Errorf("round trip %+v -> %s -> %+v", v, data, back)
		}
	}
}

func TestFeatureMapValidate(t *testing.T) {
	ok := FeatureMap{
		FeatureProject:     Count(5),
		FeatureRemoveBrand: Flag(true),
	}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate of known keys should pass, got: %v", err)
	}

	bad := FeatureMap{FeatureKey("ai_assistant"): Count(1)}
	if err := bad.Validate(); err == nil {
		t.Error("Validate of unknown key should error")
	}
}

func TestMergeFeatureUsage(t *testing.T) {
	tests := []struct {
		name    string
		old     FeatureMap
		plan    FeatureMap
		wantKey FeatureKey
		want    FeatureValue
	}{
		{
			name:    "counts sum on renewal",
			old:     FeatureMap{FeatureForm: Count(2)},
			plan:    FeatureMap{FeatureForm: Count(5)},
			wantKey: FeatureForm,
			want:    Count(7),
		},
		{
			name:    "flag takes plan value",
			old:     FeatureMap{FeatureRemoveBrand: Flag(true)},
			plan:    FeatureMap{FeatureRemoveBrand: Flag(false)},
			wantKey: FeatureRemoveBrand,
			want:    Flag(false),
		},
		{
			name:    "upgrade count to unlimited",
			old:     FeatureMap{FeatureProject: Count(3)},
			plan:    FeatureMap{FeatureProject: Unlimited()},
			wantKey: FeatureProject,
			want:    Unlimited(),
		},
		{
			name:    "downgrade unlimited to count",
			old:     FeatureMap{FeatureProject: Unlimited()},
			plan:    FeatureMap{FeatureProject: Count(3)},
			wantKey: FeatureProject,
			want:    Count(3),
		},
		{
			name:    "key absent from old usage",
			old:     FeatureMap{},
			plan:    FeatureMap{FeatureVideo: Count(50)},
			wantKey: FeatureVideo,
			want:    Count(50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := MergeFeatureUsage(tt.old, tt.plan)
			got, ok := merged[tt.wantKey]
			if !ok {
				t.Fatalf("merged map missing key %q", tt.wantKey)
			}
			if got != tt.want {
				t.Errorf("merged[%q] = %+v, want %+v", tt.wantKey, got, tt.want)
			}
		})
	}
}

func TestMergeFeatureUsageDropsStaleKeys(t *testing.T) {
	old := FeatureMap{
		FeatureForm:  Count(2),
		FeatureVideo: Count(1),
	}
	plan := FeatureMap{FeatureForm: Count(5)}

	merged := MergeFeatureUsage(old, plan)
	if _, ok := merged[FeatureVideo]; ok {
		t.Error("keys the new plan does not carry should be dropped")
	}
	if len(merged) != 1 {
		t.Errorf("merged map has %d keys, want 1", len(merged))
	}
}

func TestConsumeFeature(t *testing.T) {
	t.Run("spend and restore", func(t *testing.T) {
		m := FeatureMap{FeatureProject: Count(2)}

		if err := m.ConsumeFeature(FeatureProject, -1); err != nil {
			t.Fatalf("spend error: %v", err)
		}
		if m[FeatureProject] != Count(1) {
			t.Errorf("after spend = %+v, want Count(1)", m[FeatureProject])
		}

		if err := m.ConsumeFeature(FeatureProject, 1); err != nil {
			t.Fatalf("restore error: %v", err)
		}
		if m[FeatureProject] != Count(2) {
			t.Errorf("after restore = %+v, want Count(2)", m[FeatureProject])
		}
	})

	t.Run("never goes negative", func(t *testing.T) {
		m := FeatureMap{FeatureForm: Count(0)}
		err := m.ConsumeFeature(FeatureForm, -1)
		if !errors.Is(err, ErrQuotaExhausted) {
			t.Fatalf("want ErrQuotaExhausted, got: %v", err)
		}
		if m[FeatureForm] != Count(0) {
			t.Errorf("failed spend must not mutate, got %+v", m[FeatureForm])
		}
	})

	t.Run("missing key never enters the map", func(t *testing.T) {
		m := FeatureMap{FeatureForm: Count(3)}
		if err := m.ConsumeFeature(FeatureVideo, -1); !errors.Is(err, ErrQuotaExhausted) {
			t.Errorf("spend on missing key should exhaust, got: %v", err)
		}
		if err := m.ConsumeFeature(FeatureVideo, 1); err != nil {
			t.Errorf("restore on missing key should no-op, got: %v", err)
		}
		if _, ok := m[FeatureVideo]; ok {
			t.Errorf("restore materialized missing key: %+v", m[FeatureVideo])
		}
		if len(m) != 1 {
			t.Errorf("map has %d keys, want 1", len(m))
		}
	})

	// A downgrade drops keys from the usage map; later deletes of resources
	// created under the old plan must not resurrect them.
	t.Run("restore after downgrade leaves dropped key out", func(t *testing.T) {
		old := FeatureMap{
			FeatureMaxTestimoni: Count(10),
			FeatureVideo:        Count(2),
		}
		plan := FeatureMap{FeatureMaxTestimoni: Count(5)}
		usage := MergeFeatureUsage(old, plan)

		if err := usage.ConsumeFeature(FeatureVideo, 1); err != nil {
			t.Fatalf("restore of dropped key should no-op, got: %v", err)
		}
		if _, ok := usage[FeatureVideo]; ok {
			t.Error("dropped key came back after restore")
		}
		for key := range usage {
			if _, ok := plan[key]; !ok {
				t.Errorf("usage key %q not present in plan", key)
			}
		}
	})

	t.Run("flags and unlimited are no-ops", func(t *testing.T) {
		m := FeatureMap{
			FeatureRemoveBrand: Flag(false),
			FeatureProject:     Unlimited(),
		}
		if err := m.ConsumeFeature(FeatureRemoveBrand, -1); err != nil {
			t.Errorf("flag consume should no-op, got: %v", err)
		}
		if err := m.ConsumeFeature(FeatureProject, -1); err != nil {
			t.Errorf("unlimited consume should no-op, got: %v", err)
		}
		if m[FeatureRemoveBrand] != Flag(false) || m[FeatureProject] != Unlimited() {
			t.Error("flag and unlimited values must not change")
		}
	})
}

func TestFeatureKeyForTestimonialType(t *testing.T) {
	tests := []struct {
		in   TestimonialType
		want FeatureKey
	}{
		{TestimonialTypeText, FeatureMaxTestimoni},
		{TestimonialTypeVideo, FeatureVideo},
		{TestimonialTypeImport, FeatureImportSocialMedia},
	}
	for _, tt := range tests {
		if got := FeatureKeyForTestimonialType(tt.in); got != tt.want {
			t.Errorf("FeatureKeyForTestimonialType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
