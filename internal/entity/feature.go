package entity

import (
	"encoding/json"
	"fmt"
)

// FeatureKey identifies one quota or flag in a plan's feature map.
// The set is closed: plans submitted through the admin catalog are rejected
// when they carry a key outside this list.
type FeatureKey string

const (
	FeatureProject                    FeatureKey = "project"
	FeatureForm                       FeatureKey = "form"
	FeatureShowcasePage               FeatureKey = "showcase_page"
	FeatureMaxTestimoni               FeatureKey = "max_testimoni"
	FeatureVideo                      FeatureKey = "video"
	FeatureImportSocialMedia          FeatureKey = "import_social_media"
	FeatureRemoveBrand                FeatureKey = "remove_brand"
	FeatureUnlimitedTag               FeatureKey = "unlimited_tag"
	FeatureUnlimitedImportSocialMedia FeatureKey = "unlimited_import_social_media"
)

var knownFeatureKeys = map[FeatureKey]struct{}{
	FeatureProject:                    {},
	FeatureForm:                       {},
	FeatureShowcasePage:               {},
	FeatureMaxTestimoni:               {},
	FeatureVideo:                      {},
	FeatureImportSocialMedia:          {},
	FeatureRemoveBrand:                {},
	FeatureUnlimitedTag:               {},
	FeatureUnlimitedImportSocialMedia: {},
}

func IsKnownFeatureKey(key FeatureKey) bool {
	_, ok := knownFeatureKeys[key]
	return ok
}

type FeatureKind int

const (
	FeatureKindCount FeatureKind = iota
	FeatureKindFlag
	FeatureKindUnlimited
)

// FeatureValue is a tagged union: a remaining count, an on/off flag, or an
// unlimited marker. JSON representation matches the legacy feature blobs:
// numbers are counts, booleans are flags, null is unlimited.
type FeatureValue struct {
	Kind  FeatureKind
	Count int64
	Flag  bool
}

func Count(n int64) FeatureValue {
	return FeatureValue{Kind: FeatureKindCount, Count: n}
}

func Flag(on bool) FeatureValue {
	return FeatureValue{Kind: FeatureKindFlag, Flag: on}
}

func Unlimited() FeatureValue {
	return FeatureValue{Kind: FeatureKindUnlimited}
}

func (v FeatureValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case FeatureKindCount:
		return json.Marshal(v.Count)
	case FeatureKindFlag:
		return json.Marshal(v.Flag)
	case FeatureKindUnlimited:
		return []byte("null"), nil
	}
	return nil, fmt.Errorf("unknown feature kind %d", v.Kind)
}

func (v *FeatureValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Unlimited()
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = Flag(b)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = Count(n)
		return nil
	}

	// Legacy rows stored counts as JSON floats occasionally.
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*v = Count(int64(f))
		return nil
	}

	return fmt.Errorf("feature value must be a number, boolean, or null: %s", string(data))
}

// FeatureMap is a plan's feature-limit map or an entitlement's remaining
// usage. Stored as a jsonb column.
type FeatureMap map[FeatureKey]FeatureValue

// Validate rejects keys outside the closed catalog set. Applied at the
// plan-catalog boundary so stored entitlements stay well-formed.
func (m FeatureMap) Validate() error {
	for key := range m {
		if !IsKnownFeatureKey(key) {
			return fmt.Errorf("unknown feature key %q", key)
		}
	}
	return nil
}

func (m FeatureMap) Clone() FeatureMap {
	out := make(FeatureMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// MergeFeatureUsage reconciles remaining usage with a newly purchased plan.
// Renewal is additive: when both the old remaining value and the new plan's
// allotment are counts, they are summed (top-up semantics for repeat
// purchases). Every other kind takes the new plan's value. Keys the new plan
// no longer carries are dropped.
func MergeFeatureUsage(oldUsage, newPlan FeatureMap) FeatureMap {
	merged := make(FeatureMap, len(newPlan))
	for key, planValue := range newPlan {
		if prev, ok := oldUsage[key]; ok &&
			prev.Kind == FeatureKindCount && planValue.Kind == FeatureKindCount {
			merged[key] = Count(prev.Count + planValue.Count)
			continue
		}
		merged[key] = planValue
	}
	return merged
}

// ErrQuotaExhausted marks a counter that would go negative.
var ErrQuotaExhausted = fmt.Errorf("feature quota exhausted")

// ConsumeFeature adjusts one counter by a signed delta (negative on resource
// creation, positive on deletion). Flags and unlimited values are left
// untouched. A missing key never enters the map: spends on it fail as
// exhausted and restores are dropped, so a plan change cannot grow the
// usage map beyond the plan's own keys.
func (m FeatureMap) ConsumeFeature(key FeatureKey, delta int64) error {
	current, ok := m[key]
	if !ok {
		if delta < 0 {
			return ErrQuotaExhausted
		}
		return nil
	}
	switch current.Kind {
	case FeatureKindFlag, FeatureKindUnlimited:
		return nil
	}
	next := current.Count + delta
	if next < 0 {
		return ErrQuotaExhausted
	}
	m[key] = Count(next)
	return nil
}
