package shaper

import "time"

// Shaper state TTLs per entity class. Longer-lived entities keep state
// longer so change detection survives quiet periods.
const (
	emailStateTTL      = 7 * 24 * time.Hour
	calendarStateTTL   = 30 * 24 * time.Hour
	salesforceStateTTL = 60 * 24 * time.Hour
)

// Shaper state kinds (the {kind} segment of shaper:{kind}:{user}).
const (
	stateKindEmail       = "email"
	stateKindCalendar    = "calendar"
	stateKindLead        = "lead"
	stateKindOpportunity = "opportunity"
)

// Helpers for reading the loosely typed shaper state and provider records.
// Payloads are provider-shaped JSON; missing or mistyped fields read as zero.

func getString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func getBool(m map[string]any, key string) bool {
	if m == nil {
		return false
	}
	if b, ok := m[key].(bool); ok {
		return b
	}
	return false
}

func getFloat(m map[string]any, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func getMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	if sub, ok := m[key].(map[string]any); ok {
		return sub
	}
	return nil
}

func getStrings(m map[string]any, key string) []string {
	if m == nil {
		return nil
	}
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// recordID returns the entity id of a provider record, tolerating both
// lower- and Salesforce-style casing.
func recordID(rec map[string]any) string {
	if id := getString(rec, "id"); id != "" {
		return id
	}
	return getString(rec, "Id")
}
