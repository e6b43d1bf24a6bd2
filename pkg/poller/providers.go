package poller

import (
	"time"

	"github.com/cortexhq/cortex/pkg/models"
)

// providerSpec maps a normalized provider onto a gateway resource to fetch
// and the lightweight classification of its items. Pull classification is
// stateless; the stateful change detection belongs to the webhook shaper,
// and dedup keeps the two paths from double-emitting.
type providerSpec struct {
	model    string
	classify func(item map[string]any) string
}

// providerSpecs lists the resources pulled per provider. Salesforce syncs two
// models; both go through the same shape-based classifier.
var providerSpecs = map[string][]providerSpec{
	models.SourceGmail: {
		{model: "GmailEmail", classify: classifyEmail},
	},
	models.SourceCalendar: {
		{model: "CalendarEvent", classify: classifyCalendarEvent},
	},
	models.SourceSalesforce: {
		{model: "Lead", classify: classifySalesforceRecord},
		{model: "Opportunity", classify: classifySalesforceRecord},
	},
}

func classifyEmail(item map[string]any) string {
	if itemString(item, "in_reply_to") != "" {
		return "email_reply_received"
	}
	if itemString(item, "from_me") == "true" || itemBool(item, "from_me") {
		return "email_sent"
	}
	return "email_received"
}

func classifyCalendarEvent(item map[string]any) string {
	if itemString(item, "status") == "cancelled" {
		return "event_cancelled"
	}
	created := itemString(item, "created_at")
	updated := itemString(item, "updated_at")
	if updated != "" && updated != created {
		return "event_updated"
	}
	return "event_created"
}

// classifySalesforceRecord branches on the record shape: Opportunity records
// carry StageName, Lead records carry Status.
func classifySalesforceRecord(item map[string]any) string {
	if itemString(item, "StageName") != "" {
		if itemBool(item, "IsClosed") {
			if itemBool(item, "IsWon") {
				return "opportunity_closed_won"
			}
			return "opportunity_closed_lost"
		}
		if itemString(item, "updated_at") != itemString(item, "created_at") {
			return "opportunity_stage_changed"
		}
		return "opportunity_created"
	}
	if itemBool(item, "IsConverted") {
		return "lead_converted"
	}
	if itemString(item, "updated_at") != itemString(item, "created_at") {
		return "lead_stage_changed"
	}
	return "lead_created"
}

// itemTime parses an item's timestamp, preferring created_at over updated_at
// and falling back to now.
func itemTime(item map[string]any, now time.Time) time.Time {
	for _, key := range []string{"created_at", "updated_at"} {
		if raw := itemString(item, key); raw != "" {
			if t, err := time.Parse(time.RFC3339, raw); err == nil {
				return t
			}
		}
	}
	return now
}

func itemString(item map[string]any, key string) string {
	if s, ok := item[key].(string); ok {
		return s
	}
	return ""
}

func itemBool(item map[string]any, key string) bool {
	if b, ok := item[key].(bool); ok {
		return b
	}
	return false
}

func itemID(item map[string]any) string {
	if id := itemString(item, "id"); id != "" {
		return id
	}
	return itemString(item, "Id")
}
