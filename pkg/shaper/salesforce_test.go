package shaper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeLeadEvents(t *testing.T) {
	t.Run("new lead", func(t *testing.T) {
		state := map[string]any{}
		events := shapeLeadEvents([]map[string]any{
			{"Id": "L1", "Name": "Jordan", "Company": "Acme", "Status": "Open"},
		}, "u1", state, testNow)

		require.Len(t, events, 1)
		assert.Equal(t, "lead_created", events[0].Event)
		assert.Equal(t, "salesforce:lead:L1:lead_created", events[0].Meta.DedupeKey)
	})

	t.Run("conversion wins over stage change", func(t *testing.T) {
		state := map[string]any{
			"L1": map[string]any{"status": "Open", "converted": false},
		}
		events := shapeLeadEvents([]map[string]any{
			{"Id": "L1", "Status": "Qualified", "IsConverted": true},
		}, "u1", state, testNow)

		require.Len(t, events, 1)
		assert.Equal(t, "lead_converted", events[0].Event)
	})

	t.Run("stage change", func(t *testing.T) {
		state := map[string]any{
			"L1": map[string]any{"status": "Open", "converted": false},
		}
		events := shapeLeadEvents([]map[string]any{
			{"Id": "L1", "Status": "Working"},
		}, "u1", state, testNow)

		require.Len(t, events, 1)
		assert.Equal(t, "lead_stage_changed", events[0].Event)
		assert.Equal(t, "Open", events[0].Payload["previous_status"])
	})

	t.Run("unchanged lead skipped", func(t *testing.T) {
		state := map[string]any{
			"L1": map[string]any{"status": "Open", "converted": false},
		}
		events := shapeLeadEvents([]map[string]any{
			{"Id": "L1", "Status": "Open"},
		}, "u1", state, testNow)
		assert.Empty(t, events)
	})
}

func TestShapeOpportunityEvents(t *testing.T) {
	t.Run("new opportunity", func(t *testing.T) {
		state := map[string]any{}
		events := shapeOpportunityEvents([]map[string]any{
			{"Id": "o1", "Name": "Big Deal", "StageName": "Prospect", "Amount": float64(5000)},
		}, "u1", state, testNow)

		require.Len(t, events, 1)
		assert.Equal(t, "opportunity_created", events[0].Event)
		assert.Equal(t, "salesforce:opp:o1:created", events[0].Meta.DedupeKey)
	})

	t.Run("amount change over absolute floor", func(t *testing.T) {
		state := map[string]any{
			"o1": map[string]any{"stage": "Prospect", "amount": float64(5000), "closed": false},
		}
		events := shapeOpportunityEvents([]map[string]any{
			{"Id": "o1", "StageName": "Prospect", "Amount": float64(6500)},
		}, "u1", state, testNow)

		require.Len(t, events, 1)
		assert.Equal(t, "opportunity_amount_changed", events[0].Event)
		assert.Equal(t, "salesforce:opp:o1:amount_6500", events[0].Meta.DedupeKey)
		assert.Equal(t, float64(5000), events[0].Payload["previous_amount"])
	})

	t.Run("redelivered record emits nothing", func(t *testing.T) {
		state := map[string]any{
			"o1": map[string]any{"stage": "Prospect", "amount": float64(5000), "closed": false},
		}
		rec := map[string]any{"Id": "o1", "StageName": "Prospect", "Amount": float64(6500)}

		first := shapeOpportunityEvents([]map[string]any{rec}, "u1", state, testNow)
		require.Len(t, first, 1)

		second := shapeOpportunityEvents([]map[string]any{rec}, "u1", state, testNow)
		assert.Empty(t, second)
	})

	t.Run("small relative change skipped", func(t *testing.T) {
		state := map[string]any{
			"o1": map[string]any{"stage": "Prospect", "amount": float64(20000), "closed": false},
		}
		events := shapeOpportunityEvents([]map[string]any{
			{"Id": "o1", "StageName": "Prospect", "Amount": float64(20900)},
		}, "u1", state, testNow)
		assert.Empty(t, events, "900 is under $1000 and under 10% of 20000")
	})

	t.Run("relative change over ratio", func(t *testing.T) {
		state := map[string]any{
			"o1": map[string]any{"stage": "Prospect", "amount": float64(2000), "closed": false},
		}
		events := shapeOpportunityEvents([]map[string]any{
			{"Id": "o1", "StageName": "Prospect", "Amount": float64(2500)},
		}, "u1", state, testNow)

		require.Len(t, events, 1, "500 is under $1000 but 25% of 2000")
		assert.Equal(t, "opportunity_amount_changed", events[0].Event)
	})

	t.Run("stage change and close emit together", func(t *testing.T) {
		state := map[string]any{
			"o1": map[string]any{"stage": "Negotiation", "amount": float64(5000), "closed": false},
		}
		events := shapeOpportunityEvents([]map[string]any{
			{"Id": "o1", "StageName": "Closed Won", "Amount": float64(5000), "IsClosed": true, "IsWon": true},
		}, "u1", state, testNow)

		require.Len(t, events, 2)
		assert.Equal(t, "opportunity_stage_changed", events[0].Event)
		assert.Equal(t, "Negotiation", events[0].Payload["previous_stage"])
		assert.Equal(t, "opportunity_closed_won", events[1].Event)
		assert.Equal(t, "salesforce:opp:o1:closed_won", events[1].Meta.DedupeKey)
	})

	t.Run("closed lost", func(t *testing.T) {
		state := map[string]any{
			"o1": map[string]any{"stage": "Closed Lost", "amount": float64(5000), "closed": false},
		}
		events := shapeOpportunityEvents([]map[string]any{
			{"Id": "o1", "StageName": "Closed Lost", "Amount": float64(5000), "IsClosed": true, "IsWon": false},
		}, "u1", state, testNow)

		require.Len(t, events, 1)
		assert.Equal(t, "opportunity_closed_lost", events[0].Event)
	})
}

func TestSignificantAmountChange(t *testing.T) {
	assert.False(t, significantAmountChange(5000, 5000))
	assert.True(t, significantAmountChange(5000, 6500))
	assert.True(t, significantAmountChange(6500, 5000))
	assert.False(t, significantAmountChange(20000, 20900))
	assert.True(t, significantAmountChange(2000, 2500))
	assert.True(t, significantAmountChange(0, 1500))
	assert.False(t, significantAmountChange(0, 500), "from zero only the absolute floor applies")
}
