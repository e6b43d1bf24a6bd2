package shaper

import (
	"fmt"
	"math"
	"time"

	"github.com/cortexhq/cortex/pkg/models"
)

// amountChangeFloor and amountChangeRatio gate opportunity_amount_changed:
// the delta must exceed $1000 or 10% of the prior amount.
const (
	amountChangeFloor = 1000.0
	amountChangeRatio = 0.10
)

// shapeLeadEvents turns lead records into events, updating per-lead state in
// place. A lead yields at most one event per sync: created, converted, or
// stage_changed, checked in that order.
func shapeLeadEvents(records []map[string]any, userID string, state map[string]any, now time.Time) []*models.Event {
	var events []*models.Event

	for _, rec := range records {
		leadID := recordID(rec)
		if leadID == "" {
			continue
		}

		status := getString(rec, "Status")
		converted := getBool(rec, "IsConverted")
		prior := getMap(state, leadID)
		state[leadID] = map[string]any{
			"status":    status,
			"converted": converted,
		}

		var eventName string
		switch {
		case prior == nil:
			eventName = "lead_created"
		case converted && !getBool(prior, "converted"):
			eventName = "lead_converted"
		case status != getString(prior, "status"):
			eventName = "lead_stage_changed"
		default:
			continue
		}

		payload := map[string]any{
			"lead_id":         leadID,
			"name":            getString(rec, "Name"),
			"company":         getString(rec, "Company"),
			"email":           getString(rec, "Email"),
			"status":          status,
			"previous_status": getString(prior, "status"),
			"converted":       converted,
		}

		events = append(events, &models.Event{
			ID:        fmt.Sprintf("salesforce_lead_%s_%d", leadID, now.UnixMilli()),
			UserID:    userID,
			Source:    models.SourceSalesforce,
			Event:     eventName,
			Timestamp: now.UTC().Format(time.RFC3339),
			Payload:   payload,
			Meta: models.EventMeta{
				DedupeKey: fmt.Sprintf("salesforce:lead:%s:%s", leadID, eventName),
			},
		})
	}

	return events
}

// shapeOpportunityEvents turns opportunity records into events, updating
// per-opportunity state in place. Unlike leads, one record can yield several
// events in the same sync (a stage change and an amount change together).
func shapeOpportunityEvents(records []map[string]any, userID string, state map[string]any, now time.Time) []*models.Event {
	var events []*models.Event

	for _, rec := range records {
		oppID := recordID(rec)
		if oppID == "" {
			continue
		}

		stage := getString(rec, "StageName")
		amount, hasAmount := getFloat(rec, "Amount")
		closed := getBool(rec, "IsClosed")
		won := getBool(rec, "IsWon")
		prior := getMap(state, oppID)
		state[oppID] = map[string]any{
			"stage":  stage,
			"amount": amount,
			"closed": closed,
		}

		basePayload := func() map[string]any {
			return map[string]any{
				"opportunity_id": oppID,
				"name":           getString(rec, "Name"),
				"stage":          stage,
				"amount":         amount,
				"close_date":     getString(rec, "CloseDate"),
			}
		}
		emit := func(eventName, dedupeKey string, extra map[string]any) {
			payload := basePayload()
			for k, v := range extra {
				payload[k] = v
			}
			events = append(events, &models.Event{
				ID:        fmt.Sprintf("salesforce_opp_%s_%s_%d", oppID, eventName, now.UnixMilli()),
				UserID:    userID,
				Source:    models.SourceSalesforce,
				Event:     eventName,
				Timestamp: now.UTC().Format(time.RFC3339),
				Payload:   payload,
				Meta:      models.EventMeta{DedupeKey: dedupeKey},
			})
		}

		if prior == nil {
			emit("opportunity_created",
				fmt.Sprintf("salesforce:opp:%s:created", oppID), nil)
			continue
		}

		priorStage := getString(prior, "stage")
		if stage != priorStage {
			emit("opportunity_stage_changed",
				fmt.Sprintf("salesforce:opp:%s:stage_changed", oppID),
				map[string]any{"previous_stage": priorStage})
		}

		if closed && !getBool(prior, "closed") {
			if won {
				emit("opportunity_closed_won",
					fmt.Sprintf("salesforce:opp:%s:closed_won", oppID), nil)
			} else {
				emit("opportunity_closed_lost",
					fmt.Sprintf("salesforce:opp:%s:closed_lost", oppID), nil)
			}
		}

		priorAmount, hadAmount := getFloat(prior, "amount")
		if hasAmount && hadAmount && significantAmountChange(priorAmount, amount) {
			emit("opportunity_amount_changed",
				fmt.Sprintf("salesforce:opp:%s:amount_%v", oppID, amount),
				map[string]any{"previous_amount": priorAmount})
		}
	}

	return events
}

// significantAmountChange reports whether the delta exceeds the absolute
// floor or the relative ratio of the prior amount.
func significantAmountChange(prior, current float64) bool {
	delta := math.Abs(current - prior)
	if delta == 0 {
		return false
	}
	if delta > amountChangeFloor {
		return true
	}
	return prior != 0 && delta/math.Abs(prior) > amountChangeRatio
}
