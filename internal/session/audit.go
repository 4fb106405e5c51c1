package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/aldiyarseitov/shiftlog/internal/models"
)

// Audit field names, stable identifiers for the audit trail
const (
	FieldRouteNumber      = "route_number"
	FieldDeliveriesOK     = "deliveries_ok"
	FieldDeliveriesFailed = "deliveries_failed"
	FieldPickupsOK        = "pickups_ok"
	FieldPickupsFailed    = "pickups_failed"
	FieldDeliveryComment  = "delivery_comment"
	FieldPickupComment    = "pickup_comment"
	FieldStartKm          = "start_km"
	FieldEndKm            = "end_km"
	FieldStartedAt        = "started_at"
	FieldFinishedAt       = "finished_at"
	FieldStatus           = "status"
	FieldBreaks           = "breaks"
)

// Diff compares two session snapshots field by field and returns one audit
// entry per changed field, with both values serialized as text. Fields
// outside the allowlist are ignored, and identical values produce no entry.
// The new snapshot is assumed to have already passed Validate.
func Diff(prev, next *models.Session, adminID uint) []models.AuditEntry {
	var entries []models.AuditEntry

	record := func(field, oldValue, newValue string) {
		if oldValue == newValue {
			return
		}
		entries = append(entries, models.AuditEntry{
			SessionID: prev.ID,
			AdminID:   adminID,
			Field:     field,
			OldValue:  oldValue,
			NewValue:  newValue,
		})
	}

	record(FieldRouteNumber, prev.RouteNumber, next.RouteNumber)
	record(FieldDeliveriesOK, itoa(prev.DeliveriesOK), itoa(next.DeliveriesOK))
	record(FieldDeliveriesFailed, itoa(prev.DeliveriesFailed), itoa(next.DeliveriesFailed))
	record(FieldPickupsOK, itoa(prev.PickupsOK), itoa(next.PickupsOK))
	record(FieldPickupsFailed, itoa(prev.PickupsFailed), itoa(next.PickupsFailed))
	record(FieldDeliveryComment, prev.DeliveryComment, next.DeliveryComment)
	record(FieldPickupComment, prev.PickupComment, next.PickupComment)
	record(FieldStartKm, formatKm(prev.StartKm), formatKm(next.StartKm))
	record(FieldEndKm, formatKm(prev.EndKm), formatKm(next.EndKm))
	record(FieldStartedAt, formatTime(&prev.StartedAt), formatTime(&next.StartedAt))
	record(FieldFinishedAt, formatTime(prev.FinishedAt), formatTime(next.FinishedAt))
	record(FieldStatus, prev.Status, next.Status)

	// The break sequence is compared as a whole: any bound change, addition
	// or removal counts as one "breaks" change.
	record(FieldBreaks, serializeBreaks(prev.Breaks), serializeBreaks(next.Breaks))

	return entries
}

func itoa(v int) string {
	return fmt.Sprintf("%d", v)
}

func formatKm(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func serializeBreaks(breaks []models.Break) string {
	type pair struct {
		Start string `json:"start"`
		End   string `json:"end,omitempty"`
	}

	pairs := make([]pair, len(breaks))
	for i := range breaks {
		pairs[i].Start = breaks[i].StartedAt.Format(time.RFC3339)
		if breaks[i].FinishedAt != nil {
			pairs[i].End = breaks[i].FinishedAt.Format(time.RFC3339)
		}
	}

	data, _ := json.Marshal(pairs)
	return string(data)
}
