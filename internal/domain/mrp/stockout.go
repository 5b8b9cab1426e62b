package mrp

import (
	"time"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/planning"
	"github.com/shopspring/decimal"
)

// DefaultLookaheadDays bounds how far ahead committed demand is read
// when estimating the consumption rate.
const DefaultLookaheadDays = 90

// projectStockout estimates the days remaining before available stock is
// depleted. The consumption rate sums each open commitment's quantity
// spread over the days until its job consumes it; jobs whose consumption
// date lies beyond the lookahead horizon are ignored. Without any
// committed demand the projection is unknown and ok is false.
func projectStockout(
	available decimal.Decimal,
	commitments []planning.ProductCommitment,
	jobs map[uuid.UUID]*planning.ProductionJob,
	asOf time.Time,
	lookaheadDays int,
) (int, bool) {
	horizon := asOf.AddDate(0, 0, lookaheadDays)

	rate := decimal.Zero
	for _, c := range commitments {
		job, ok := jobs[c.JobID]
		if !ok || !job.IsOpen() {
			continue
		}
		consumption := job.ConsumptionDate()
		if consumption.After(horizon) {
			continue
		}
		rate = rate.Add(c.QuantityCommitted.Div(decimal.NewFromInt(int64(daysUntil(asOf, consumption)))))
	}

	if !rate.IsPositive() {
		return 0, false
	}

	days := int(available.Div(rate).IntPart())
	if days < 0 {
		days = 0
	}
	return days, true
}

// daysUntil counts whole days from asOf to the given date, clamped to a
// minimum of one so that overdue demand counts as immediate.
func daysUntil(asOf, date time.Time) int {
	days := int(date.Sub(asOf).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}
