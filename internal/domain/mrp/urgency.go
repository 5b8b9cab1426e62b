package mrp

// Urgency score weights. The status band dominates, a sooner stockout
// raises the score within a band, and an order already in motion lowers
// it. The score has no absolute meaning and is used only for ordering.
const (
	statusRankWeight   = 1000
	maxStockoutPenalty = 999
	poPlacedDiscount   = 500
)

// urgencyScore folds the band, the stockout projection and the order
// state into one comparable number. A missing projection counts as the
// furthest possible stockout.
func urgencyScore(status StockStatus, daysUntilStockout int, hasProjection, poInMotion bool) int {
	days := maxStockoutPenalty
	if hasProjection && daysUntilStockout < maxStockoutPenalty {
		days = daysUntilStockout
	}

	score := status.Rank()*statusRankWeight - days
	if poInMotion {
		score -= poPlacedDiscount
	}
	return score
}
