package mrp

import "github.com/shopspring/decimal"

// StockStatus is one of five ordered stock-health bands
type StockStatus string

const (
	StockStatusGreen    StockStatus = "green"
	StockStatusYellow   StockStatus = "yellow"
	StockStatusOrange   StockStatus = "orange"
	StockStatusLightRed StockStatus = "light-red"
	StockStatusRed      StockStatus = "red"
)

// String returns the string representation of StockStatus
func (s StockStatus) String() string {
	return string(s)
}

// Rank returns the severity ordinal, red=4 down to green=0
func (s StockStatus) Rank() int {
	switch s {
	case StockStatusRed:
		return 4
	case StockStatusLightRed:
		return 3
	case StockStatusOrange:
		return 2
	case StockStatusYellow:
		return 1
	default:
		return 0
	}
}

// IsCritical returns true for the two worst bands
func (s StockStatus) IsCritical() bool {
	return s == StockStatusRed || s == StockStatusLightRed
}

// Thresholds holds the percent-of-min cut points between bands.
// Each band is closed on its lower bound: a product sitting exactly on
// a cut point takes the healthier band.
type Thresholds struct {
	Green    decimal.Decimal
	Yellow   decimal.Decimal
	Orange   decimal.Decimal
	LightRed decimal.Decimal
}

// DefaultThresholds returns the standard band cut points
func DefaultThresholds() Thresholds {
	return Thresholds{
		Green:    decimal.NewFromInt(100),
		Yellow:   decimal.NewFromInt(75),
		Orange:   decimal.NewFromInt(50),
		LightRed: decimal.NewFromInt(25),
	}
}

// Classify maps a percent-of-min value to its band
func (t Thresholds) Classify(percentOfMin decimal.Decimal) StockStatus {
	switch {
	case percentOfMin.GreaterThanOrEqual(t.Green):
		return StockStatusGreen
	case percentOfMin.GreaterThanOrEqual(t.Yellow):
		return StockStatusYellow
	case percentOfMin.GreaterThanOrEqual(t.Orange):
		return StockStatusOrange
	case percentOfMin.GreaterThanOrEqual(t.LightRed):
		return StockStatusLightRed
	default:
		return StockStatusRed
	}
}

var oneHundred = decimal.NewFromInt(100)

// percentOfMin computes available stock as a percentage of the minimum
// requirement. A product without a minimum is never short, so it reports
// a full 100 percent.
func percentOfMin(available, minStock decimal.Decimal) decimal.Decimal {
	if minStock.LessThanOrEqual(decimal.Zero) {
		return oneHundred
	}
	return available.Div(minStock).Mul(oneHundred)
}

// classifyStock derives the band and the percent-of-min figure for a product
func classifyStock(thresholds Thresholds, available, minStock decimal.Decimal) (StockStatus, decimal.Decimal) {
	percent := percentOfMin(available, minStock)
	return thresholds.Classify(percent), percent
}
