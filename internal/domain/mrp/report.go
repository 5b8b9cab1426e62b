package mrp

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/catalog"
	"github.com/mrp/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// ReportItem is the per-product outcome of one report run. It is
// ephemeral and never persisted.
type ReportItem struct {
	Product                  catalog.Product
	Supplier                 *partner.Supplier
	StockStatus              StockStatus
	PercentOfMin             decimal.Decimal
	CalculatedAvailableStock decimal.Decimal
	SuggestedOrderQuantity   decimal.Decimal
	DaysUntilStockout        *int
	POInMotion               bool
	UrgencyScore             int
}

// SupplierGroupItem is one pending suggestion inside a supplier group
type SupplierGroupItem struct {
	ProductID   uuid.UUID
	ProductCode string
	ProductName string
	Quantity    decimal.Decimal
}

// SupplierGroup aggregates pending suggested orders for one supplier,
// ready for purchase-order drafting
type SupplierGroup struct {
	SupplierID    uuid.UUID
	SupplierCode  string
	SupplierName  string
	TotalQuantity decimal.Decimal
	Items         []SupplierGroupItem
}

// Report is the assembled MRP report for one snapshot
type Report struct {
	GeneratedAt      time.Time
	Items            []ReportItem
	TotalProducts    int
	CriticalProducts int
	SuggestedOrders  int
	SupplierGroups   []SupplierGroup
}

// Engine computes MRP reports. It does no I/O, holds no locks and is
// safe to call from any number of goroutines at once.
type Engine struct {
	thresholds    Thresholds
	lookaheadDays int
}

// NewEngine creates an engine with the default thresholds and lookahead
func NewEngine() *Engine {
	return NewEngineWith(DefaultThresholds(), DefaultLookaheadDays)
}

// NewEngineWith creates an engine with explicit policy settings
func NewEngineWith(thresholds Thresholds, lookaheadDays int) *Engine {
	if lookaheadDays <= 0 {
		lookaheadDays = DefaultLookaheadDays
	}
	return &Engine{
		thresholds:    thresholds,
		lookaheadDays: lookaheadDays,
	}
}

// GenerateReport runs the full calculation over the snapshot. Either a
// complete report is returned or an error; partial reports are never
// produced.
func (e *Engine) GenerateReport(snapshot Snapshot, asOf time.Time) (*Report, error) {
	suppliers := snapshot.supplierIndex()
	jobs := snapshot.jobIndex()
	commitments := snapshot.commitmentsByProduct()
	onLiveOrder := snapshot.productsOnLiveOrders()

	items := make([]ReportItem, 0, len(snapshot.Products))
	for i := range snapshot.Products {
		product := &snapshot.Products[i]

		supplier, ok := suppliers[product.SupplierID]
		if !ok {
			return nil, newReferentialIntegrityError("product %s references missing supplier %s", product.ID, product.SupplierID)
		}

		productCommitments := commitments[product.ID]

		available, err := resolveAvailableStock(product, productCommitments, jobs)
		if err != nil {
			return nil, err
		}

		status, percent := classifyStock(e.thresholds, available, product.MinStockQuantity)

		poInMotion := product.POPlaced || onLiveOrder[product.ID]
		suggested := suggestOrderQuantity(product, supplier, available, poInMotion)

		var daysPtr *int
		days, hasProjection := projectStockout(available, productCommitments, jobs, asOf, e.lookaheadDays)
		if hasProjection {
			daysPtr = &days
		}

		items = append(items, ReportItem{
			Product:                  *product,
			Supplier:                 supplier,
			StockStatus:              status,
			PercentOfMin:             percent,
			CalculatedAvailableStock: available,
			SuggestedOrderQuantity:   suggested,
			DaysUntilStockout:        daysPtr,
			POInMotion:               poInMotion,
			UrgencyScore:             urgencyScore(status, days, hasProjection, poInMotion),
		})
	}

	sort.SliceStable(items, func(a, b int) bool {
		if items[a].UrgencyScore != items[b].UrgencyScore {
			return items[a].UrgencyScore > items[b].UrgencyScore
		}
		return items[a].Product.Code < items[b].Product.Code
	})

	report := &Report{
		GeneratedAt:   asOf,
		Items:         items,
		TotalProducts: len(items),
	}
	for _, item := range items {
		if item.StockStatus.IsCritical() {
			report.CriticalProducts++
		}
		if item.SuggestedOrderQuantity.IsPositive() {
			report.SuggestedOrders++
		}
	}
	report.SupplierGroups = groupBySupplier(items)

	return report, nil
}

// groupBySupplier folds pending suggestions (a positive suggested
// quantity and no purchase order placed) into per-supplier aggregates,
// sorted by supplier code. Every pending suggestion lands in exactly
// one group, so the group totals account for the full pending demand.
func groupBySupplier(items []ReportItem) []SupplierGroup {
	grouped := make(map[uuid.UUID]*SupplierGroup)
	for _, item := range items {
		if !item.SuggestedOrderQuantity.IsPositive() || item.Product.POPlaced {
			continue
		}

		group, ok := grouped[item.Supplier.ID]
		if !ok {
			group = &SupplierGroup{
				SupplierID:    item.Supplier.ID,
				SupplierCode:  item.Supplier.Code,
				SupplierName:  item.Supplier.Name,
				TotalQuantity: decimal.Zero,
			}
			grouped[item.Supplier.ID] = group
		}

		group.TotalQuantity = group.TotalQuantity.Add(item.SuggestedOrderQuantity)
		group.Items = append(group.Items, SupplierGroupItem{
			ProductID:   item.Product.ID,
			ProductCode: item.Product.Code,
			ProductName: item.Product.Name,
			Quantity:    item.SuggestedOrderQuantity,
		})
	}

	groups := make([]SupplierGroup, 0, len(grouped))
	for _, group := range grouped {
		groups = append(groups, *group)
	}
	sort.Slice(groups, func(a, b int) bool {
		return groups[a].SupplierCode < groups[b].SupplierCode
	})

	return groups
}
