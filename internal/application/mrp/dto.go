package mrp

import (
	"time"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/mrp"
	"github.com/shopspring/decimal"
)

// ReportItemResponse represents one product line of the MRP report
type ReportItemResponse struct {
	ProductID                uuid.UUID       `json:"product_id"`
	ProductCode              string          `json:"product_code"`
	ProductName              string          `json:"product_name"`
	Unit                     string          `json:"unit"`
	Refrigerated             bool            `json:"refrigerated"`
	SupplierID               uuid.UUID       `json:"supplier_id"`
	SupplierCode             string          `json:"supplier_code"`
	SupplierName             string          `json:"supplier_name"`
	StockStatus              string          `json:"stock_status"`
	PercentOfMin             decimal.Decimal `json:"percent_of_min"`
	CalculatedAvailableStock decimal.Decimal `json:"calculated_available_stock"`
	IncomingStock            decimal.Decimal `json:"incoming_stock"`
	MinStockQuantity         decimal.Decimal `json:"min_stock_quantity"`
	SuggestedOrderQuantity   decimal.Decimal `json:"suggested_order_quantity"`
	DaysUntilStockout        *int            `json:"days_until_stockout,omitempty"`
	POPlaced                 bool            `json:"po_placed"`
	UrgencyScore             int             `json:"urgency_score"`
}

// SupplierGroupItemResponse is one pending suggestion in a supplier group
type SupplierGroupItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// SupplierGroupResponse aggregates pending suggestions per supplier
type SupplierGroupResponse struct {
	SupplierID    uuid.UUID                   `json:"supplier_id"`
	SupplierCode  string                      `json:"supplier_code"`
	SupplierName  string                      `json:"supplier_name"`
	TotalQuantity decimal.Decimal             `json:"total_quantity"`
	Items         []SupplierGroupItemResponse `json:"items"`
}

// ReportResponse represents the full MRP report
type ReportResponse struct {
	GeneratedAt      time.Time               `json:"generated_at"`
	TotalProducts    int                     `json:"total_products"`
	CriticalProducts int                     `json:"critical_products"`
	SuggestedOrders  int                     `json:"suggested_orders"`
	Items            []ReportItemResponse    `json:"items"`
	SupplierGroups   []SupplierGroupResponse `json:"supplier_groups"`
}

// ToReportResponse converts a domain Report
func ToReportResponse(report *mrp.Report) ReportResponse {
	items := make([]ReportItemResponse, len(report.Items))
	for i, item := range report.Items {
		items[i] = ReportItemResponse{
			ProductID:                item.Product.ID,
			ProductCode:              item.Product.Code,
			ProductName:              item.Product.Name,
			Unit:                     item.Product.Unit,
			Refrigerated:             item.Product.Refrigerated,
			SupplierID:               item.Supplier.ID,
			SupplierCode:             item.Supplier.Code,
			SupplierName:             item.Supplier.Name,
			StockStatus:              item.StockStatus.String(),
			PercentOfMin:             item.PercentOfMin,
			CalculatedAvailableStock: item.CalculatedAvailableStock,
			IncomingStock:            item.Product.IncomingStock,
			MinStockQuantity:         item.Product.MinStockQuantity,
			SuggestedOrderQuantity:   item.SuggestedOrderQuantity,
			DaysUntilStockout:        item.DaysUntilStockout,
			POPlaced:                 item.Product.POPlaced,
			UrgencyScore:             item.UrgencyScore,
		}
	}

	groups := make([]SupplierGroupResponse, len(report.SupplierGroups))
	for i, group := range report.SupplierGroups {
		groupItems := make([]SupplierGroupItemResponse, len(group.Items))
		for j, item := range group.Items {
			groupItems[j] = SupplierGroupItemResponse{
				ProductID:   item.ProductID,
				ProductCode: item.ProductCode,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
			}
		}
		groups[i] = SupplierGroupResponse{
			SupplierID:    group.SupplierID,
			SupplierCode:  group.SupplierCode,
			SupplierName:  group.SupplierName,
			TotalQuantity: group.TotalQuantity,
			Items:         groupItems,
		}
	}

	return ReportResponse{
		GeneratedAt:      report.GeneratedAt,
		TotalProducts:    report.TotalProducts,
		CriticalProducts: report.CriticalProducts,
		SuggestedOrders:  report.SuggestedOrders,
		Items:            items,
		SupplierGroups:   groups,
	}
}
