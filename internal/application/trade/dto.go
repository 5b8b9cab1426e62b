package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// CancelOrderRequest carries the cancellation reason
type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// PurchaseOrderItemResponse represents a line item in API responses
type PurchaseOrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID           uuid.UUID                   `json:"id"`
	OrderNumber  string                      `json:"order_number"`
	SupplierID   uuid.UUID                   `json:"supplier_id"`
	SupplierName string                      `json:"supplier_name"`
	Status       string                      `json:"status"`
	Items        []PurchaseOrderItemResponse `json:"items"`
	TotalAmount  decimal.Decimal             `json:"total_amount"`
	OrderDate    *time.Time                  `json:"order_date"`
	ExpectedDate *time.Time                  `json:"expected_date"`
	Remark       string                      `json:"remark,omitempty"`
	CancelReason string                      `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
	Version      int                         `json:"version"`
}

// PurchaseOrderListFilter represents filter options for order list
type PurchaseOrderListFilter struct {
	Status     string     `form:"status" binding:"omitempty,oneof=draft sent confirmed delivered cancelled"`
	SupplierID *uuid.UUID `form:"supplier_id"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// DraftOrdersResponse summarises the outcome of drafting from a report
type DraftOrdersResponse struct {
	Orders []PurchaseOrderResponse `json:"orders"`
}

// ToPurchaseOrderResponse converts a domain PurchaseOrder
func ToPurchaseOrderResponse(o *trade.PurchaseOrder) PurchaseOrderResponse {
	items := make([]PurchaseOrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = PurchaseOrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductCode: item.ProductCode,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		}
	}
	return PurchaseOrderResponse{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		SupplierID:   o.SupplierID,
		SupplierName: o.SupplierName,
		Status:       string(o.Status),
		Items:        items,
		TotalAmount:  o.TotalAmount,
		OrderDate:    o.OrderDate,
		ExpectedDate: o.ExpectedDate,
		Remark:       o.Remark,
		CancelReason: o.CancelReason,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		Version:      o.Version,
	}
}

// ToPurchaseOrderResponses converts a slice of domain PurchaseOrders
func ToPurchaseOrderResponses(orders []trade.PurchaseOrder) []PurchaseOrderResponse {
	responses := make([]PurchaseOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToPurchaseOrderResponse(&orders[i])
	}
	return responses
}
