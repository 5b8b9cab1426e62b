package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Code             string           `json:"code" binding:"required,min=1,max=50"`
	Name             string           `json:"name" binding:"required,min=1,max=200"`
	Unit             string           `json:"unit" binding:"required,min=1,max=20"`
	SupplierID       uuid.UUID        `json:"supplier_id" binding:"required"`
	Refrigerated     *bool            `json:"refrigerated"`
	MinStockQuantity *decimal.Decimal `json:"min_stock_quantity"`
	ReorderQuantity  *decimal.Decimal `json:"reorder_quantity"`
	LeadTime         *int             `json:"lead_time"`
	Comments         string           `json:"comments" binding:"max=2000"`
	WebsiteLink      string           `json:"website_link" binding:"omitempty,url,max=500"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name             *string          `json:"name" binding:"omitempty,min=1,max=200"`
	SupplierID       *uuid.UUID       `json:"supplier_id"`
	Refrigerated     *bool            `json:"refrigerated"`
	MinStockQuantity *decimal.Decimal `json:"min_stock_quantity"`
	ReorderQuantity  *decimal.Decimal `json:"reorder_quantity"`
	LeadTime         *int             `json:"lead_time"`
	Comments         *string          `json:"comments" binding:"omitempty,max=2000"`
	WebsiteLink      *string          `json:"website_link" binding:"omitempty,url,max=500"`
}

// UpdateStockLevelsRequest replaces the product's stock facets
type UpdateStockLevelsRequest struct {
	PhysicalStock     decimal.Decimal `json:"physical_stock"`
	StockAvailable    decimal.Decimal `json:"stock_available"`
	IncomingStock     decimal.Decimal `json:"incoming_stock"`
	TotalHoldingStock decimal.Decimal `json:"total_holding_stock"`
	Expired           decimal.Decimal `json:"expired"`
	Rejected          decimal.Decimal `json:"rejected"`
}

// SetPOPlacedRequest toggles the purchase-order-placed flag
type SetPOPlacedRequest struct {
	POPlaced bool `json:"po_placed"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID                     uuid.UUID       `json:"id"`
	Code                   string          `json:"code"`
	Name                   string          `json:"name"`
	Unit                   string          `json:"unit"`
	Status                 string          `json:"status"`
	SupplierID             uuid.UUID       `json:"supplier_id"`
	Refrigerated           bool            `json:"refrigerated"`
	PhysicalStock          decimal.Decimal `json:"physical_stock"`
	StockAvailable         decimal.Decimal `json:"stock_available"`
	IncomingStock          decimal.Decimal `json:"incoming_stock"`
	TotalHoldingStock      decimal.Decimal `json:"total_holding_stock"`
	Expired                decimal.Decimal `json:"expired"`
	Rejected               decimal.Decimal `json:"rejected"`
	MinStockQuantity       decimal.Decimal `json:"min_stock_quantity"`
	ReorderQuantity        decimal.Decimal `json:"reorder_quantity"`
	LeadTime               int             `json:"lead_time"`
	SuggestedOrderQuantity decimal.Decimal `json:"suggested_order_quantity"`
	POPlaced               bool            `json:"po_placed"`
	Comments               string          `json:"comments"`
	WebsiteLink            string          `json:"website_link"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
	Version                int             `json:"version"`
}

// ProductListFilter represents filter options for product list
type ProductListFilter struct {
	Search     string     `form:"search"`
	Status     string     `form:"status" binding:"omitempty,oneof=active inactive discontinued"`
	SupplierID *uuid.UUID `form:"supplier_id"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:                     p.ID,
		Code:                   p.Code,
		Name:                   p.Name,
		Unit:                   p.Unit,
		Status:                 string(p.Status),
		SupplierID:             p.SupplierID,
		Refrigerated:           p.Refrigerated,
		PhysicalStock:          p.PhysicalStock,
		StockAvailable:         p.StockAvailable,
		IncomingStock:          p.IncomingStock,
		TotalHoldingStock:      p.TotalHoldingStock,
		Expired:                p.Expired,
		Rejected:               p.Rejected,
		MinStockQuantity:       p.MinStockQuantity,
		ReorderQuantity:        p.ReorderQuantity,
		LeadTime:               p.LeadTime,
		SuggestedOrderQuantity: p.SuggestedOrderQuantity,
		POPlaced:               p.POPlaced,
		Comments:               p.Comments,
		WebsiteLink:            p.WebsiteLink,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
		Version:                p.Version,
	}
}

// ToProductResponses converts a slice of domain Products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
