package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// Product represents a product/SKU in the catalog
// It is the aggregate root for product-related operations
type Product struct {
	shared.BaseAggregateRoot
	Code        string        `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name        string        `gorm:"type:varchar(200);not null"`
	Unit        string        `gorm:"type:varchar(20);not null"` // Base unit (e.g., "pcs", "kg", "box")
	Status      ProductStatus `gorm:"type:varchar(20);not null;default:'active'"`
	SupplierID  uuid.UUID     `gorm:"type:uuid;not null;index"`
	LeadTime    int           `gorm:"not null;default:0"` // Resupply lead time in days
	Refrigerated bool         `gorm:"not null;default:false"`

	// Stock facets. StockAvailable is the sellable on-hand figure;
	// Expired and Rejected are unusable sub-quantities still on the books.
	PhysicalStock     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	StockAvailable    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	IncomingStock     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalHoldingStock decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Expired           decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Rejected          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`

	// Planning parameters
	MinStockQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ReorderQuantity  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`

	// Ordering state
	SuggestedOrderQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	POPlaced               bool            `gorm:"column:po_placed;not null;default:false"`

	Comments    string `gorm:"type:text"`
	WebsiteLink string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product. Every product is sourced from
// exactly one supplier, so the supplier link is mandatory.
func NewProduct(code, name, unit string, supplierID uuid.UUID) (*Product, error) {
	if err := validateProductCode(code); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateUnit(unit); err != nil {
		return nil, err
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}

	product := &Product{
		BaseAggregateRoot:      shared.NewBaseAggregateRoot(),
		Code:                   strings.ToUpper(code),
		Name:                   name,
		Unit:                   unit,
		SupplierID:             supplierID,
		Status:                 ProductStatusActive,
		PhysicalStock:          decimal.Zero,
		StockAvailable:         decimal.Zero,
		IncomingStock:          decimal.Zero,
		TotalHoldingStock:      decimal.Zero,
		Expired:                decimal.Zero,
		Rejected:               decimal.Zero,
		MinStockQuantity:       decimal.Zero,
		ReorderQuantity:        decimal.Zero,
		SuggestedOrderQuantity: decimal.Zero,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, comments string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Comments = comments
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// UpdateCode updates the product's code
// Note: This should be used with caution as other systems may reference the product code
func (p *Product) UpdateCode(code string) error {
	if err := validateProductCode(code); err != nil {
		return err
	}

	p.Code = strings.ToUpper(code)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// AssignSupplier moves the product to a different sourcing supplier
func (p *Product) AssignSupplier(supplierID uuid.UUID) error {
	if supplierID == uuid.Nil {
		return shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	p.SupplierID = supplierID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetStockLevels replaces all stock facet quantities at once.
// Every quantity must be non-negative.
func (p *Product) SetStockLevels(physical, available, incoming, totalHolding, expired, rejected decimal.Decimal) error {
	for _, q := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"physical stock", physical},
		{"stock available", available},
		{"incoming stock", incoming},
		{"total holding stock", totalHolding},
		{"expired", expired},
		{"rejected", rejected},
	} {
		if q.value.IsNegative() {
			return shared.NewDomainError("INVALID_QUANTITY", "Quantity "+q.name+" cannot be negative")
		}
	}

	oldAvailable := p.StockAvailable

	p.PhysicalStock = physical
	p.StockAvailable = available
	p.IncomingStock = incoming
	p.TotalHoldingStock = totalHolding
	p.Expired = expired
	p.Rejected = rejected
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductStockChangedEvent(p, oldAvailable, available))

	return nil
}

// SetPlanningParameters sets the replenishment planning inputs
func (p *Product) SetPlanningParameters(minStock, reorderQuantity decimal.Decimal, leadTimeDays int) error {
	if minStock.IsNegative() {
		return shared.NewDomainError("INVALID_MIN_STOCK", "Minimum stock cannot be negative")
	}
	if reorderQuantity.IsNegative() {
		return shared.NewDomainError("INVALID_REORDER_QUANTITY", "Reorder quantity cannot be negative")
	}
	if leadTimeDays < 0 {
		return shared.NewDomainError("INVALID_LEAD_TIME", "Lead time cannot be negative")
	}

	p.MinStockQuantity = minStock
	p.ReorderQuantity = reorderQuantity
	p.LeadTime = leadTimeDays
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetRefrigerated marks whether the product needs cold-chain storage
func (p *Product) SetRefrigerated(refrigerated bool) {
	p.Refrigerated = refrigerated
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetWebsiteLink sets the supplier product page link
func (p *Product) SetWebsiteLink(link string) error {
	if link != "" && !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		return shared.NewDomainError("INVALID_URL", "Website link must start with http:// or https://")
	}

	p.WebsiteLink = link
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// RecordSuggestedOrder stores the quantity the last planning run proposed
func (p *Product) RecordSuggestedOrder(quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Suggested order quantity cannot be negative")
	}

	p.SuggestedOrderQuantity = quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// MarkPOPlaced records that a purchase order covering this product was placed
func (p *Product) MarkPOPlaced() error {
	if p.POPlaced {
		return shared.NewDomainError("PO_ALREADY_PLACED", "Purchase order is already marked as placed")
	}

	p.POPlaced = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// ClearPOPlaced resets the placed flag, typically after delivery
func (p *Product) ClearPOPlaced() {
	p.POPlaced = false
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Activate activates the product
func (p *Product) Activate() error {
	if p.Status == ProductStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Product is already active")
	}
	if p.Status == ProductStatusDiscontinued {
		return shared.NewDomainError("CANNOT_ACTIVATE", "Cannot activate a discontinued product")
	}

	p.Status = ProductStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Deactivate deactivates the product
func (p *Product) Deactivate() error {
	if p.Status == ProductStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Product is already inactive")
	}

	p.Status = ProductStatusInactive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Discontinue permanently discontinues the product
func (p *Product) Discontinue() error {
	if p.Status == ProductStatusDiscontinued {
		return shared.NewDomainError("ALREADY_DISCONTINUED", "Product is already discontinued")
	}

	p.Status = ProductStatusDiscontinued
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// IsActive returns true if the product is active
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

func validateProductCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Product code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validateUnit(unit string) error {
	if unit == "" {
		return shared.NewDomainError("INVALID_UNIT", "Unit cannot be empty")
	}
	if len(unit) > 20 {
		return shared.NewDomainError("INVALID_UNIT", "Unit cannot exceed 20 characters")
	}
	return nil
}
