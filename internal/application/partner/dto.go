package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// CreateSupplierRequest represents a request to create a new supplier
type CreateSupplierRequest struct {
	Code           string           `json:"code" binding:"required,min=1,max=50"`
	Name           string           `json:"name" binding:"required,min=1,max=200"`
	ContactEmail   string           `json:"contact_email" binding:"omitempty,email,max=200"`
	ContactPhone   string           `json:"contact_phone" binding:"max=50"`
	WebsiteURL     string           `json:"website_url" binding:"omitempty,url,max=500"`
	PaymentTerms   string           `json:"payment_terms" binding:"max=200"`
	OrderThreshold *decimal.Decimal `json:"order_threshold"`
	Notes          string           `json:"notes"`
}

// UpdateSupplierRequest represents a request to update a supplier
type UpdateSupplierRequest struct {
	Name           *string          `json:"name" binding:"omitempty,min=1,max=200"`
	ContactEmail   *string          `json:"contact_email" binding:"omitempty,email,max=200"`
	ContactPhone   *string          `json:"contact_phone" binding:"omitempty,max=50"`
	WebsiteURL     *string          `json:"website_url" binding:"omitempty,url,max=500"`
	PaymentTerms   *string          `json:"payment_terms" binding:"omitempty,max=200"`
	OrderThreshold *decimal.Decimal `json:"order_threshold"`
	Notes          *string          `json:"notes"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID             uuid.UUID       `json:"id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Status         string          `json:"status"`
	ContactEmail   string          `json:"contact_email"`
	ContactPhone   string          `json:"contact_phone"`
	WebsiteURL     string          `json:"website_url"`
	PaymentTerms   string          `json:"payment_terms"`
	OrderThreshold decimal.Decimal `json:"order_threshold"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Version        int             `json:"version"`
}

// SupplierListFilter represents filter options for supplier list
type SupplierListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToSupplierResponse converts a domain Supplier to SupplierResponse
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:             s.ID,
		Code:           s.Code,
		Name:           s.Name,
		Status:         string(s.Status),
		ContactEmail:   s.ContactEmail,
		ContactPhone:   s.ContactPhone,
		WebsiteURL:     s.WebsiteURL,
		PaymentTerms:   s.PaymentTerms,
		OrderThreshold: s.OrderThreshold,
		Notes:          s.Notes,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
		Version:        s.Version,
	}
}

// ToSupplierResponses converts a slice of domain Suppliers
func ToSupplierResponses(suppliers []partner.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses
}
