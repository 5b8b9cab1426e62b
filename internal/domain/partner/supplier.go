package partner

import (
	"strings"
	"time"

	"github.com/mrp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SupplierStatus represents the status of a supplier
type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "active"
	SupplierStatusInactive SupplierStatus = "inactive"
)

// Supplier represents a sourcing supplier.
// It is the aggregate root for supplier-related operations.
type Supplier struct {
	shared.BaseAggregateRoot
	Code         string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name         string          `gorm:"type:varchar(200);not null"`
	Status       SupplierStatus  `gorm:"type:varchar(20);not null;default:'active'"`
	ContactEmail string          `gorm:"type:varchar(200);index"`
	ContactPhone string          `gorm:"type:varchar(50)"`
	WebsiteURL   string          `gorm:"type:varchar(500)"`
	PaymentTerms string          `gorm:"type:varchar(200)"`
	// OrderThreshold is the supplier's minimum order size in units.
	// Zero means the supplier accepts orders of any size.
	OrderThreshold decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Notes          string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier with required fields
func NewSupplier(code, name string) (*Supplier, error) {
	if err := validateSupplierCode(code); err != nil {
		return nil, err
	}
	if err := validateSupplierName(name); err != nil {
		return nil, err
	}

	supplier := &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		Status:            SupplierStatusActive,
		OrderThreshold:    decimal.Zero,
	}

	supplier.AddDomainEvent(NewSupplierCreatedEvent(supplier))

	return supplier, nil
}

// Update updates the supplier's basic information
func (s *Supplier) Update(name string) error {
	if err := validateSupplierName(name); err != nil {
		return err
	}

	s.Name = name
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewSupplierUpdatedEvent(s))

	return nil
}

// SetContact sets the supplier's contact information
func (s *Supplier) SetContact(email, phone string) error {
	if email != "" && !strings.Contains(email, "@") {
		return shared.NewDomainError("INVALID_EMAIL", "Contact email is not a valid address")
	}
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Contact phone cannot exceed 50 characters")
	}

	s.ContactEmail = strings.ToLower(email)
	s.ContactPhone = phone
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetWebsiteURL sets the supplier's website link
func (s *Supplier) SetWebsiteURL(url string) error {
	if url != "" && !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return shared.NewDomainError("INVALID_URL", "Website URL must start with http:// or https://")
	}

	s.WebsiteURL = url
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetPaymentTerms sets the supplier's payment terms description
func (s *Supplier) SetPaymentTerms(terms string) error {
	if len(terms) > 200 {
		return shared.NewDomainError("INVALID_PAYMENT_TERMS", "Payment terms cannot exceed 200 characters")
	}

	s.PaymentTerms = terms
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetOrderThreshold sets the supplier's minimum order quantity.
// Passing zero removes the threshold.
func (s *Supplier) SetOrderThreshold(threshold decimal.Decimal) error {
	if threshold.IsNegative() {
		return shared.NewDomainError("INVALID_THRESHOLD", "Order threshold cannot be negative")
	}

	s.OrderThreshold = threshold
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetNotes sets the supplier's notes
func (s *Supplier) SetNotes(notes string) {
	s.Notes = notes
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// Activate activates the supplier
func (s *Supplier) Activate() error {
	if s.Status == SupplierStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Supplier is already active")
	}

	s.Status = SupplierStatusActive
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Deactivate deactivates the supplier
func (s *Supplier) Deactivate() error {
	if s.Status == SupplierStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Supplier is already inactive")
	}

	s.Status = SupplierStatusInactive
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// IsActive returns true if the supplier is active
func (s *Supplier) IsActive() bool {
	return s.Status == SupplierStatusActive
}

// HasOrderThreshold returns true if a minimum order quantity is configured
func (s *Supplier) HasOrderThreshold() bool {
	return s.OrderThreshold.GreaterThan(decimal.Zero)
}

func validateSupplierCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Supplier code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Supplier code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Supplier code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateSupplierName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 200 characters")
	}
	return nil
}
