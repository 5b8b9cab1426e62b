package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus represents the status of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft     PurchaseOrderStatus = "draft"
	PurchaseOrderStatusSent      PurchaseOrderStatus = "sent"
	PurchaseOrderStatusConfirmed PurchaseOrderStatus = "confirmed"
	PurchaseOrderStatusDelivered PurchaseOrderStatus = "delivered"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "cancelled"
)

// IsValid checks if the status is a valid PurchaseOrderStatus
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusDraft, PurchaseOrderStatusSent, PurchaseOrderStatusConfirmed,
		PurchaseOrderStatusDelivered, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of PurchaseOrderStatus
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// IsLive returns true while the order still represents stock on its way.
// Delivered and cancelled orders no longer count.
func (s PurchaseOrderStatus) IsLive() bool {
	switch s {
	case PurchaseOrderStatusDraft, PurchaseOrderStatusSent, PurchaseOrderStatusConfirmed:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can transition to the target status
func (s PurchaseOrderStatus) CanTransitionTo(target PurchaseOrderStatus) bool {
	switch s {
	case PurchaseOrderStatusDraft:
		return target == PurchaseOrderStatusSent || target == PurchaseOrderStatusCancelled
	case PurchaseOrderStatusSent:
		return target == PurchaseOrderStatusConfirmed || target == PurchaseOrderStatusCancelled
	case PurchaseOrderStatusConfirmed:
		return target == PurchaseOrderStatusDelivered || target == PurchaseOrderStatusCancelled
	case PurchaseOrderStatusDelivered, PurchaseOrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// PurchaseOrderItem represents a line item in a purchase order
type PurchaseOrderItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductCode string          `gorm:"type:varchar(50);not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// NewPurchaseOrderItem creates a new purchase order item
func NewPurchaseOrderItem(orderID, productID uuid.UUID, productCode, productName string, quantity, unitPrice decimal.Decimal) (*PurchaseOrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	return &PurchaseOrderItem{
		ID:          uuid.New(),
		OrderID:     orderID,
		ProductID:   productID,
		ProductCode: productCode,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Amount:      quantity.Mul(unitPrice),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// UpdateQuantity updates the item quantity and recalculates the amount
func (i *PurchaseOrderItem) UpdateQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	i.Quantity = quantity
	i.Amount = quantity.Mul(i.UnitPrice)
	i.UpdatedAt = time.Now()

	return nil
}

// UpdateUnitPrice updates the unit price and recalculates the amount
func (i *PurchaseOrderItem) UpdateUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	i.UnitPrice = unitPrice
	i.Amount = i.Quantity.Mul(unitPrice)
	i.UpdatedAt = time.Now()

	return nil
}

// PurchaseOrder represents a purchase order aggregate root
// It manages the lifecycle of a supplier order from draft to delivery
type PurchaseOrder struct {
	shared.BaseAggregateRoot
	OrderNumber  string              `gorm:"type:varchar(50);not null;uniqueIndex"`
	SupplierID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	SupplierName string              `gorm:"type:varchar(200);not null"`
	Status       PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'draft'"`
	Items        []PurchaseOrderItem `gorm:"foreignKey:OrderID;references:ID"`
	TotalAmount  decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	OrderDate    *time.Time          `gorm:"index"`
	ExpectedDate *time.Time          `gorm:"index"`
	Remark       string              `gorm:"type:text"`
	SentAt       *time.Time
	ConfirmedAt  *time.Time
	DeliveredAt  *time.Time
	CancelledAt  *time.Time
	CancelReason string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewPurchaseOrder creates a new purchase order in draft status
func NewPurchaseOrder(orderNumber string, supplierID uuid.UUID, supplierName string) (*PurchaseOrder, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	if supplierName == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}

	order := &PurchaseOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		SupplierID:        supplierID,
		SupplierName:      supplierName,
		Status:            PurchaseOrderStatusDraft,
		Items:             make([]PurchaseOrderItem, 0),
		TotalAmount:       decimal.Zero,
	}

	order.AddDomainEvent(NewPurchaseOrderCreatedEvent(order))

	return order, nil
}

// AddItem adds a new item to the order. Only allowed in draft status.
func (o *PurchaseOrder) AddItem(productID uuid.UUID, productCode, productName string, quantity, unitPrice decimal.Decimal) (*PurchaseOrderItem, error) {
	if o.Status != PurchaseOrderStatusDraft {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a non-draft order")
	}

	for _, item := range o.Items {
		if item.ProductID == productID {
			return nil, shared.NewDomainError("DUPLICATE_PRODUCT", "Product already exists in order, update quantity instead")
		}
	}

	item, err := NewPurchaseOrderItem(o.ID, productID, productCode, productName, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	o.Items = append(o.Items, *item)
	o.recalculateTotal()
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return item, nil
}

// UpdateItemQuantity updates the quantity of an existing item.
// Only allowed in draft status.
func (o *PurchaseOrder) UpdateItemQuantity(itemID uuid.UUID, quantity decimal.Decimal) error {
	if o.Status != PurchaseOrderStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Cannot update items in a non-draft order")
	}

	for i := range o.Items {
		if o.Items[i].ID == itemID {
			if err := o.Items[i].UpdateQuantity(quantity); err != nil {
				return err
			}
			o.recalculateTotal()
			o.UpdatedAt = time.Now()
			o.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("NOT_FOUND", "Item not found in this order")
}

// RemoveItem removes an item from the order. Only allowed in draft status.
func (o *PurchaseOrder) RemoveItem(itemID uuid.UUID) error {
	if o.Status != PurchaseOrderStatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Cannot remove items from a non-draft order")
	}

	for i := range o.Items {
		if o.Items[i].ID == itemID {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			o.recalculateTotal()
			o.UpdatedAt = time.Now()
			o.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("NOT_FOUND", "Item not found in this order")
}

// SetExpectedDate sets the expected delivery date
func (o *PurchaseOrder) SetExpectedDate(date *time.Time) {
	o.ExpectedDate = date
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// SetRemark sets the order remark
func (o *PurchaseOrder) SetRemark(remark string) {
	o.Remark = remark
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// Send marks the draft order as sent to the supplier
func (o *PurchaseOrder) Send() error {
	if !o.Status.CanTransitionTo(PurchaseOrderStatusSent) {
		return shared.NewDomainError("INVALID_STATE", "Only a draft order can be sent")
	}
	if len(o.Items) == 0 {
		return shared.NewDomainError("EMPTY_ORDER", "Cannot send an order without items")
	}

	now := time.Now()
	o.Status = PurchaseOrderStatusSent
	o.SentAt = &now
	o.OrderDate = &now
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewPurchaseOrderStatusChangedEvent(o, PurchaseOrderStatusDraft, PurchaseOrderStatusSent))

	return nil
}

// Confirm records the supplier's confirmation of a sent order
func (o *PurchaseOrder) Confirm() error {
	if !o.Status.CanTransitionTo(PurchaseOrderStatusConfirmed) {
		return shared.NewDomainError("INVALID_STATE", "Only a sent order can be confirmed")
	}

	now := time.Now()
	o.Status = PurchaseOrderStatusConfirmed
	o.ConfirmedAt = &now
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewPurchaseOrderStatusChangedEvent(o, PurchaseOrderStatusSent, PurchaseOrderStatusConfirmed))

	return nil
}

// MarkDelivered marks the confirmed order as delivered
func (o *PurchaseOrder) MarkDelivered() error {
	if !o.Status.CanTransitionTo(PurchaseOrderStatusDelivered) {
		return shared.NewDomainError("INVALID_STATE", "Only a confirmed order can be delivered")
	}

	now := time.Now()
	o.Status = PurchaseOrderStatusDelivered
	o.DeliveredAt = &now
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewPurchaseOrderStatusChangedEvent(o, PurchaseOrderStatusConfirmed, PurchaseOrderStatusDelivered))

	return nil
}

// Cancel cancels the order
func (o *PurchaseOrder) Cancel(reason string) error {
	if !o.Status.CanTransitionTo(PurchaseOrderStatusCancelled) {
		return shared.NewDomainError("INVALID_STATE", "A delivered or cancelled order cannot be cancelled")
	}

	oldStatus := o.Status
	now := time.Now()
	o.Status = PurchaseOrderStatusCancelled
	o.CancelledAt = &now
	o.CancelReason = reason
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewPurchaseOrderStatusChangedEvent(o, oldStatus, PurchaseOrderStatusCancelled))

	return nil
}

// IsLive returns true while the order represents incoming stock
func (o *PurchaseOrder) IsLive() bool {
	return o.Status.IsLive()
}

// ContainsProduct returns true if the order has a line item for the product
func (o *PurchaseOrder) ContainsProduct(productID uuid.UUID) bool {
	for _, item := range o.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

func (o *PurchaseOrder) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Amount)
	}
	o.TotalAmount = total
}
