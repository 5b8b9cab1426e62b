package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/shared"
	"github.com/mrp/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormPurchaseOrderRepository implements PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// FindByID finds an order by its ID, items included
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.PurchaseOrder, error) {
	var order trade.PurchaseOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByOrderNumber finds an order by its number
func (r *GormPurchaseOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*trade.PurchaseOrder, error) {
	var order trade.PurchaseOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("order_number = ?", orderNumber).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll finds all orders matching the filter
func (r *GormPurchaseOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.PurchaseOrder, error) {
	var orders []trade.PurchaseOrder
	query := r.applyFilter(r.db.WithContext(ctx).Model(&trade.PurchaseOrder{}), filter)

	if err := query.Preload("Items").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByStatus finds orders by status
func (r *GormPurchaseOrderRepository) FindByStatus(ctx context.Context, status trade.PurchaseOrderStatus, filter shared.Filter) ([]trade.PurchaseOrder, error) {
	var orders []trade.PurchaseOrder
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&trade.PurchaseOrder{}).
			Where("status = ?", status),
		filter,
	)

	if err := query.Preload("Items").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindBySupplier finds orders for a supplier
func (r *GormPurchaseOrderRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]trade.PurchaseOrder, error) {
	var orders []trade.PurchaseOrder
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&trade.PurchaseOrder{}).
			Where("supplier_id = ?", supplierID),
		filter,
	)

	if err := query.Preload("Items").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindLive finds all draft, sent and confirmed orders, items included
func (r *GormPurchaseOrderRepository) FindLive(ctx context.Context) ([]trade.PurchaseOrder, error) {
	var orders []trade.PurchaseOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("status IN ?", []trade.PurchaseOrderStatus{
			trade.PurchaseOrderStatusDraft,
			trade.PurchaseOrderStatusSent,
			trade.PurchaseOrderStatusConfirmed,
		}).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates an order together with its items.
// Items removed from the aggregate are deleted from the database.
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, order *trade.PurchaseOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		keep := make([]uuid.UUID, 0, len(order.Items))
		for _, item := range order.Items {
			keep = append(keep, item.ID)
		}

		stale := tx.Where("order_id = ?", order.ID)
		if len(keep) > 0 {
			stale = stale.Where("id NOT IN ?", keep)
		}
		if err := stale.Delete(&trade.PurchaseOrderItem{}).Error; err != nil {
			return err
		}

		return tx.Save(order).Error
	})
}

// Delete deletes an order and its items
func (r *GormPurchaseOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&trade.PurchaseOrderItem{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&trade.PurchaseOrder{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// NextOrderNumber generates the next sequential order number.
// Format: PO-YYYY-NNNNN (e.g., PO-2026-00001)
func (r *GormPurchaseOrderRepository) NextOrderNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("PO-%d-", year)

	var lastOrder trade.PurchaseOrder
	err := r.db.WithContext(ctx).
		Model(&trade.PurchaseOrder{}).
		Where("order_number LIKE ?", prefix+"%").
		Order("order_number DESC").
		First(&lastOrder).Error

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	var nextNum int64 = 1
	if err == nil && lastOrder.OrderNumber != "" {
		parts := strings.Split(lastOrder.OrderNumber, "-")
		if len(parts) == 3 {
			var num int64
			if _, parseErr := fmt.Sscanf(parts[2], "%d", &num); parseErr == nil {
				nextNum = num + 1
			}
		}
	}

	return fmt.Sprintf("%s%05d", prefix, nextNum), nil
}

// Count counts orders matching the filter
func (r *GormPurchaseOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return r.count(r.db.WithContext(ctx).Model(&trade.PurchaseOrder{}), filter)
}

// CountByStatus counts orders in a status
func (r *GormPurchaseOrderRepository) CountByStatus(ctx context.Context, status trade.PurchaseOrderStatus, filter shared.Filter) (int64, error) {
	return r.count(
		r.db.WithContext(ctx).Model(&trade.PurchaseOrder{}).
			Where("status = ?", status),
		filter,
	)
}

// CountBySupplier counts orders for a supplier
func (r *GormPurchaseOrderRepository) CountBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) (int64, error) {
	return r.count(
		r.db.WithContext(ctx).Model(&trade.PurchaseOrder{}).
			Where("supplier_id = ?", supplierID),
		filter,
	)
}

func (r *GormPurchaseOrderRepository) count(query *gorm.DB, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.applySearch(query, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormPurchaseOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applySearch(query, filter)
	return applyPagination(query, filter, "created_at DESC")
}

func (r *GormPurchaseOrderRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("order_number ILIKE ? OR supplier_name ILIKE ?", searchPattern, searchPattern)
	}
	return query
}

// Ensure GormPurchaseOrderRepository implements PurchaseOrderRepository
var _ trade.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)
