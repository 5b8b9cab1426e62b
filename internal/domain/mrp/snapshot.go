package mrp

import (
	"github.com/google/uuid"
	"github.com/mrp/backend/internal/domain/catalog"
	"github.com/mrp/backend/internal/domain/partner"
	"github.com/mrp/backend/internal/domain/planning"
	"github.com/mrp/backend/internal/domain/trade"
)

// Snapshot is a point-in-time, internally consistent view of the
// inventory data a report is computed from. The engine never mutates it.
type Snapshot struct {
	Products    []catalog.Product
	Suppliers   []partner.Supplier
	Jobs        []planning.ProductionJob
	Commitments []planning.ProductCommitment
	Orders      []trade.PurchaseOrder
}

// supplierIndex maps supplier IDs for join lookups
func (s *Snapshot) supplierIndex() map[uuid.UUID]*partner.Supplier {
	index := make(map[uuid.UUID]*partner.Supplier, len(s.Suppliers))
	for i := range s.Suppliers {
		index[s.Suppliers[i].ID] = &s.Suppliers[i]
	}
	return index
}

// jobIndex maps job IDs for commitment ownership lookups
func (s *Snapshot) jobIndex() map[uuid.UUID]*planning.ProductionJob {
	index := make(map[uuid.UUID]*planning.ProductionJob, len(s.Jobs))
	for i := range s.Jobs {
		index[s.Jobs[i].ID] = &s.Jobs[i]
	}
	return index
}

// commitmentsByProduct groups commitments by the product they reserve
func (s *Snapshot) commitmentsByProduct() map[uuid.UUID][]planning.ProductCommitment {
	grouped := make(map[uuid.UUID][]planning.ProductCommitment)
	for _, c := range s.Commitments {
		grouped[c.ProductID] = append(grouped[c.ProductID], c)
	}
	return grouped
}

// productsOnLiveOrders collects the IDs of products that appear on a
// draft, sent or confirmed purchase order
func (s *Snapshot) productsOnLiveOrders() map[uuid.UUID]bool {
	onOrder := make(map[uuid.UUID]bool)
	for i := range s.Orders {
		if !s.Orders[i].IsLive() {
			continue
		}
		for _, item := range s.Orders[i].Items {
			onOrder[item.ProductID] = true
		}
	}
	return onOrder
}
