package persistence

import (
	"strings"

	"github.com/mrp/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyPagination applies pagination and ordering from the filter.
// defaultOrder is used when the filter carries no explicit ordering.
func applyPagination(query *gorm.DB, filter shared.Filter, defaultOrder string) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(sanitizeColumn(filter.OrderBy) + " " + orderDir)
	} else if defaultOrder != "" {
		query = query.Order(defaultOrder)
	}

	return query
}

// sanitizeColumn strips anything that is not a plain column identifier.
// Ordering columns come from query strings and must not reach SQL raw.
func sanitizeColumn(column string) string {
	var b strings.Builder
	for _, r := range column {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "created_at"
	}
	return b.String()
}
