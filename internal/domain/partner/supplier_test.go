package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSupplier(t *testing.T) *Supplier {
	t.Helper()
	supplier, err := NewSupplier("SUP001", "Test Supplier")
	require.NoError(t, err)
	return supplier
}

func TestNewSupplier(t *testing.T) {
	t.Run("creates supplier with valid input", func(t *testing.T) {
		supplier, err := NewSupplier("SUP001", "Test Supplier")
		require.NoError(t, err)
		require.NotNil(t, supplier)

		assert.NotEqual(t, uuid.Nil, supplier.ID)
		assert.Equal(t, "SUP001", supplier.Code)
		assert.Equal(t, "Test Supplier", supplier.Name)
		assert.Equal(t, SupplierStatusActive, supplier.Status)
		assert.True(t, supplier.OrderThreshold.IsZero())

		// Should have created event
		events := supplier.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeSupplierCreated, events[0].EventType())
	})

	t.Run("converts code to uppercase", func(t *testing.T) {
		supplier, err := NewSupplier("sup001", "Test Supplier")
		require.NoError(t, err)
		assert.Equal(t, "SUP001", supplier.Code)
	})

	t.Run("fails with empty code", func(t *testing.T) {
		supplier, err := NewSupplier("", "Test Supplier")
		assert.Nil(t, supplier)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with empty name", func(t *testing.T) {
		supplier, err := NewSupplier("SUP001", "")
		assert.Nil(t, supplier)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with invalid characters in code", func(t *testing.T) {
		supplier, err := NewSupplier("SUP@001", "Test Supplier")
		assert.Nil(t, supplier)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only contain letters, numbers, underscores, and hyphens")
	})
}

func TestSupplier_Update(t *testing.T) {
	supplier := createTestSupplier(t)

	t.Run("updates name", func(t *testing.T) {
		supplier.ClearDomainEvents()
		err := supplier.Update("New Name")
		require.NoError(t, err)
		assert.Equal(t, "New Name", supplier.Name)

		events := supplier.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeSupplierUpdated, events[0].EventType())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		err := supplier.Update("")
		assert.Error(t, err)
	})
}

func TestSupplier_SetContact(t *testing.T) {
	supplier := createTestSupplier(t)

	t.Run("sets contact email and phone", func(t *testing.T) {
		err := supplier.SetContact("Orders@Example.com", "+44 1234 567890")
		require.NoError(t, err)
		assert.Equal(t, "orders@example.com", supplier.ContactEmail)
		assert.Equal(t, "+44 1234 567890", supplier.ContactPhone)
	})

	t.Run("allows clearing contact", func(t *testing.T) {
		err := supplier.SetContact("", "")
		require.NoError(t, err)
		assert.Empty(t, supplier.ContactEmail)
		assert.Empty(t, supplier.ContactPhone)
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		err := supplier.SetContact("not-an-email", "")
		assert.Error(t, err)
	})
}

func TestSupplier_SetWebsiteURL(t *testing.T) {
	supplier := createTestSupplier(t)

	t.Run("sets website URL", func(t *testing.T) {
		err := supplier.SetWebsiteURL("https://supplier.example.com/catalogue")
		require.NoError(t, err)
		assert.Equal(t, "https://supplier.example.com/catalogue", supplier.WebsiteURL)
	})

	t.Run("fails without scheme", func(t *testing.T) {
		err := supplier.SetWebsiteURL("supplier.example.com")
		assert.Error(t, err)
	})
}

func TestSupplier_SetOrderThreshold(t *testing.T) {
	supplier := createTestSupplier(t)

	t.Run("sets threshold", func(t *testing.T) {
		err := supplier.SetOrderThreshold(decimal.NewFromInt(50))
		require.NoError(t, err)
		assert.True(t, supplier.HasOrderThreshold())
		assert.True(t, supplier.OrderThreshold.Equal(decimal.NewFromInt(50)))
	})

	t.Run("zero removes threshold", func(t *testing.T) {
		err := supplier.SetOrderThreshold(decimal.Zero)
		require.NoError(t, err)
		assert.False(t, supplier.HasOrderThreshold())
	})

	t.Run("fails with negative threshold", func(t *testing.T) {
		err := supplier.SetOrderThreshold(decimal.NewFromInt(-1))
		assert.Error(t, err)
	})
}

func TestSupplier_ActivateDeactivate(t *testing.T) {
	supplier := createTestSupplier(t)

	t.Run("deactivates active supplier", func(t *testing.T) {
		err := supplier.Deactivate()
		require.NoError(t, err)
		assert.Equal(t, SupplierStatusInactive, supplier.Status)
		assert.False(t, supplier.IsActive())
	})

	t.Run("fails to deactivate twice", func(t *testing.T) {
		err := supplier.Deactivate()
		assert.Error(t, err)
	})

	t.Run("activates inactive supplier", func(t *testing.T) {
		err := supplier.Activate()
		require.NoError(t, err)
		assert.True(t, supplier.IsActive())
	})

	t.Run("fails to activate twice", func(t *testing.T) {
		err := supplier.Activate()
		assert.Error(t, err)
	})
}
