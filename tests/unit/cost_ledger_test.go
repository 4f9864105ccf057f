package unit_test

import (
	"testing"

	"amlak-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string {
	return &s
}

func TestNewCostItem(t *testing.T) {
	t.Run("ComputesLineTotal", func(t *testing.T) {
		item, err := domain.NewCostItem(domain.ClassificationLabor, 150.5, 3)

		require.NoError(t, err)
		assert.Equal(t, domain.ClassificationLabor, item.ClassificationType)
		assert.Equal(t, 150.5*3, item.Total)
	})

	t.Run("QuantityOfOne", func(t *testing.T) {
		item, err := domain.NewCostItem(domain.ClassificationMaterials, 99.99, 1)

		require.NoError(t, err)
		assert.Equal(t, 99.99, item.Total)
	})

	t.Run("MissingClassification", func(t *testing.T) {
		_, err := domain.NewCostItem("", 10, 1)
		assert.ErrorIs(t, err, domain.ErrMissingClassification)
	})

	t.Run("UnknownClassification", func(t *testing.T) {
		_, err := domain.NewCostItem("furniture", 10, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidClassification)
	})

	t.Run("ZeroCost", func(t *testing.T) {
		_, err := domain.NewCostItem(domain.ClassificationTools, 0, 1)
		assert.ErrorIs(t, err, domain.ErrNonPositiveCost)
	})

	t.Run("NegativeCost", func(t *testing.T) {
		_, err := domain.NewCostItem(domain.ClassificationTools, -5, 1)
		assert.ErrorIs(t, err, domain.ErrNonPositiveCost)
	})

	t.Run("ZeroQuantity", func(t *testing.T) {
		_, err := domain.NewCostItem(domain.ClassificationEquipment, 10, 0)
		assert.ErrorIs(t, err, domain.ErrNonPositiveQuantity)
	})

	t.Run("NegativeQuantity", func(t *testing.T) {
		_, err := domain.NewCostItem(domain.ClassificationEquipment, 10, -2)
		assert.ErrorIs(t, err, domain.ErrNonPositiveQuantity)
	})
}

func TestComputeTotal(t *testing.T) {
	t.Run("SumsLineTotals", func(t *testing.T) {
		items := []domain.CostItem{
			{ClassificationType: domain.ClassificationLabor, Cost: 100, Quantity: 2, Total: 200},
			{ClassificationType: domain.ClassificationMaterials, Cost: 50, Quantity: 3, Total: 150},
			{ClassificationType: domain.ClassificationOther, Cost: 12.5, Quantity: 4, Total: 50},
		}

		assert.Equal(t, 400.0, domain.ComputeTotal(items))
	})

	t.Run("EmptyIsZero", func(t *testing.T) {
		assert.Equal(t, 0.0, domain.ComputeTotal(nil))
	})

	t.Run("DuplicateClassificationsKeptSeparate", func(t *testing.T) {
		items := []domain.CostItem{
			{ClassificationType: domain.ClassificationLabor, Cost: 10, Quantity: 1, Total: 10},
			{ClassificationType: domain.ClassificationLabor, Cost: 20, Quantity: 1, Total: 20},
		}

		assert.Equal(t, 30.0, domain.ComputeTotal(items))
	})
}

func TestCostLedger(t *testing.T) {
	t.Run("AddAndTotal", func(t *testing.T) {
		ledger := domain.NewCostLedger()

		_, err := ledger.AddItem(domain.ClassificationLabor, 100, 2)
		require.NoError(t, err)
		_, err = ledger.AddItem(domain.ClassificationMaterials, 75, 4)
		require.NoError(t, err)

		assert.Equal(t, 2, ledger.Len())
		assert.Equal(t, 500.0, ledger.Total())
	})

	t.Run("InvalidItemDoesNotChangeLedger", func(t *testing.T) {
		ledger := domain.NewCostLedger()

		_, err := ledger.AddItem(domain.ClassificationLabor, -1, 2)

		assert.Error(t, err)
		assert.Equal(t, 0, ledger.Len())
		assert.Equal(t, 0.0, ledger.Total())
	})

	t.Run("RemoveItem", func(t *testing.T) {
		ledger := domain.NewCostLedger()
		ledger.AddItem(domain.ClassificationLabor, 100, 1)
		ledger.AddItem(domain.ClassificationMaterials, 200, 1)
		ledger.AddItem(domain.ClassificationTools, 300, 1)

		ledger.RemoveItem(1)

		require.Equal(t, 2, ledger.Len())
		assert.Equal(t, domain.ClassificationLabor, ledger.Items()[0].ClassificationType)
		assert.Equal(t, domain.ClassificationTools, ledger.Items()[1].ClassificationType)
		assert.Equal(t, 400.0, ledger.Total())
	})

	t.Run("RemoveOutOfRangeIsNoOp", func(t *testing.T) {
		ledger := domain.NewCostLedger()
		ledger.AddItem(domain.ClassificationLabor, 100, 1)

		ledger.RemoveItem(-1)
		ledger.RemoveItem(5)

		assert.Equal(t, 1, ledger.Len())
	})
}
