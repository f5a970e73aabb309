package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblematicTable(t *testing.T) {
	require.Len(t, Problematic, 14)
	for name, columns := range Problematic {
		assert.NotZero(t, columns.Cardinality(), "Expected table %q to exclude at least one column", name)
	}

	// Spot checks against the known conversion offenders.
	assert.True(t, Problematic["Sales.SalesOrderDetail"].Contains("SalesOrderDetailID"))
	assert.True(t, Problematic["Purchasing.ShipMethod"].Contains("ShipRate"))
	assert.True(t, Problematic["Sales.SalesTerritory"].Contains("CostLastYear"))
	assert.False(t, Problematic["Sales.SalesOrderDetail"].Contains("OrderQty"))

	_, ok := Problematic["HumanResources.Employee"]
	assert.False(t, ok)
}
