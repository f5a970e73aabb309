package patch

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// ExclusionMap maps a "<Schema>.<Table>" name to the columns that must be
// disabled for that table.
type ExclusionMap map[string]mapset.Set[string]

// Problematic lists the columns known to cause data type conversion errors
// downstream. Fixed at compile time, never modified at runtime.
var Problematic = ExclusionMap{
	"Production.WorkOrderRouting":                      mapset.NewThreadUnsafeSet("LocationID"),
	"Production.ProductModel":                          mapset.NewThreadUnsafeSet("CatalogDescription"),
	"Purchasing.ProductVendor":                         mapset.NewThreadUnsafeSet("LastReceiptCost", "LastReceiptDate"),
	"Person.StateProvince":                             mapset.NewThreadUnsafeSet("StateProvinceID", "IsOnlyStateProvinceFlag"),
	"Sales.SalesOrderDetail":                           mapset.NewThreadUnsafeSet("SalesOrderDetailID"),
	"Production.ProductInventory":                      mapset.NewThreadUnsafeSet("LocationID"),
	"Production.ProductDescription":                    mapset.NewThreadUnsafeSet("ProductDescriptionID"),
	"Production.ProductModelProductDescriptionCulture": mapset.NewThreadUnsafeSet("ProductDescriptionID"),
	"Purchasing.PurchaseOrderDetail":                   mapset.NewThreadUnsafeSet("PurchaseOrderDetailID"),
	"Sales.SalesPerson":                                mapset.NewThreadUnsafeSet("SalesLastYear"),
	"Sales.SalesTerritory":                             mapset.NewThreadUnsafeSet("SalesLastYear", "CostLastYear"),
	"Purchasing.ShipMethod":                            mapset.NewThreadUnsafeSet("ShipMethodID", "ShipBase", "ShipRate"),
	"Purchasing.PurchaseOrderHeader":                   mapset.NewThreadUnsafeSet("ShipMethodID", "ShipDate"),
	"Sales.SalesOrderHeader":                           mapset.NewThreadUnsafeSet("ShipDate", "ShipMethodID"),
}
