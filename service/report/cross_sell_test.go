/*
 * @module service/report/cross_sell_test
 * @description 交叉销售机会报表单元测试
 * @architecture 测试层 - 单元测试
 */

package report

import (
	"testing"
	"time"

	"sales-analytics-service/service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// crossSellSnapshot 一个高毛利品类（平均毛利 250）和一个低毛利品类（平均毛利 10）
// X 已购高毛利品类，Y、Z 只购买过低毛利品类
func crossSellSnapshot() *Snapshot {
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return &Snapshot{
		Territories: []models.SalesTerritory{
			{ID: "T1", Name: "区域一"},
			{ID: "T2", Name: "区域二"},
		},
		Customers: []models.Customer{
			{ID: "X", TerritoryID: "T1"},
			{ID: "Y", TerritoryID: "T1"},
			{ID: "Z", TerritoryID: "T2"},
		},
		Categories: []models.ProductCategory{
			{ID: "CATH", Name: "高端配件"},
			{ID: "CATL", Name: "基础配件"},
		},
		Subcategories: []models.ProductSubcategory{
			{ID: "SUBH", Name: "碳纤维轮组", CategoryID: "CATH"},
			{ID: "SUBL", Name: "普通内胎", CategoryID: "CATL"},
		},
		Products: []models.Product{
			{ID: "PH", Name: "高毛利产品", SubcategoryID: "SUBH", ListPrice: 300, StandardCost: 50},
			{ID: "PL", Name: "低毛利产品", SubcategoryID: "SUBL", ListPrice: 30, StandardCost: 20},
		},
		Orders: []models.SalesOrderHeader{
			{ID: "OX", CustomerID: "X", TerritoryID: "T1", OrderDate: day, TotalDue: 300},
			{ID: "OY", CustomerID: "Y", TerritoryID: "T1", OrderDate: day, TotalDue: 30},
			{ID: "OZ", CustomerID: "Z", TerritoryID: "T2", OrderDate: day, TotalDue: 30},
		},
		OrderDetails: []models.SalesOrderDetail{
			{ID: "D1", OrderID: "OX", ProductID: "PH", LineTotal: 300},
			{ID: "D2", OrderID: "OY", ProductID: "PL", LineTotal: 30},
			{ID: "D3", OrderID: "OZ", ProductID: "PL", LineTotal: 30},
		},
	}
}

func TestCrossSellComplement(t *testing.T) {
	rows, err := CrossSellOpportunities(crossSellSnapshot())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := make(map[string]models.CrossSellOpportunityRow)
	for _, row := range rows {
		byID[row.TerritoryID] = row
	}

	// 活跃客户 × 高毛利品类 = 3 个组合，已购 1 个（X），补集 2 个（Y、Z）
	assert.Equal(t, 1, byID["T1"].OpportunityCount, "X 已覆盖，只有 Y 是机会")
	assert.Equal(t, 1, byID["T1"].AffectedCustomers)
	assert.Equal(t, 1, byID["T2"].OpportunityCount)
	assert.Equal(t, 1, byID["T2"].AffectedCustomers)

	// 补集与已购集合恰好划分完整笛卡尔积
	observed := 1
	complement := byID["T1"].OpportunityCount + byID["T2"].OpportunityCount
	assert.Equal(t, 3, observed+complement)
}

func TestCrossSellRevenuePotential(t *testing.T) {
	rows, err := CrossSellOpportunities(crossSellSnapshot())
	require.NoError(t, err)

	byID := make(map[string]models.CrossSellOpportunityRow)
	for _, row := range rows {
		byID[row.TerritoryID] = row
	}

	// 机会数 × 高毛利品类平均毛利(250) × 乘数(2.5)
	assert.Equal(t, 625.0, byID["T1"].RevenuePotential)
	assert.Equal(t, 625.0, byID["T2"].RevenuePotential)
}

func TestCrossSellPriority(t *testing.T) {
	snap := crossSellSnapshot()
	// 再加三个未覆盖高毛利品类的客户：T1 两个、T2 一个，拉开区域机会数差距
	snap.Customers = append(snap.Customers,
		models.Customer{ID: "W1", TerritoryID: "T1"},
		models.Customer{ID: "W2", TerritoryID: "T1"},
		models.Customer{ID: "W3", TerritoryID: "T2"},
	)
	day := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	snap.Orders = append(snap.Orders,
		models.SalesOrderHeader{ID: "OW1", CustomerID: "W1", TerritoryID: "T1", OrderDate: day, TotalDue: 30},
		models.SalesOrderHeader{ID: "OW2", CustomerID: "W2", TerritoryID: "T1", OrderDate: day, TotalDue: 30},
		models.SalesOrderHeader{ID: "OW3", CustomerID: "W3", TerritoryID: "T2", OrderDate: day, TotalDue: 30},
	)
	snap.OrderDetails = append(snap.OrderDetails,
		models.SalesOrderDetail{ID: "D4", OrderID: "OW1", ProductID: "PL", LineTotal: 30},
		models.SalesOrderDetail{ID: "D5", OrderID: "OW2", ProductID: "PL", LineTotal: 30},
		models.SalesOrderDetail{ID: "D6", OrderID: "OW3", ProductID: "PL", LineTotal: 30},
	)

	rows, err := CrossSellOpportunities(snap)
	require.NoError(t, err)

	byID := make(map[string]models.CrossSellOpportunityRow)
	for _, row := range rows {
		byID[row.TerritoryID] = row
	}

	// 机会数 T1=3 T2=2，连续 Q3 = 2.75：T1 ≥ Q3，T2 ≥ 0.5×Q3
	assert.Equal(t, 3, byID["T1"].OpportunityCount)
	assert.Equal(t, 2, byID["T2"].OpportunityCount)
	assert.Equal(t, "Priority Target", byID["T1"].Priority)
	assert.Equal(t, "Secondary Target", byID["T2"].Priority)
}

func TestCrossSellNoHighMarginCategories(t *testing.T) {
	snap := crossSellSnapshot()
	// 全部品类毛利都低于阈值时没有任何机会
	snap.Products = []models.Product{
		{ID: "PH", Name: "产品", SubcategoryID: "SUBH", ListPrice: 60, StandardCost: 50},
		{ID: "PL", Name: "产品", SubcategoryID: "SUBL", ListPrice: 30, StandardCost: 20},
	}

	rows, err := CrossSellOpportunities(snap)
	require.NoError(t, err)
	for _, row := range rows {
		assert.Zero(t, row.OpportunityCount)
		assert.Zero(t, row.RevenuePotential)
	}
}

func TestCrossSellEmptySnapshot(t *testing.T) {
	rows, err := CrossSellOpportunities(&Snapshot{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
