/*
 * @module service/report/product_classification_test
 * @description 产品分级报表单元测试
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

// productSnapshot 三个有销售的产品和一个无销售的产品
// PA 在 2024 与 2025 都有销售，PB、PC 只在 2025 有销售
func productSnapshot() *Snapshot {
	return &Snapshot{
		Categories: []models.ProductCategory{
			{ID: "CAT1", Name: "整车"},
		},
		Subcategories: []models.ProductSubcategory{
			{ID: "SUB1", Name: "山地车", CategoryID: "CAT1"},
		},
		Products: []models.Product{
			{ID: "PA", Name: "产品A", SubcategoryID: "SUB1", ListPrice: 200, StandardCost: 100},
			{ID: "PB", Name: "产品B", SubcategoryID: "SUB1", ListPrice: 300, StandardCost: 100},
			{ID: "PC", Name: "产品C", SubcategoryID: "SUB1", ListPrice: 50, StandardCost: 0},
			{ID: "PD", Name: "产品D", SubcategoryID: "SUB1", ListPrice: 80, StandardCost: 40},
		},
		Orders: []models.SalesOrderHeader{
			{ID: "O1", CustomerID: "C1", TerritoryID: "T1", OrderDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), TotalDue: 500},
			{ID: "O2", CustomerID: "C1", TerritoryID: "T1", OrderDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), TotalDue: 1200},
		},
		OrderDetails: []models.SalesOrderDetail{
			{ID: "D1", OrderID: "O1", ProductID: "PA", LineTotal: 500},
			{ID: "D2", OrderID: "O2", ProductID: "PA", LineTotal: 500},
			{ID: "D3", OrderID: "O2", ProductID: "PB", LineTotal: 600},
			{ID: "D4", OrderID: "O2", ProductID: "PC", LineTotal: 100},
		},
	}
}

func TestProductClassificationInnerJoin(t *testing.T) {
	rows := ProductClassification(productSnapshot())
	require.Len(t, rows, 3, "无销售记录的产品不应出现在报表中")

	for _, row := range rows {
		assert.NotEqual(t, "PD", row.ProductID)
	}
}

func TestProductClassificationMeasures(t *testing.T) {
	rows := ProductClassification(productSnapshot())

	byID := make(map[string]models.ProductClassificationRow)
	for _, row := range rows {
		byID[row.ProductID] = row
	}

	assert.Equal(t, 1000.0, byID["PA"].Revenue)
	assert.Equal(t, 2, byID["PA"].OrderCount)
	require.NotNil(t, byID["PA"].MarginRate)
	assert.InDelta(t, 1.0, *byID["PA"].MarginRate, 1e-12)

	assert.Nil(t, byID["PC"].MarginRate, "成本为 0 时毛利率应未定义")
	assert.Equal(t, 0, byID["PC"].MarginTertile, "毛利率未定义不应参与分桶")

	assert.Equal(t, "整车", byID["PA"].CategoryName)
	assert.Equal(t, "山地车", byID["PA"].SubcategoryName)
}

func TestProductClassificationFirstYearExcludedFromGrowth(t *testing.T) {
	rows := ProductClassification(productSnapshot())

	byID := make(map[string]models.ProductClassificationRow)
	for _, row := range rows {
		byID[row.ProductID] = row
	}

	// PA 两年都有销售：2025 同比 (500-500)/500 = 0
	require.NotNil(t, byID["PA"].RevenueGrowth)
	assert.Equal(t, 0.0, *byID["PA"].RevenueGrowth)
	assert.NotZero(t, byID["PA"].GrowthQuartile)

	// PB 首个有销售年度没有同比基数
	assert.Nil(t, byID["PB"].RevenueGrowth, "无上年销量的产品不应有同比增速")
	assert.Equal(t, 0, byID["PB"].GrowthQuartile, "首年产品不应参与增速分桶")
	assert.Equal(t, 600.0, byID["PB"].LatestYearRev)
}

func TestProductClassificationLabels(t *testing.T) {
	rows := ProductClassification(productSnapshot())

	byID := make(map[string]models.ProductClassificationRow)
	for _, row := range rows {
		byID[row.ProductID] = row
	}

	// 收入升序 PC(100) PB(600) PA(1000) → 三分位 1/2/3
	assert.Equal(t, 3, byID["PA"].RevenueTertile)
	assert.Equal(t, 2, byID["PB"].RevenueTertile)
	assert.Equal(t, 1, byID["PC"].RevenueTertile)

	// 毛利率总体只有 PA(1.0) PB(2.0)：三分位 1/2
	assert.Equal(t, 1, byID["PA"].MarginTertile)
	assert.Equal(t, 2, byID["PB"].MarginTertile)

	assert.Equal(t, "Volume Driver", byID["PA"].Classification, "收入顶部三分位但毛利率一般")
	assert.Equal(t, "Core Assortment", byID["PB"].Classification)
	assert.Equal(t, "Core Assortment", byID["PC"].Classification, "毛利率未定义时不应命中 Rationalize")
}
