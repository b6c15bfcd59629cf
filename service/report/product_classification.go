/*
 * @module service/report/product_classification
 * @description 产品分级报表：按累计收入与毛利率做三分位分桶，叠加最近年度同比增速的四分位
 * @architecture 分层架构 - 报表核心层
 * @documentReference dev_docs/requirements.md
 * @stateFlow 订单明细按产品聚合 -> 收入/毛利率三分位 + 增速四分位 -> 分级
 * @rules 无销售记录的产品不出现在报表中（内连接语义）；首个有销售年度没有同比基数，不参与增速分桶
 * @dependencies sales-analytics-service/service/models
 * @refs service/report/stats.go, service/report/decision.go
 */

package report

import (
	"sales-analytics-service/service/models"
)

// productClassTable 产品分级决策表
var productClassTable = mustDecisionTable([]DecisionRule{
	{
		Conditions: []Condition{
			{Dimension: "revenue_tertile", Operator: OpEQ, Threshold: 3},
			{Dimension: "margin_tertile", Operator: OpEQ, Threshold: 3},
		},
		Label: "Flagship",
	},
	{
		Conditions: []Condition{
			{Dimension: "revenue_tertile", Operator: OpEQ, Threshold: 3},
		},
		Label: "Volume Driver",
	},
	{
		Conditions: []Condition{
			{Dimension: "margin_tertile", Operator: OpEQ, Threshold: 3},
		},
		Label: "Margin Builder",
	},
	{
		Conditions: []Condition{
			{Dimension: "revenue_tertile", Operator: OpEQ, Threshold: 1},
			{Dimension: "margin_tertile", Operator: OpEQ, Threshold: 1},
		},
		Label: "Rationalize",
	},
}, "Core Assortment")

// productFacts 单个产品的聚合事实
type productFacts struct {
	revenue       float64
	orders        map[string]struct{}
	revenueByYear map[int]float64
}

// ProductClassification 计算产品分级报表
func ProductClassification(snap *Snapshot) []models.ProductClassificationRow {
	orderYear := make(map[string]int, len(snap.Orders))
	for _, o := range snap.Orders {
		orderYear[o.ID] = o.OrderDate.Year()
	}

	subcatByID := make(map[string]models.ProductSubcategory, len(snap.Subcategories))
	for _, sc := range snap.Subcategories {
		subcatByID[sc.ID] = sc
	}
	catNameByID := make(map[string]string, len(snap.Categories))
	for _, c := range snap.Categories {
		catNameByID[c.ID] = c.Name
	}

	// 按产品聚合订单明细，产出行按快照中产品的主键顺序排列
	facts := make(map[string]*productFacts)
	latestYear := 0
	for _, d := range snap.OrderDetails {
		f, ok := facts[d.ProductID]
		if !ok {
			f = &productFacts{
				orders:        make(map[string]struct{}),
				revenueByYear: make(map[int]float64),
			}
			facts[d.ProductID] = f
		}
		f.revenue += d.LineTotal
		f.orders[d.OrderID] = struct{}{}
		if year, ok := orderYear[d.OrderID]; ok {
			f.revenueByYear[year] += d.LineTotal
			if year > latestYear {
				latestYear = year
			}
		}
	}

	rows := make([]models.ProductClassificationRow, 0, len(facts))
	revenueVals := make([]*float64, 0, len(facts))
	marginVals := make([]*float64, 0, len(facts))
	growthVals := make([]*float64, 0, len(facts))

	for _, p := range snap.Products {
		f, ok := facts[p.ID]
		if !ok {
			continue
		}

		var subcatName, catName string
		if sc, ok := subcatByID[p.SubcategoryID]; ok {
			subcatName = sc.Name
			catName = catNameByID[sc.CategoryID]
		}

		latestRev := f.revenueByYear[latestYear]
		var growth *float64
		if prior, ok := f.revenueByYear[latestYear-1]; ok && prior != 0 {
			growth = Float((latestRev - prior) / prior)
		}

		rows = append(rows, models.ProductClassificationRow{
			ProductID:       p.ID,
			ProductName:     p.Name,
			SubcategoryName: subcatName,
			CategoryName:    catName,
			Revenue:         f.revenue,
			OrderCount:      len(f.orders),
			MarginRate:      SafeDiv(p.ListPrice-p.StandardCost, p.StandardCost),
			LatestYearRev:   latestRev,
			RevenueGrowth:   growth,
		})
		revenueVals = append(revenueVals, Float(f.revenue))
		marginVals = append(marginVals, rows[len(rows)-1].MarginRate)
		growthVals = append(growthVals, growth)
	}

	revenueT := QuantileBuckets(revenueVals, 3)
	marginT := QuantileBuckets(marginVals, 3)
	growthQ := QuantileBuckets(growthVals, 4)

	for i := range rows {
		rows[i].RevenueTertile = revenueT[i]
		rows[i].MarginTertile = marginT[i]
		rows[i].GrowthQuartile = growthQ[i]
		rows[i].Classification = productClassTable.Evaluate(map[string]*float64{
			"revenue_tertile": bucketDim(revenueT[i]),
			"margin_tertile":  bucketDim(marginT[i]),
		})
	}
	return rows
}
