/*
 * @module service/report/territory_growth
 * @description 区域增长排名报表：按同比增速与利润做四分位分桶，并按固定策略决策表分级
 * @architecture 分层架构 - 报表核心层
 * @documentReference dev_docs/requirements.md
 * @stateFlow 逐区域聚合 -> 增速/利润四分位分桶 -> 策略分级
 * @rules 上年销售额为 0 的区域增速未定义，不参与增速分桶但仍出现在报表中
 * @dependencies sales-analytics-service/service/models
 * @refs service/report/stats.go, service/report/decision.go
 */

package report

import (
	"sales-analytics-service/service/models"
)

// growthQuartileLabels 增速四分位标签，升序分桶后 4 为最高增速
var growthQuartileLabels = map[int]string{
	4: "Top Quartile",
	3: "Second Quartile",
	2: "Third Quartile",
	1: "Bottom Quartile",
}

// territoryStrategyTable 区域投资策略决策表，规则顺序即求值顺序
var territoryStrategyTable = mustDecisionTable([]DecisionRule{
	{
		Conditions: []Condition{
			{Dimension: "growth_quartile", Operator: OpEQ, Threshold: 4},
			{Dimension: "profit_quartile", Operator: OpEQ, Threshold: 4},
		},
		Label: "Accelerate Investment",
	},
	{
		Conditions: []Condition{
			{Dimension: "growth_quartile", Operator: OpEQ, Threshold: 4},
		},
		Label: "Fuel Growth",
	},
	{
		Conditions: []Condition{
			{Dimension: "profit_quartile", Operator: OpEQ, Threshold: 4},
		},
		Label: "Protect Margins",
	},
	{
		Conditions: []Condition{
			{Dimension: "growth_quartile", Operator: OpEQ, Threshold: 1},
			{Dimension: "profit_quartile", Operator: OpEQ, Threshold: 1},
		},
		Label: "Turnaround Required",
	},
}, "Maintain Course")

// TerritoryGrowth 计算区域增长排名报表
func TerritoryGrowth(snap *Snapshot) []models.TerritoryGrowthRow {
	rows := make([]models.TerritoryGrowthRow, 0, len(snap.Territories))
	growthVals := make([]*float64, len(snap.Territories))
	profitVals := make([]*float64, len(snap.Territories))

	for i, t := range snap.Territories {
		profit := t.SalesYTD - t.CostYTD
		rows = append(rows, models.TerritoryGrowthRow{
			TerritoryID:   t.ID,
			TerritoryName: t.Name,
			RegionCode:    t.RegionCode,
			SalesYTD:      t.SalesYTD,
			SalesLastYear: t.SalesLastYear,
			SalesGrowth:   SafeDiv(t.SalesYTD-t.SalesLastYear, t.SalesLastYear),
			CostGrowth:    SafeDiv(t.CostYTD-t.CostLastYear, t.CostLastYear),
			Profit:        profit,
			ProfitMargin:  SafeDiv(profit, t.SalesYTD),
		})
		growthVals[i] = rows[i].SalesGrowth
		profitVals[i] = Float(profit)
	}

	growthQ := QuantileBuckets(growthVals, 4)
	profitQ := QuantileBuckets(profitVals, 4)

	for i := range rows {
		rows[i].GrowthQuartile = growthQ[i]
		rows[i].ProfitQuartile = profitQ[i]
		rows[i].GrowthQuartileLabel = growthQuartileLabels[growthQ[i]]
		rows[i].Strategy = territoryStrategyTable.Evaluate(map[string]*float64{
			"growth_quartile": bucketDim(growthQ[i]),
			"profit_quartile": bucketDim(profitQ[i]),
		})
	}
	return rows
}
