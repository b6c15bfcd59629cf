/*
 * @module service/report/allocation
 * @description 扩张预算分配报表：四个四分位指数合成机会分，按收入份额加权分配固定预算
 * @architecture 分层架构 - 报表核心层
 * @documentReference dev_docs/requirements.md
 * @stateFlow 逐区域四维度四分位 -> 机会分 [4,16] -> 份额加权归一 -> 金额分配与回报预估 -> 梯队分级
 * @rules 全体权重非负且和为 1（容差 1e-6）；预算总额 $10,000,000 与梯队阈值 ≥14/≥11/≥8 是输出契约；
 *        收入与客户规模的四分位取反向指数，基数越小的区域扩张空间越大
 * @dependencies sales-analytics-service/service/models
 * @refs service/report/stats.go, service/report/decision.go
 */

package report

import (
	"sales-analytics-service/service/models"
)

// allocationTierTable 投资梯队决策表，维度为机会分
var allocationTierTable = mustDecisionTable([]DecisionRule{
	{
		Conditions: []Condition{{Dimension: "score", Operator: OpGTE, Threshold: 14}},
		Label:      "Tier 1 - Aggressive Expansion",
	},
	{
		Conditions: []Condition{{Dimension: "score", Operator: OpGTE, Threshold: 11}},
		Label:      "Tier 2 - Growth Investment",
	},
	{
		Conditions: []Condition{{Dimension: "score", Operator: OpGTE, Threshold: 8}},
		Label:      "Tier 3 - Selective Investment",
	},
}, "Tier 4 - Maintain")

// BudgetAllocation 计算扩张预算分配报表
func BudgetAllocation(snap *Snapshot) []models.BudgetAllocationRow {
	customerCount := make(map[string]int)
	for _, c := range snap.Customers {
		customerCount[c.TerritoryID]++
	}

	n := len(snap.Territories)
	growthVals := make([]*float64, n)
	efficiencyVals := make([]*float64, n)
	revenueVals := make([]*float64, n)
	customerVals := make([]*float64, n)
	var totalRevenue float64

	for i, t := range snap.Territories {
		growthVals[i] = SafeDiv(t.SalesYTD-t.SalesLastYear, t.SalesLastYear)
		efficiencyVals[i] = SafeDiv(t.SalesYTD, t.CostYTD)
		revenueVals[i] = Float(t.SalesYTD)
		customerVals[i] = Float(float64(customerCount[t.ID]))
		totalRevenue += t.SalesYTD
	}

	growthQ := QuantileBuckets(growthVals, 4)
	efficiencyQ := QuantileBuckets(efficiencyVals, 4)
	revenueQ := QuantileBuckets(revenueVals, 4)
	customerQ := QuantileBuckets(customerVals, 4)

	rows := make([]models.BudgetAllocationRow, 0, n)
	var weightDenom float64
	for i, t := range snap.Territories {
		// 增长与效率取正向指数，收入与客户规模取反向指数（基数小 = 扩张空间大）
		score := quartileOrMin(growthQ[i]) + quartileOrMin(efficiencyQ[i]) +
			(5 - quartileOrMin(revenueQ[i])) + (5 - quartileOrMin(customerQ[i]))

		share := 0.0
		if totalRevenue != 0 {
			share = t.SalesYTD / totalRevenue
		}
		roi := SafeDiv(t.SalesYTD-t.CostYTD, t.CostYTD)

		rows = append(rows, models.BudgetAllocationRow{
			TerritoryID:      t.ID,
			TerritoryName:    t.Name,
			OpportunityScore: score,
			RevenueShare:     share,
			ROI:              roi,
			Tier: allocationTierTable.Evaluate(map[string]*float64{
				"score": Float(float64(score)),
			}),
		})
		weightDenom += float64(score) * share
	}

	for i := range rows {
		// 分母为 0 只会在全部区域收入为 0 时出现，此时不分配任何预算
		if weightDenom != 0 {
			rows[i].Weight = float64(rows[i].OpportunityScore) * rows[i].RevenueShare / weightDenom
		}
		rows[i].Allocation = Round2(rows[i].Weight * TotalExpansionBudget)
		if rows[i].ROI != nil {
			rows[i].ProjectedReturn = Float(Round2(rows[i].Allocation * *rows[i].ROI))
		}
	}
	return rows
}

// quartileOrMin 未分桶（度量未定义）时取最低指数 1，保证机会分落在 [4,16]
func quartileOrMin(q int) int {
	if q == 0 {
		return 1
	}
	return q
}
