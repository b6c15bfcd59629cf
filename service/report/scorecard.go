/*
 * @module service/report/scorecard
 * @description 区域综合记分卡：五个维度的百分位按固定权重合成 [0,100] 得分并分级
 * @architecture 分层架构 - 报表核心层
 * @documentReference dev_docs/requirements.md
 * @stateFlow 逐区域聚合五维度 -> 各维度独立百分位 -> 加权合成 -> 评级
 * @rules 合成权重 0.30/0.25/0.20/0.15/0.10 是输出契约；未定义维度不参与该维度的排序总体，合成时按 0 计
 * @dependencies sales-analytics-service/service/models
 * @refs service/report/stats.go, service/report/constants.go
 */

package report

import (
	"fmt"

	"sales-analytics-service/service/models"
)

// scorecardRatingTable 记分卡评级决策表
var scorecardRatingTable = mustDecisionTable([]DecisionRule{
	{
		Conditions: []Condition{{Dimension: "score", Operator: OpGTE, Threshold: 75}},
		Label:      "Elite",
	},
	{
		Conditions: []Condition{{Dimension: "score", Operator: OpGTE, Threshold: 50}},
		Label:      "Strong",
	},
	{
		Conditions: []Condition{{Dimension: "score", Operator: OpGTE, Threshold: 25}},
		Label:      "Developing",
	},
}, "Underperforming")

// TerritoryScorecard 计算区域综合记分卡
func TerritoryScorecard(snap *Snapshot) ([]models.TerritoryScorecardRow, error) {
	customerCount := make(map[string]int)
	for _, c := range snap.Customers {
		customerCount[c.TerritoryID]++
	}

	n := len(snap.Territories)
	growthVals := make([]*float64, n)
	profitVals := make([]*float64, n)
	customerVals := make([]*float64, n)
	revenueVals := make([]*float64, n)
	efficiencyVals := make([]*float64, n)

	for i, t := range snap.Territories {
		growthVals[i] = SafeDiv(t.SalesYTD-t.SalesLastYear, t.SalesLastYear)
		profitVals[i] = Float(t.SalesYTD - t.CostYTD)
		customerVals[i] = Float(float64(customerCount[t.ID]))
		revenueVals[i] = Float(t.SalesYTD)
		efficiencyVals[i] = SafeDiv(t.SalesYTD, t.CostYTD)
	}

	growthPct := PercentileRanks(growthVals)
	profitPct := PercentileRanks(profitVals)
	customerPct := PercentileRanks(customerVals)
	revenuePct := PercentileRanks(revenueVals)
	efficiencyPct := PercentileRanks(efficiencyVals)

	rows := make([]models.TerritoryScorecardRow, 0, n)
	for i, t := range snap.Territories {
		dims := []float64{
			pctOrZero(growthPct[i]),
			pctOrZero(profitPct[i]),
			pctOrZero(customerPct[i]),
			pctOrZero(revenuePct[i]),
			pctOrZero(efficiencyPct[i]),
		}
		score, err := WeightedComposite(dims, ScorecardWeights)
		if err != nil {
			return nil, fmt.Errorf("区域 %s 记分卡合成失败: %w", t.ID, err)
		}

		rows = append(rows, models.TerritoryScorecardRow{
			TerritoryID:    t.ID,
			TerritoryName:  t.Name,
			GrowthPct:      scalePct(growthPct[i]),
			ProfitPct:      pctOrZero(profitPct[i]),
			CustomerPct:    pctOrZero(customerPct[i]),
			RevenuePct:     pctOrZero(revenuePct[i]),
			EfficiencyPct:  scalePct(efficiencyPct[i]),
			CompositeScore: score,
			Rating: scorecardRatingTable.Evaluate(map[string]*float64{
				"score": Float(score),
			}),
		})
	}
	return rows, nil
}

// scalePct 把 [0,1] 百分位缩放到 [0,100]，未定义保持 nil
func scalePct(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return Float(Round2(*p * 100))
}

// pctOrZero 把 [0,1] 百分位缩放到 [0,100]，未定义维度按 0 计
func pctOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return Round2(*p * 100)
}
