/*
 * @module service/report/scorecard_test
 * @description 区域综合记分卡单元测试
 * @architecture 测试层 - 单元测试
 */

package report

import (
	"testing"

	"sales-analytics-service/service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scorecardSnapshot 三个区域，五个维度都按 T1 < T2 < T3 排列
func scorecardSnapshot() *Snapshot {
	return &Snapshot{
		Territories: []models.SalesTerritory{
			{ID: "T1", Name: "区域一", SalesYTD: 100, SalesLastYear: 100, CostYTD: 90, CostLastYear: 85},
			{ID: "T2", Name: "区域二", SalesYTD: 200, SalesLastYear: 100, CostYTD: 150, CostLastYear: 140},
			{ID: "T3", Name: "区域三", SalesYTD: 400, SalesLastYear: 100, CostYTD: 200, CostLastYear: 180},
		},
		Customers: []models.Customer{
			{ID: "C1", TerritoryID: "T1"},
			{ID: "C2", TerritoryID: "T2"},
			{ID: "C3", TerritoryID: "T2"},
			{ID: "C4", TerritoryID: "T3"},
			{ID: "C5", TerritoryID: "T3"},
			{ID: "C6", TerritoryID: "T3"},
		},
	}
}

func TestTerritoryScorecardScores(t *testing.T) {
	rows, err := TerritoryScorecard(scorecardSnapshot())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byID := make(map[string]models.TerritoryScorecardRow)
	for _, row := range rows {
		byID[row.TerritoryID] = row
	}

	// 五个维度同序时合成得分就是各维度共同的百分位
	assert.Equal(t, 0.0, byID["T1"].CompositeScore)
	assert.Equal(t, 50.0, byID["T2"].CompositeScore)
	assert.Equal(t, 100.0, byID["T3"].CompositeScore)

	assert.Equal(t, "Underperforming", byID["T1"].Rating)
	assert.Equal(t, "Strong", byID["T2"].Rating)
	assert.Equal(t, "Elite", byID["T3"].Rating)
}

func TestTerritoryScorecardBounds(t *testing.T) {
	rows, err := TerritoryScorecard(scorecardSnapshot())
	require.NoError(t, err)

	for _, row := range rows {
		assert.GreaterOrEqual(t, row.CompositeScore, 0.0)
		assert.LessOrEqual(t, row.CompositeScore, 100.0)
	}
}

func TestTerritoryScorecardOrderInvariance(t *testing.T) {
	forward, err := TerritoryScorecard(scorecardSnapshot())
	require.NoError(t, err)

	reversed := scorecardSnapshot()
	for i, j := 0, len(reversed.Territories)-1; i < j; i, j = i+1, j-1 {
		reversed.Territories[i], reversed.Territories[j] = reversed.Territories[j], reversed.Territories[i]
	}
	backward, err := TerritoryScorecard(reversed)
	require.NoError(t, err)

	forwardByID := make(map[string]float64)
	for _, row := range forward {
		forwardByID[row.TerritoryID] = row.CompositeScore
	}
	for _, row := range backward {
		assert.Equal(t, forwardByID[row.TerritoryID], row.CompositeScore,
			"合成得分不应依赖输入行顺序")
	}
}

func TestTerritoryScorecardUndefinedDimension(t *testing.T) {
	snap := scorecardSnapshot()
	// 上年销售额与本年成本都为 0：增速与效率两个维度未定义
	snap.Territories = append(snap.Territories, models.SalesTerritory{
		ID: "T4", Name: "区域四", SalesYTD: 50, SalesLastYear: 0, CostYTD: 0,
	})

	rows, err := TerritoryScorecard(snap)
	require.NoError(t, err)

	byID := make(map[string]models.TerritoryScorecardRow)
	for _, row := range rows {
		byID[row.TerritoryID] = row
	}

	assert.Nil(t, byID["T4"].GrowthPct, "增速未定义时百分位应为 null")
	assert.Nil(t, byID["T4"].EfficiencyPct)
	assert.GreaterOrEqual(t, byID["T4"].CompositeScore, 0.0)
	assert.LessOrEqual(t, byID["T4"].CompositeScore, 100.0)
}

func TestTerritoryScorecardEmptyPopulation(t *testing.T) {
	rows, err := TerritoryScorecard(&Snapshot{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
