/*
 * @module service/report/territory_growth_test
 * @description 区域增长排名报表单元测试
 * @architecture 测试层 - 单元测试
 */

package report

import (
	"testing"

	"sales-analytics-service/service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// growthSnapshot 四个区域，同比增速分别为 0.40 / 0.10 / -0.05 / 0.20
func growthSnapshot() *Snapshot {
	return &Snapshot{
		Territories: []models.SalesTerritory{
			{ID: "A", Name: "区域A", RegionCode: "CN-A", SalesYTD: 140, SalesLastYear: 100, CostYTD: 40, CostLastYear: 38},
			{ID: "B", Name: "区域B", RegionCode: "CN-B", SalesYTD: 110, SalesLastYear: 100, CostYTD: 60, CostLastYear: 58},
			{ID: "C", Name: "区域C", RegionCode: "CN-C", SalesYTD: 95, SalesLastYear: 100, CostYTD: 55, CostLastYear: 54},
			{ID: "D", Name: "区域D", RegionCode: "CN-D", SalesYTD: 120, SalesLastYear: 100, CostYTD: 50, CostLastYear: 47},
		},
	}
}

func TestTerritoryGrowthQuartiles(t *testing.T) {
	rows := TerritoryGrowth(growthSnapshot())
	require.Len(t, rows, 4)

	byID := make(map[string]models.TerritoryGrowthRow)
	for _, row := range rows {
		byID[row.TerritoryID] = row
	}

	// 升序分桶：C(1) B(2) D(3) A(4)
	assert.Equal(t, 1, byID["C"].GrowthQuartile)
	assert.Equal(t, 2, byID["B"].GrowthQuartile)
	assert.Equal(t, 3, byID["D"].GrowthQuartile)
	assert.Equal(t, 4, byID["A"].GrowthQuartile)

	assert.Equal(t, "Top Quartile", byID["A"].GrowthQuartileLabel)
	assert.Equal(t, "Bottom Quartile", byID["C"].GrowthQuartileLabel)
	assert.Equal(t, "Second Quartile", byID["D"].GrowthQuartileLabel)
	assert.Equal(t, "Third Quartile", byID["B"].GrowthQuartileLabel)

	require.NotNil(t, byID["A"].SalesGrowth)
	assert.InDelta(t, 0.40, *byID["A"].SalesGrowth, 1e-12)
	require.NotNil(t, byID["C"].SalesGrowth)
	assert.InDelta(t, -0.05, *byID["C"].SalesGrowth, 1e-12)
}

func TestTerritoryGrowthStrategy(t *testing.T) {
	rows := TerritoryGrowth(growthSnapshot())

	byID := make(map[string]models.TerritoryGrowthRow)
	for _, row := range rows {
		byID[row.TerritoryID] = row
	}

	// 利润升序：C(40) B(50) D(70) A(100)，与增速同序
	assert.Equal(t, "Accelerate Investment", byID["A"].Strategy, "增速与利润都在顶部四分位")
	assert.Equal(t, "Turnaround Required", byID["C"].Strategy, "增速与利润都在底部四分位")
	assert.Equal(t, "Maintain Course", byID["B"].Strategy)
	assert.Equal(t, "Maintain Course", byID["D"].Strategy)
}

func TestTerritoryGrowthUndefinedGrowth(t *testing.T) {
	snap := growthSnapshot()
	// 上年销售额为 0：增速未定义，不参与增速分桶但仍出现在报表中
	snap.Territories = append(snap.Territories, models.SalesTerritory{
		ID: "E", Name: "区域E", RegionCode: "CN-E", SalesYTD: 500, SalesLastYear: 0, CostYTD: 500, CostLastYear: 0,
	})

	rows := TerritoryGrowth(snap)
	require.Len(t, rows, 5)

	byID := make(map[string]models.TerritoryGrowthRow)
	for _, row := range rows {
		byID[row.TerritoryID] = row
	}

	assert.Nil(t, byID["E"].SalesGrowth, "上年为 0 时增速应未定义")
	assert.Equal(t, 0, byID["E"].GrowthQuartile, "未定义增速不应参与分桶")
	assert.Empty(t, byID["E"].GrowthQuartileLabel)

	// 其余四个区域的增速分桶不受影响
	assert.Equal(t, 4, byID["A"].GrowthQuartile)
	assert.Equal(t, 1, byID["C"].GrowthQuartile)

	// 增速未定义时引用增速的规则不成立，落到默认策略
	assert.Equal(t, "Maintain Course", byID["E"].Strategy)
}

func TestTerritoryGrowthEmptyPopulation(t *testing.T) {
	rows := TerritoryGrowth(&Snapshot{})
	assert.Empty(t, rows, "空总体应返回空结果而不是错误")
}
