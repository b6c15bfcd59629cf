/*
 * @module service/report/cross_sell
 * @description 交叉销售机会报表：对 (活跃客户 × 高毛利品类) 的笛卡尔积做补集，按区域汇总机会数与收入潜力
 * @architecture 分层架构 - 报表核心层
 * @documentReference dev_docs/requirements.md
 * @stateFlow 识别高毛利品类 -> 构建已购 (客户,品类) 哈希集合 -> 笛卡尔积补集 -> 区域汇总与优先级分级
 * @rules 已购组合必须用哈希查找而不是嵌套扫描，避免 区域×客户×品类 规模下的平方级膨胀；
 *        优先级阈值取机会数分布的连续第三四分位（线性插值），属于数据相关阈值
 * @dependencies sales-analytics-service/service/models
 * @refs service/report/stats.go, service/report/decision.go
 */

package report

import (
	"fmt"

	"sales-analytics-service/service/models"
)

// customerCategory 已购组合哈希键
type customerCategory struct {
	customerID string
	categoryID string
}

// CrossSellOpportunities 计算交叉销售机会报表。
// 优先级决策表的阈值依赖机会数分布，需要在运行期构造，构造失败视为配置错误返回。
func CrossSellOpportunities(snap *Snapshot) ([]models.CrossSellOpportunityRow, error) {
	categoryByProduct, highMargin, avgHighMargin := highMarginCategories(snap)

	customerByID := make(map[string]models.Customer, len(snap.Customers))
	for _, c := range snap.Customers {
		customerByID[c.ID] = c
	}
	orderCustomer := make(map[string]string, len(snap.Orders))
	for _, o := range snap.Orders {
		orderCustomer[o.ID] = o.CustomerID
	}

	// 已观测到购买的 (客户, 品类) 组合，同时记录活跃客户（保持快照迭代顺序）
	observed := make(map[customerCategory]struct{}, len(snap.OrderDetails))
	activeSet := make(map[string]struct{})
	active := make([]string, 0)
	for _, d := range snap.OrderDetails {
		custID, ok := orderCustomer[d.OrderID]
		if !ok {
			continue
		}
		if _, seen := activeSet[custID]; !seen {
			activeSet[custID] = struct{}{}
			active = append(active, custID)
		}
		if catID, ok := categoryByProduct[d.ProductID]; ok {
			observed[customerCategory{customerID: custID, categoryID: catID}] = struct{}{}
		}
	}

	// 补集：活跃客户 × 高毛利品类 中未出现购买记录的组合，按客户所属区域汇总
	oppCount := make(map[string]int)
	affected := make(map[string]map[string]struct{})
	for _, custID := range active {
		cust, ok := customerByID[custID]
		if !ok {
			continue
		}
		for _, catID := range highMargin {
			if _, bought := observed[customerCategory{customerID: custID, categoryID: catID}]; bought {
				continue
			}
			oppCount[cust.TerritoryID]++
			if affected[cust.TerritoryID] == nil {
				affected[cust.TerritoryID] = make(map[string]struct{})
			}
			affected[cust.TerritoryID][custID] = struct{}{}
		}
	}

	rows := make([]models.CrossSellOpportunityRow, 0, len(snap.Territories))
	counts := make([]float64, 0, len(snap.Territories))
	for _, t := range snap.Territories {
		rows = append(rows, models.CrossSellOpportunityRow{
			TerritoryID:       t.ID,
			TerritoryName:     t.Name,
			OpportunityCount:  oppCount[t.ID],
			AffectedCustomers: len(affected[t.ID]),
			RevenuePotential:  Round2(float64(oppCount[t.ID]) * avgHighMargin * CrossSellMultiplier),
		})
		counts = append(counts, float64(oppCount[t.ID]))
	}

	priorityTable, err := crossSellPriorityTable(counts)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Priority = priorityTable.Evaluate(map[string]*float64{
			"opportunities": Float(float64(rows[i].OpportunityCount)),
		})
	}
	return rows, nil
}

// highMarginCategories 识别平均产品毛利高于阈值的品类。
// 返回产品到品类的映射、高毛利品类 ID（按快照品类顺序）以及这些品类产品的平均毛利。
func highMarginCategories(snap *Snapshot) (map[string]string, []string, float64) {
	categoryBySubcat := make(map[string]string, len(snap.Subcategories))
	for _, sc := range snap.Subcategories {
		categoryBySubcat[sc.ID] = sc.CategoryID
	}

	categoryByProduct := make(map[string]string, len(snap.Products))
	marginSum := make(map[string]float64)
	marginCount := make(map[string]int)
	for _, p := range snap.Products {
		catID, ok := categoryBySubcat[p.SubcategoryID]
		if !ok {
			continue
		}
		categoryByProduct[p.ID] = catID
		marginSum[catID] += p.ListPrice - p.StandardCost
		marginCount[catID]++
	}

	highMargin := make([]string, 0)
	var totalMargin float64
	var totalCount int
	for _, c := range snap.Categories {
		if marginCount[c.ID] == 0 {
			continue
		}
		if marginSum[c.ID]/float64(marginCount[c.ID]) > HighMarginThreshold {
			highMargin = append(highMargin, c.ID)
			totalMargin += marginSum[c.ID]
			totalCount += marginCount[c.ID]
		}
	}

	avg := 0.0
	if totalCount > 0 {
		avg = totalMargin / float64(totalCount)
	}
	return categoryByProduct, highMargin, avg
}

// crossSellPriorityTable 按机会数分布的连续 Q3 构造区域优先级决策表
func crossSellPriorityTable(counts []float64) (*DecisionTable, error) {
	q3 := ContinuousQuantile(counts, 0.75)
	if q3 == nil {
		// 空总体时没有可用阈值，全部区域落在默认标签
		return NewDecisionTable(nil, "Watch List")
	}

	table, err := NewDecisionTable([]DecisionRule{
		{
			Conditions: []Condition{
				{Dimension: "opportunities", Operator: OpGTE, Threshold: *q3},
			},
			Label: "Priority Target",
		},
		{
			Conditions: []Condition{
				{Dimension: "opportunities", Operator: OpGTE, Threshold: 0.5 * *q3},
			},
			Label: "Secondary Target",
		},
	}, "Watch List")
	if err != nil {
		return nil, fmt.Errorf("构造交叉销售优先级决策表失败: %w", err)
	}
	return table, nil
}
