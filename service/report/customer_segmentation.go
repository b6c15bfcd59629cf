/*
 * @module service/report/customer_segmentation
 * @description 客户分群报表：基于最近购买、购买频次、消费金额三个维度的百分位做 RFM 分群
 * @architecture 分层架构 - 报表核心层
 * @documentReference dev_docs/requirements.md
 * @stateFlow 订单按客户聚合 -> 三维度百分位 -> 分群决策表
 * @rules 只统计有订单的客户（内连接语义）；最近购买百分位做反转，越近期数值越高
 * @dependencies sales-analytics-service/service/models
 * @refs service/report/stats.go, service/report/decision.go
 */

package report

import (
	"time"

	"sales-analytics-service/service/models"
)

// customerSegmentTable 客户分群决策表，维度取值为 [0,100] 的百分位
var customerSegmentTable = mustDecisionTable([]DecisionRule{
	{
		Conditions: []Condition{
			{Dimension: "recency", Operator: OpGTE, Threshold: 75},
			{Dimension: "frequency", Operator: OpGTE, Threshold: 75},
			{Dimension: "monetary", Operator: OpGTE, Threshold: 75},
		},
		Label: "Champion",
	},
	{
		Conditions: []Condition{
			{Dimension: "frequency", Operator: OpGTE, Threshold: 50},
			{Dimension: "monetary", Operator: OpGTE, Threshold: 50},
		},
		Label: "Loyal",
	},
	{
		Conditions: []Condition{
			{Dimension: "recency", Operator: OpGTE, Threshold: 50},
		},
		Label: "Promising",
	},
	{
		Conditions: []Condition{
			{Dimension: "recency", Operator: OpLT, Threshold: 25},
			{Dimension: "monetary", Operator: OpGTE, Threshold: 50},
		},
		Label: "At Risk",
	},
	{
		Conditions: []Condition{
			{Dimension: "recency", Operator: OpLT, Threshold: 25},
		},
		Label: "Hibernating",
	},
}, "Needs Attention")

// customerFacts 单个客户的聚合事实
type customerFacts struct {
	lastOrder time.Time
	frequency int
	monetary  float64
}

// CustomerSegmentation 计算客户分群报表
func CustomerSegmentation(snap *Snapshot) []models.CustomerSegmentRow {
	facts := make(map[string]*customerFacts)
	var refDate time.Time
	for _, o := range snap.Orders {
		f, ok := facts[o.CustomerID]
		if !ok {
			f = &customerFacts{}
			facts[o.CustomerID] = f
		}
		f.frequency++
		f.monetary += o.TotalDue
		if o.OrderDate.After(f.lastOrder) {
			f.lastOrder = o.OrderDate
		}
		if o.OrderDate.After(refDate) {
			refDate = o.OrderDate
		}
	}

	rows := make([]models.CustomerSegmentRow, 0, len(facts))
	recencyVals := make([]*float64, 0, len(facts))
	frequencyVals := make([]*float64, 0, len(facts))
	monetaryVals := make([]*float64, 0, len(facts))

	for _, c := range snap.Customers {
		f, ok := facts[c.ID]
		if !ok {
			continue
		}

		customerType := "Individual"
		if c.StoreID != nil {
			customerType = "Business"
		}
		recencyDays := int(refDate.Sub(f.lastOrder).Hours() / 24)

		rows = append(rows, models.CustomerSegmentRow{
			CustomerID:   c.ID,
			CustomerType: customerType,
			TerritoryID:  c.TerritoryID,
			RecencyDays:  recencyDays,
			Frequency:    f.frequency,
			Monetary:     f.monetary,
		})
		recencyVals = append(recencyVals, Float(float64(recencyDays)))
		frequencyVals = append(frequencyVals, Float(float64(f.frequency)))
		monetaryVals = append(monetaryVals, Float(f.monetary))
	}

	recencyPct := PercentileRanks(recencyVals)
	frequencyPct := PercentileRanks(frequencyVals)
	monetaryPct := PercentileRanks(monetaryVals)

	for i := range rows {
		// 最近购买天数越小越好，反转后最近下单者为 100
		rows[i].RecencyPct = Round2((1 - *recencyPct[i]) * 100)
		rows[i].FrequencyPct = Round2(*frequencyPct[i] * 100)
		rows[i].MonetaryPct = Round2(*monetaryPct[i] * 100)
		rows[i].Segment = customerSegmentTable.Evaluate(map[string]*float64{
			"recency":   Float(rows[i].RecencyPct),
			"frequency": Float(rows[i].FrequencyPct),
			"monetary":  Float(rows[i].MonetaryPct),
		})
	}
	return rows
}
