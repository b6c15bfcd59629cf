/*
 * @module service/models/report
 * @description 报表输出行模型定义，六类分析各对应一种行结构，数值保持原始精度由调用方负责展示格式化
 * @architecture DDD领域驱动设计 - 派生实体模型
 * @documentReference dev_docs/model.md
 * @stateFlow 每次报表计算时临时生成，不落库
 * @rules 未定义度量以指针 nil 表示并序列化为 null，不得以 0 冒充
 * @dependencies github.com/google/uuid
 * @refs service/report
 */

package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportEnvelope 报表响应封装，携带本次计算的元信息
type ReportEnvelope struct {
	ReportID    string      `json:"report_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	ReportName  string      `json:"report_name" example:"territory_growth"`
	GeneratedAt time.Time   `json:"generated_at"`
	RowCount    int         `json:"row_count" example:"10"`
	Rows        interface{} `json:"rows"`
}

// NewReportEnvelope 创建报表响应封装
func NewReportEnvelope(name string, rows interface{}, rowCount int) *ReportEnvelope {
	return &ReportEnvelope{
		ReportID:    uuid.NewString(),
		ReportName:  name,
		GeneratedAt: time.Now(),
		RowCount:    rowCount,
		Rows:        rows,
	}
}

// TerritoryGrowthRow 区域增长排名报表行
type TerritoryGrowthRow struct {
	TerritoryID         string   `json:"territory_id"`
	TerritoryName       string   `json:"territory_name"`
	RegionCode          string   `json:"region_code"`
	SalesYTD            float64  `json:"sales_ytd"`
	SalesLastYear       float64  `json:"sales_last_year"`
	SalesGrowth         *float64 `json:"sales_growth"` // 同比增速，上年为 0 时未定义
	CostGrowth          *float64 `json:"cost_growth"`
	Profit              float64  `json:"profit"`
	ProfitMargin        *float64 `json:"profit_margin"`
	GrowthQuartile      int      `json:"growth_quartile"` // 1..4，0 表示未参与分桶
	ProfitQuartile      int      `json:"profit_quartile"`
	GrowthQuartileLabel string   `json:"growth_quartile_label" example:"Top Quartile"`
	Strategy            string   `json:"strategy" example:"Accelerate Investment"`
}

// ProductClassificationRow 产品分级报表行
type ProductClassificationRow struct {
	ProductID       string   `json:"product_id"`
	ProductName     string   `json:"product_name"`
	SubcategoryName string   `json:"subcategory_name"`
	CategoryName    string   `json:"category_name"`
	Revenue         float64  `json:"revenue"` // 累计销售收入
	OrderCount      int      `json:"order_count"`
	MarginRate      *float64 `json:"margin_rate"`    // (标价-成本)/成本，成本为 0 时未定义
	LatestYearRev   float64  `json:"latest_year_revenue"`
	RevenueGrowth   *float64 `json:"revenue_growth"` // 最近年度同比，无上年销量时未定义
	RevenueTertile  int      `json:"revenue_tertile"`
	MarginTertile   int      `json:"margin_tertile"`
	GrowthQuartile  int      `json:"growth_quartile"`
	Classification  string   `json:"classification" example:"Flagship"`
}

// CustomerSegmentRow 客户分群报表行
type CustomerSegmentRow struct {
	CustomerID    string  `json:"customer_id"`
	CustomerType  string  `json:"customer_type" example:"Business"` // Business / Individual
	TerritoryID   string  `json:"territory_id"`
	RecencyDays   int     `json:"recency_days"`
	Frequency     int     `json:"frequency"`
	Monetary      float64 `json:"monetary"`
	RecencyPct    float64 `json:"recency_pct"` // 已反转，最近下单者为 100
	FrequencyPct  float64 `json:"frequency_pct"`
	MonetaryPct   float64 `json:"monetary_pct"`
	Segment       string  `json:"segment" example:"Champion"`
}

// CrossSellOpportunityRow 交叉销售机会报表行，按区域汇总
type CrossSellOpportunityRow struct {
	TerritoryID       string  `json:"territory_id"`
	TerritoryName     string  `json:"territory_name"`
	OpportunityCount  int     `json:"opportunity_count"`  // 未覆盖的 (客户, 高毛利品类) 组合数
	AffectedCustomers int     `json:"affected_customers"` // 至少存在一个机会的客户数
	RevenuePotential  float64 `json:"revenue_potential"`
	Priority          string  `json:"priority" example:"Priority Target"`
}

// TerritoryScorecardRow 区域综合记分卡报表行
type TerritoryScorecardRow struct {
	TerritoryID    string   `json:"territory_id"`
	TerritoryName  string   `json:"territory_name"`
	GrowthPct      *float64 `json:"growth_pct"` // 增速未定义时为 null，合成得分按 0 计
	ProfitPct      float64  `json:"profit_pct"`
	CustomerPct    float64  `json:"customer_pct"`
	RevenuePct     float64  `json:"revenue_pct"`
	EfficiencyPct  *float64 `json:"efficiency_pct"`
	CompositeScore float64  `json:"composite_score"` // [0,100]，保留两位小数
	Rating         string   `json:"rating" example:"Elite"`
}

// BudgetAllocationRow 扩张预算分配报表行
type BudgetAllocationRow struct {
	TerritoryID      string   `json:"territory_id"`
	TerritoryName    string   `json:"territory_name"`
	OpportunityScore int      `json:"opportunity_score"` // [4,16]
	RevenueShare     float64  `json:"revenue_share"`
	Weight           float64  `json:"weight"` // 全体权重之和为 1
	Allocation       float64  `json:"allocation"`
	ROI              *float64 `json:"roi"`              // (销售额-成本)/成本，成本为 0 时未定义
	ProjectedReturn  *float64 `json:"projected_return"` // ROI 未定义时为 null
	Tier             string   `json:"tier" example:"Tier 1 - Aggressive Expansion"`
}
