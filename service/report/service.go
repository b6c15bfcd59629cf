/*
 * @module service/report/service
 * @description 报表服务门面：加载一致性快照、执行六类分析、记录计算指标并封装响应
 * @architecture 分层架构 - 服务层
 * @documentReference dev_docs/requirements.md
 * @stateFlow 接收请求 -> 加载快照 -> 执行报表计算 -> 记录指标 -> 返回封装结果
 * @rules 每次报表计算都基于新加载的快照，六类报表相互独立、不共享任何可变状态
 * @dependencies gorm.io/gorm, github.com/prometheus/client_golang
 * @refs api/controllers/report_controller.go
 */

package report

import (
	"fmt"
	"log/slog"
	"time"

	"sales-analytics-service/service/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

// 报表名称，同时作为指标标签和响应中的 report_name
const (
	ReportTerritoryGrowth       = "territory_growth"
	ReportProductClassification = "product_classification"
	ReportCustomerSegments      = "customer_segments"
	ReportCrossSell             = "cross_sell"
	ReportTerritoryScorecard    = "territory_scorecard"
	ReportBudgetAllocation      = "budget_allocation"
)

var (
	reportComputeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "report_compute_total",
		Help: "报表计算次数",
	}, []string{"report", "status"})

	reportComputeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "report_compute_duration_seconds",
		Help:    "报表计算耗时（秒），含快照加载",
		Buckets: prometheus.DefBuckets,
	}, []string{"report"})
)

// Service 报表服务
type Service struct {
	db *gorm.DB
}

// NewService 创建报表服务实例
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// TerritoryGrowthReport 区域增长排名报表，top > 0 时只返回前 top 行
func (s *Service) TerritoryGrowthReport(top int) (*models.ReportEnvelope, error) {
	return compute(s, ReportTerritoryGrowth, top, func(snap *Snapshot) ([]models.TerritoryGrowthRow, error) {
		return TerritoryGrowth(snap), nil
	})
}

// ProductClassificationReport 产品分级报表
func (s *Service) ProductClassificationReport(top int) (*models.ReportEnvelope, error) {
	return compute(s, ReportProductClassification, top, func(snap *Snapshot) ([]models.ProductClassificationRow, error) {
		return ProductClassification(snap), nil
	})
}

// CustomerSegmentsReport 客户分群报表
func (s *Service) CustomerSegmentsReport(top int) (*models.ReportEnvelope, error) {
	return compute(s, ReportCustomerSegments, top, func(snap *Snapshot) ([]models.CustomerSegmentRow, error) {
		return CustomerSegmentation(snap), nil
	})
}

// CrossSellReport 交叉销售机会报表
func (s *Service) CrossSellReport(top int) (*models.ReportEnvelope, error) {
	return compute(s, ReportCrossSell, top, CrossSellOpportunities)
}

// TerritoryScorecardReport 区域综合记分卡报表
func (s *Service) TerritoryScorecardReport(top int) (*models.ReportEnvelope, error) {
	return compute(s, ReportTerritoryScorecard, top, TerritoryScorecard)
}

// BudgetAllocationReport 扩张预算分配报表
func (s *Service) BudgetAllocationReport(top int) (*models.ReportEnvelope, error) {
	return compute(s, ReportBudgetAllocation, top, func(snap *Snapshot) ([]models.BudgetAllocationRow, error) {
		return BudgetAllocation(snap), nil
	})
}

// compute 通用计算流程：加载快照、执行分析、截断行数、记录指标
func compute[T any](s *Service, name string, top int, fn func(*Snapshot) ([]T, error)) (*models.ReportEnvelope, error) {
	start := time.Now()

	snap, err := LoadSnapshot(s.db)
	if err != nil {
		reportComputeTotal.WithLabelValues(name, "error").Inc()
		return nil, fmt.Errorf("加载输入关系快照失败: %w", err)
	}

	rows, err := fn(snap)
	if err != nil {
		reportComputeTotal.WithLabelValues(name, "error").Inc()
		return nil, fmt.Errorf("报表 %s 计算失败: %w", name, err)
	}

	total := len(rows)
	if top > 0 && top < total {
		rows = rows[:top]
	}

	elapsed := time.Since(start)
	reportComputeTotal.WithLabelValues(name, "success").Inc()
	reportComputeDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	slog.Info("报表计算完成", "report", name, "rows", total, "returned", len(rows), "elapsed", elapsed.String())

	return models.NewReportEnvelope(name, rows, len(rows)), nil
}
