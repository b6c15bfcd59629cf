/*
 * @module api/controllers/report_controller
 * @description 报表控制器，对外提供六类销售分析报表的只读查询接口
 * @architecture MVC架构 - 控制器层
 * @documentReference dev_docs/requirements.md
 * @stateFlow HTTP请求处理流程
 * @rules 报表返回原始数值，货币与百分比的展示格式化由调用方负责
 * @dependencies sales-analytics-service/service/report, github.com/go-chi/render, github.com/spf13/cast
 * @refs api/routes.go
 */

package controllers

import (
	"net/http"

	"sales-analytics-service/service"
	"sales-analytics-service/service/models"
	"sales-analytics-service/service/report"

	"github.com/go-chi/render"
	"github.com/spf13/cast"
)

// ReportController 报表控制器
type ReportController struct {
	reportService *report.Service
}

// NewReportController 创建报表控制器实例
func NewReportController() *ReportController {
	return &ReportController{
		reportService: service.GlobalReportService,
	}
}

// GetTerritoryGrowth 区域增长排名报表
// @Summary 区域增长排名
// @Description 按同比增速与利润四分位分桶并给出投资策略
// @Tags 销售分析报表
// @Produce json
// @Param top query int false "仅返回前 N 行，0 表示全部" default(0)
// @Success 200 {object} APIResponse{data=models.ReportEnvelope}
// @Failure 500 {object} APIResponse
// @Router /reports/territory-growth [get]
func (c *ReportController) GetTerritoryGrowth(w http.ResponseWriter, r *http.Request) {
	envelope, err := c.reportService.TerritoryGrowthReport(topParam(r))
	c.respond(w, r, envelope, err)
}

// GetProductClassification 产品分级报表
// @Summary 产品分级
// @Description 按累计收入与毛利率三分位分桶并分级
// @Tags 销售分析报表
// @Produce json
// @Param top query int false "仅返回前 N 行，0 表示全部" default(0)
// @Success 200 {object} APIResponse{data=models.ReportEnvelope}
// @Failure 500 {object} APIResponse
// @Router /reports/product-classification [get]
func (c *ReportController) GetProductClassification(w http.ResponseWriter, r *http.Request) {
	envelope, err := c.reportService.ProductClassificationReport(topParam(r))
	c.respond(w, r, envelope, err)
}

// GetCustomerSegments 客户分群报表
// @Summary 客户分群
// @Description 基于 RFM 三维度百分位的客户分群
// @Tags 销售分析报表
// @Produce json
// @Param top query int false "仅返回前 N 行，0 表示全部" default(0)
// @Success 200 {object} APIResponse{data=models.ReportEnvelope}
// @Failure 500 {object} APIResponse
// @Router /reports/customer-segments [get]
func (c *ReportController) GetCustomerSegments(w http.ResponseWriter, r *http.Request) {
	envelope, err := c.reportService.CustomerSegmentsReport(topParam(r))
	c.respond(w, r, envelope, err)
}

// GetCrossSell 交叉销售机会报表
// @Summary 交叉销售机会
// @Description 高毛利品类未覆盖客户的机会数与收入潜力，按区域汇总
// @Tags 销售分析报表
// @Produce json
// @Param top query int false "仅返回前 N 行，0 表示全部" default(0)
// @Success 200 {object} APIResponse{data=models.ReportEnvelope}
// @Failure 500 {object} APIResponse
// @Router /reports/cross-sell [get]
func (c *ReportController) GetCrossSell(w http.ResponseWriter, r *http.Request) {
	envelope, err := c.reportService.CrossSellReport(topParam(r))
	c.respond(w, r, envelope, err)
}

// GetTerritoryScorecard 区域综合记分卡报表
// @Summary 区域综合记分卡
// @Description 五维度百分位按固定权重合成 [0,100] 得分并评级
// @Tags 销售分析报表
// @Produce json
// @Param top query int false "仅返回前 N 行，0 表示全部" default(0)
// @Success 200 {object} APIResponse{data=models.ReportEnvelope}
// @Failure 500 {object} APIResponse
// @Router /reports/territory-scorecard [get]
func (c *ReportController) GetTerritoryScorecard(w http.ResponseWriter, r *http.Request) {
	envelope, err := c.reportService.TerritoryScorecardReport(topParam(r))
	c.respond(w, r, envelope, err)
}

// GetBudgetAllocation 扩张预算分配报表
// @Summary 扩张预算分配
// @Description 机会分与收入份额加权分配扩张预算并分梯队
// @Tags 销售分析报表
// @Produce json
// @Param top query int false "仅返回前 N 行，0 表示全部" default(0)
// @Success 200 {object} APIResponse{data=models.ReportEnvelope}
// @Failure 500 {object} APIResponse
// @Router /reports/budget-allocation [get]
func (c *ReportController) GetBudgetAllocation(w http.ResponseWriter, r *http.Request) {
	envelope, err := c.reportService.BudgetAllocationReport(topParam(r))
	c.respond(w, r, envelope, err)
}

// respond 统一的报表响应处理
func (c *ReportController) respond(w http.ResponseWriter, r *http.Request, envelope *models.ReportEnvelope, err error) {
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, InternalErrorResponse("报表计算失败: "+err.Error(), nil))
		return
	}
	render.JSON(w, r, SuccessResponse("查询成功", envelope))
}

// topParam 解析 top 查询参数，非法值按 0（不截断）处理
func topParam(r *http.Request) int {
	return cast.ToInt(r.URL.Query().Get("top"))
}
