/*
 * @module api/controllers/health_controller
 * @description 健康检查控制器，提供存活与就绪探针
 * @architecture MVC架构 - 控制器层
 * @documentReference dev_docs/backend_requirements.md
 * @stateFlow HTTP请求处理流程
 * @rules 就绪探针需要验证数据库连通性，存活探针不依赖外部资源
 * @dependencies github.com/go-chi/render
 * @refs api/routes.go
 */

package controllers

import (
	"net/http"

	"sales-analytics-service/service"

	"github.com/go-chi/render"
)

// HealthController 健康检查控制器
type HealthController struct{}

// NewHealthController 创建健康检查控制器实例
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health 存活探针
// @Summary 存活检查
// @Description 返回服务存活状态
// @Tags 健康检查
// @Produce json
// @Success 200 {object} APIResponse
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, SuccessResponse("服务正常", nil))
}

// Ready 就绪探针，验证数据库连通性
// @Summary 就绪检查
// @Description 验证数据库连接后返回就绪状态
// @Tags 健康检查
// @Produce json
// @Success 200 {object} APIResponse
// @Failure 500 {object} APIResponse
// @Router /ready [get]
func (c *HealthController) Ready(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := service.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, InternalErrorResponse("数据库连接不可用: "+err.Error(), nil))
		return
	}
	render.JSON(w, r, SuccessResponse("服务就绪", nil))
}
