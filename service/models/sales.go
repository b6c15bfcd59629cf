/*
 * @module service/models/sales
 * @description 销售分析输入关系模型定义，包括销售区域、客户、订单、订单明细、产品及品类
 * @architecture DDD领域驱动设计 - 实体模型
 * @documentReference dev_docs/model.md
 * @stateFlow 输入关系由外部数据仓库维护，本服务只读
 * @rules 输入关系的表结构由外部数据仓库负责，本服务不执行迁移和写入
 * @dependencies gorm.io/gorm
 * @refs dev_docs/requirements.md
 */

package models

import (
	"time"
)

// SalesTerritory 销售区域模型
type SalesTerritory struct {
	ID            string  `json:"id" gorm:"primaryKey;type:varchar(36)" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name          string  `json:"name" gorm:"not null;size:255" example:"华东大区"`
	RegionCode    string  `json:"region_code" gorm:"not null;size:20;index" example:"CN-EAST"`
	SalesYTD      float64 `json:"sales_ytd" gorm:"not null;default:0"`       // 本年度累计销售额
	SalesLastYear float64 `json:"sales_last_year" gorm:"not null;default:0"` // 上年度销售额
	CostYTD       float64 `json:"cost_ytd" gorm:"not null;default:0"`        // 本年度累计成本
	CostLastYear  float64 `json:"cost_last_year" gorm:"not null;default:0"`  // 上年度成本
	// 关联关系
	Customers []Customer `json:"customers,omitempty" gorm:"foreignKey:TerritoryID"`
}

// Customer 客户模型，StoreID 非空表示企业客户，为空表示个人客户
type Customer struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID     *string `json:"store_id,omitempty" gorm:"type:varchar(36);index"`
	TerritoryID string  `json:"territory_id" gorm:"not null;type:varchar(36);index"`
	// 关联关系
	Territory SalesTerritory `json:"territory,omitempty" gorm:"foreignKey:TerritoryID"`
}

// SalesOrderHeader 销售订单头模型
type SalesOrderHeader struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerID  string    `json:"customer_id" gorm:"not null;type:varchar(36);index"`
	TerritoryID string    `json:"territory_id" gorm:"not null;type:varchar(36);index"`
	OrderDate   time.Time `json:"order_date" gorm:"not null;index"`
	TotalDue    float64   `json:"total_due" gorm:"not null;default:0"` // 订单应付总额
	// 关联关系
	Customer Customer           `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Details  []SalesOrderDetail `json:"details,omitempty" gorm:"foreignKey:OrderID"`
}

// SalesOrderDetail 销售订单明细模型
type SalesOrderDetail struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"order_id" gorm:"not null;type:varchar(36);index"`
	ProductID string  `json:"product_id" gorm:"not null;type:varchar(36);index"`
	LineTotal float64 `json:"line_total" gorm:"not null;default:0"` // 明细行金额
	// 关联关系
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// Product 产品模型
type Product struct {
	ID            string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name          string  `json:"name" gorm:"not null;size:255" example:"山地自行车-500"`
	ListPrice     float64 `json:"list_price" gorm:"not null;default:0"`    // 标价
	StandardCost  float64 `json:"standard_cost" gorm:"not null;default:0"` // 标准成本
	SubcategoryID string  `json:"subcategory_id" gorm:"not null;type:varchar(36);index"`
	// 关联关系
	Subcategory ProductSubcategory `json:"subcategory,omitempty" gorm:"foreignKey:SubcategoryID"`
}

// ProductSubcategory 产品子类模型
type ProductSubcategory struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name       string `json:"name" gorm:"not null;size:255"`
	CategoryID string `json:"category_id" gorm:"not null;type:varchar(36);index"`
	// 关联关系
	Category ProductCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// ProductCategory 产品品类模型
type ProductCategory struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name string `json:"name" gorm:"not null;size:255" example:"整车"`
}
