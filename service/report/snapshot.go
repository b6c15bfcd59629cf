/*
 * @module service/report/snapshot
 * @description 输入关系的一致性只读快照，六类报表都基于同一次事务内读取的内存快照计算
 * @architecture 分层架构 - 报表核心层
 * @documentReference dev_docs/model.md
 * @stateFlow 开启只读事务 -> 逐表加载 -> 提交 -> 报表计算
 * @rules 全部输入关系必须在同一事务内读取以避免跨表读偏；按主键排序保证平局裁决的迭代顺序稳定
 * @dependencies gorm.io/gorm, sales-analytics-service/service/models
 * @refs service/report/service.go
 */

package report

import (
	"fmt"

	"sales-analytics-service/service/models"

	"gorm.io/gorm"
)

// Snapshot 输入关系的内存快照，加载完成后视为不可变
type Snapshot struct {
	Territories   []models.SalesTerritory
	Customers     []models.Customer
	Orders        []models.SalesOrderHeader
	OrderDetails  []models.SalesOrderDetail
	Products      []models.Product
	Subcategories []models.ProductSubcategory
	Categories    []models.ProductCategory
}

// LoadSnapshot 在单个事务中加载全部输入关系
func LoadSnapshot(db *gorm.DB) (*Snapshot, error) {
	snap := &Snapshot{}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("id").Find(&snap.Territories).Error; err != nil {
			return fmt.Errorf("加载销售区域失败: %w", err)
		}
		if err := tx.Order("id").Find(&snap.Customers).Error; err != nil {
			return fmt.Errorf("加载客户失败: %w", err)
		}
		if err := tx.Order("id").Find(&snap.Orders).Error; err != nil {
			return fmt.Errorf("加载销售订单失败: %w", err)
		}
		if err := tx.Order("id").Find(&snap.OrderDetails).Error; err != nil {
			return fmt.Errorf("加载订单明细失败: %w", err)
		}
		if err := tx.Order("id").Find(&snap.Products).Error; err != nil {
			return fmt.Errorf("加载产品失败: %w", err)
		}
		if err := tx.Order("id").Find(&snap.Subcategories).Error; err != nil {
			return fmt.Errorf("加载产品子类失败: %w", err)
		}
		if err := tx.Order("id").Find(&snap.Categories).Error; err != nil {
			return fmt.Errorf("加载产品品类失败: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}
