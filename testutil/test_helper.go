/*
 * @module testutil/test_helper
 * @description 测试工具和辅助函数，提供内存数据库与销售数据工厂
 * @architecture 测试基础设施 - 提供测试通用工具和数据工厂
 * @documentReference dev_docs/test_plan.md
 * @stateFlow 测试环境初始化 -> 测试数据创建 -> 测试执行 -> 清理资源
 * @rules 提供可重用的测试工具，确保测试环境的一致性
 * @dependencies gorm, sqlite, time
 * @refs service/models
 */

package testutil

import (
	"fmt"
	"time"

	"sales-analytics-service/service/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB 测试数据库配置
type TestDB struct {
	DB *gorm.DB
}

// NewTestDB 创建测试数据库
func NewTestDB() *TestDB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(fmt.Sprintf("failed to connect test database: %v", err))
	}

	// 生产环境的输入关系由外部数据仓库维护，测试中需要自行建表
	err = db.AutoMigrate(
		&models.SalesTerritory{},
		&models.Customer{},
		&models.SalesOrderHeader{},
		&models.SalesOrderDetail{},
		&models.Product{},
		&models.ProductSubcategory{},
		&models.ProductCategory{},
	)
	if err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}

	return &TestDB{DB: db}
}

// CleanDB 清理数据库
func (tdb *TestDB) CleanDB() {
	tables := []string{
		"sales_territories",
		"customers",
		"sales_order_headers",
		"sales_order_details",
		"products",
		"product_subcategories",
		"product_categories",
	}

	for _, table := range tables {
		tdb.DB.Exec(fmt.Sprintf("DELETE FROM %s", table))
	}
}

// Close 关闭数据库连接
func (tdb *TestDB) Close() {
	if db, err := tdb.DB.DB(); err == nil {
		db.Close()
	}
}

// SalesDataFactory 销售测试数据工厂
type SalesDataFactory struct {
	DB *gorm.DB
}

// NewSalesDataFactory 创建销售测试数据工厂
func NewSalesDataFactory(db *gorm.DB) *SalesDataFactory {
	return &SalesDataFactory{DB: db}
}

// CreateTerritory 创建销售区域
func (f *SalesDataFactory) CreateTerritory(id, name string, salesYTD, salesLastYear, costYTD, costLastYear float64) models.SalesTerritory {
	territory := models.SalesTerritory{
		ID:            id,
		Name:          name,
		RegionCode:    "CN-" + id,
		SalesYTD:      salesYTD,
		SalesLastYear: salesLastYear,
		CostYTD:       costYTD,
		CostLastYear:  costLastYear,
	}
	if err := f.DB.Create(&territory).Error; err != nil {
		panic(fmt.Sprintf("failed to create territory: %v", err))
	}
	return territory
}

// CreateCustomer 创建客户，storeID 为空字符串时创建个人客户
func (f *SalesDataFactory) CreateCustomer(id, territoryID, storeID string) models.Customer {
	customer := models.Customer{
		ID:          id,
		TerritoryID: territoryID,
	}
	if storeID != "" {
		customer.StoreID = &storeID
	}
	if err := f.DB.Create(&customer).Error; err != nil {
		panic(fmt.Sprintf("failed to create customer: %v", err))
	}
	return customer
}

// CreateOrder 创建销售订单
func (f *SalesDataFactory) CreateOrder(id, customerID, territoryID string, orderDate time.Time, totalDue float64) models.SalesOrderHeader {
	order := models.SalesOrderHeader{
		ID:          id,
		CustomerID:  customerID,
		TerritoryID: territoryID,
		OrderDate:   orderDate,
		TotalDue:    totalDue,
	}
	if err := f.DB.Create(&order).Error; err != nil {
		panic(fmt.Sprintf("failed to create order: %v", err))
	}
	return order
}

// CreateOrderDetail 创建订单明细
func (f *SalesDataFactory) CreateOrderDetail(id, orderID, productID string, lineTotal float64) models.SalesOrderDetail {
	detail := models.SalesOrderDetail{
		ID:        id,
		OrderID:   orderID,
		ProductID: productID,
		LineTotal: lineTotal,
	}
	if err := f.DB.Create(&detail).Error; err != nil {
		panic(fmt.Sprintf("failed to create order detail: %v", err))
	}
	return detail
}

// CreateCategory 创建产品品类
func (f *SalesDataFactory) CreateCategory(id, name string) models.ProductCategory {
	category := models.ProductCategory{ID: id, Name: name}
	if err := f.DB.Create(&category).Error; err != nil {
		panic(fmt.Sprintf("failed to create category: %v", err))
	}
	return category
}

// CreateSubcategory 创建产品子类
func (f *SalesDataFactory) CreateSubcategory(id, name, categoryID string) models.ProductSubcategory {
	subcategory := models.ProductSubcategory{ID: id, Name: name, CategoryID: categoryID}
	if err := f.DB.Create(&subcategory).Error; err != nil {
		panic(fmt.Sprintf("failed to create subcategory: %v", err))
	}
	return subcategory
}

// CreateProduct 创建产品
func (f *SalesDataFactory) CreateProduct(id, name, subcategoryID string, listPrice, standardCost float64) models.Product {
	product := models.Product{
		ID:            id,
		Name:          name,
		SubcategoryID: subcategoryID,
		ListPrice:     listPrice,
		StandardCost:  standardCost,
	}
	if err := f.DB.Create(&product).Error; err != nil {
		panic(fmt.Sprintf("failed to create product: %v", err))
	}
	return product
}
