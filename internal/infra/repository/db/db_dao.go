package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
)

func GetDbConn(dbName, dbHost, dbPort, dbUser, dbPas string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPas, dbName, dbPort)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

type DbDao struct {
	*gorm.DB
}

func NewDbDao(conn *gorm.DB) *DbDao {
	return &DbDao{
		DB: conn,
	}
}

// 初始化db schema
// 冪等性, 同時會建立reviews的(creator_id, product_id)唯一索引
func (d *DbDao) InitMigrate() error {
	return d.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Review{},
		&model.Order{},
		&model.OrderPosition{},
		&model.Collection{},
	)
}
