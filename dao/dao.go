package dao

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/drophub/DropHubEnd/config"
	"github.com/drophub/DropHubEnd/stores/gdb/distribution"
)

type Dao struct {
	ctx context.Context
	DB  *gorm.DB
}

func New(ctx context.Context, cfg config.DbConfig) (*Dao, error) {
	db, err := gorm.Open(mysql.Open(cfg.Dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "open mysql")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql db")
	}
	if cfg.MaxIdleConn > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConn)
	}
	if cfg.MaxOpenConn > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConn)
	}

	if err := migrate(db); err != nil {
		return nil, err
	}
	return &Dao{ctx: ctx, DB: db}, nil
}

// NewWithDB 直接挂到现成的gorm连接上，测试和工具脚本用
func NewWithDB(db *gorm.DB) (*Dao, error) {
	if err := migrate(db); err != nil {
		return nil, err
	}
	return &Dao{ctx: context.Background(), DB: db}, nil
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&distribution.FactoryRecord{},
		&distribution.CampaignRecord{},
		&distribution.ClaimRecord{},
		&distribution.WithdrawalRecord{},
		&distribution.EligibilityBatch{},
		&distribution.EligibilityLeaf{},
	)
	return errors.Wrap(err, "auto migrate")
}
