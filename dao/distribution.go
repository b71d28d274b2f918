package dao

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/drophub/DropHubEnd/stores/gdb/distribution"
)

func (d *Dao) CreateFactoryRecord(c context.Context, record *distribution.FactoryRecord) error {
	return d.DB.WithContext(c).Table(distribution.FactoryRecordTableName()).Create(record).Error
}

func (d *Dao) GetFactoryRecordByServerID(c context.Context, serverID string) (*distribution.FactoryRecord, error) {
	var record distribution.FactoryRecord
	err := d.DB.WithContext(c).
		Table(distribution.FactoryRecordTableName()).Where("server_id = ?", serverID).First(&record).Error
	return &record, err
}

func (d *Dao) GetFactoryRecords(c context.Context, page, pageSize int) ([]distribution.FactoryRecord, error) {
	var records []distribution.FactoryRecord
	err := d.DB.WithContext(c).
		Table(distribution.FactoryRecordTableName()).
		Order("id asc").Limit(pageSize).Offset((page - 1) * pageSize).Find(&records).Error
	return records, err
}

func (d *Dao) CreateCampaignRecord(c context.Context, record *distribution.CampaignRecord) error {
	return d.DB.WithContext(c).Table(distribution.CampaignRecordTableName()).Create(record).Error
}

func (d *Dao) GetCampaignRecord(c context.Context, address string) (*distribution.CampaignRecord, error) {
	var record distribution.CampaignRecord
	err := d.DB.WithContext(c).
		Table(distribution.CampaignRecordTableName()).Where("address = ?", address).First(&record).Error
	return &record, err
}

func (d *Dao) GetCampaignRecordsByFactory(c context.Context, factory string) ([]distribution.CampaignRecord, error) {
	var records []distribution.CampaignRecord
	err := d.DB.WithContext(c).
		Table(distribution.CampaignRecordTableName()).Where("factory = ?", factory).
		Order("id asc").Find(&records).Error
	return records, err
}

func (d *Dao) CreateClaimRecord(c context.Context, record *distribution.ClaimRecord) error {
	// 领取在核心里只会成功一次，这里冲突直接忽略，保证记录器可重放
	return d.DB.WithContext(c).Table(distribution.ClaimRecordTableName()).
		Clauses(clause.OnConflict{DoNothing: true}).Create(record).Error
}

func (d *Dao) GetClaimRecordsByCampaign(c context.Context, campaign string) ([]distribution.ClaimRecord, error) {
	var records []distribution.ClaimRecord
	err := d.DB.WithContext(c).
		Table(distribution.ClaimRecordTableName()).Where("campaign = ?", campaign).
		Order("claim_index asc").Find(&records).Error
	return records, err
}

func (d *Dao) CountClaimsByCampaign(c context.Context, campaign string) (int64, error) {
	var count int64
	err := d.DB.WithContext(c).
		Table(distribution.ClaimRecordTableName()).Where("campaign = ?", campaign).Count(&count).Error
	return count, err
}

func (d *Dao) CreateWithdrawalRecord(c context.Context, record *distribution.WithdrawalRecord) error {
	return d.DB.WithContext(c).Table(distribution.WithdrawalRecordTableName()).Create(record).Error
}

func (d *Dao) CreateEligibilityBatch(c context.Context, batch *distribution.EligibilityBatch, leaves []*distribution.EligibilityLeaf) error {
	tx := d.DB.WithContext(c).Begin()
	if err := tx.Table(distribution.EligibilityBatchTableName()).Create(batch).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Table(distribution.EligibilityLeafTableName()).CreateInBatches(leaves, 100).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (d *Dao) GetEligibilityLeaf(c context.Context, root, account string) (*distribution.EligibilityLeaf, error) {
	var leaf distribution.EligibilityLeaf
	err := d.DB.WithContext(c).
		Table(distribution.EligibilityLeafTableName()).Where("root = ? and account = ?", root, account).
		First(&leaf).Error
	return &leaf, err
}

func (d *Dao) GetEligibilityLeavesByRoot(c context.Context, root string) ([]distribution.EligibilityLeaf, error) {
	var leaves []distribution.EligibilityLeaf
	err := d.DB.WithContext(c).
		Table(distribution.EligibilityLeafTableName()).Where("root = ?", root).
		Order("leaf_index asc").Find(&leaves).Error
	return leaves, err
}
