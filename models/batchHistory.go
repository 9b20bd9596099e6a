package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/mmdatafocus/botreport_backend/config"
	"bitbucket.org/mmdatafocus/botreport_backend/utils"
	"gorm.io/gorm"
)

// BatchHistory is one reconciliation run: the uploaded pair, the counts and
// the serialized clean document kept for later download.
type BatchHistory struct {
	ID              int       `gorm:"primary_key" json:"id"`
	BatchIdentifier string    `gorm:"size:64;uniqueIndex;not null" json:"batch_identifier"`
	SourceFileName  string    `gorm:"size:255;not null" json:"source_file_name"`
	ReportFileName  string    `gorm:"size:255;not null" json:"report_file_name"`
	TotalRecords    int       `gorm:"not null" json:"total_records"`
	CleanRecords    int       `gorm:"not null" json:"clean_records"`
	ErrorRecords    int       `gorm:"not null" json:"error_records"`
	CleanXml        []byte    `gorm:"type:mediumblob" json:"-"`
	UploadedBy      string    `gorm:"size:100" json:"uploaded_by"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func CreateBatchHistory(ctx context.Context, tx *gorm.DB, history *BatchHistory) error {
	return tx.WithContext(ctx).Create(history).Error
}

func GetBatchHistory(ctx context.Context, batchIdentifier string) (*BatchHistory, error) {
	db := config.GetDB()
	var history BatchHistory
	if err := db.WithContext(ctx).
		Where("batch_identifier = ?", batchIdentifier).
		First(&history).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}
	return &history, nil
}

func ListBatchHistories(ctx context.Context, limit int, offset int) ([]*BatchHistory, error) {
	if limit <= 0 || limit > 100 {
		limit = config.SearchLimit
	}
	if offset < 0 {
		offset = 0
	}
	db := config.GetDB()
	var histories []*BatchHistory
	if err := db.WithContext(ctx).
		Select("id, batch_identifier, source_file_name, report_file_name, total_records, clean_records, error_records, uploaded_by, created_at").
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&histories).Error; err != nil {
		return nil, err
	}
	return histories, nil
}
