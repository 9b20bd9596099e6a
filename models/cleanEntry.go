package models

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/botreport_backend/config"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CleanEntry is one accepted record of a reconciled batch.
type CleanEntry struct {
	ID              int             `gorm:"primary_key" json:"id"`
	BatchIdentifier string          `gorm:"size:64;index;not null" json:"batch_identifier"`
	Identifier      string          `gorm:"size:100;index;not null" json:"identifier"`
	CustomerName    string          `gorm:"size:255" json:"customer_name"`
	CustomerCode    string          `gorm:"size:100" json:"customer_code"`
	AccountNumber   string          `gorm:"size:100" json:"account_number"`
	Amount          decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func CreateCleanEntries(ctx context.Context, tx *gorm.DB, entries []*CleanEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&entries).Error
}

func ListCleanEntries(ctx context.Context, batchIdentifier string) ([]*CleanEntry, error) {
	db := config.GetDB()
	var entries []*CleanEntry
	if err := db.WithContext(ctx).
		Where("batch_identifier = ?", batchIdentifier).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
