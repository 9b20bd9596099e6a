package models

import (
	"context"
	"errors"
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/botreport_backend/config"
	"bitbucket.org/mmdatafocus/botreport_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const severityCountCacheKey = "customerErrorSeverityCounts"

type CustomerError struct {
	ID              int             `gorm:"primary_key" json:"id"`
	BatchIdentifier string          `gorm:"size:64;index;not null" json:"batch_identifier"`
	XmlFileName     string          `gorm:"size:255" json:"xml_file_name"`
	Identifier      string          `gorm:"size:100;index;not null" json:"identifier"`
	CustomerName    string          `gorm:"size:255" json:"customer_name"`
	CustomerCode    string          `gorm:"size:100" json:"customer_code"`
	AccountNumber   string          `gorm:"size:100" json:"account_number"`
	NationalId      string          `gorm:"size:100" json:"national_id"`
	PhoneNumber     string          `gorm:"size:50" json:"phone_number"`
	Amount          decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	ErrorCode       string          `gorm:"size:100;index;not null" json:"error_code"`
	ErrorMessage    string          `gorm:"type:text" json:"error_message"`
	Severity        ErrorSeverity   `gorm:"type:enum('critical','high','medium','low');index;not null;default:'medium'" json:"severity"`
	Status          ErrorStatus     `gorm:"type:enum('pending','in_progress','resolved','ignored');index;not null;default:'pending'" json:"status"`
	Notes           string          `gorm:"type:text" json:"notes"`
	UploadedBy      string          `gorm:"size:100" json:"uploaded_by"`
	ResolvedBy      string          `gorm:"size:100" json:"resolved_by"`
	ResolvedAt      *time.Time      `json:"resolved_at"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type CustomerErrorFilter struct {
	BatchIdentifier string
	Status          string
	Severity        string
	Search          string
	Limit           int
	Offset          int
}

// CreateCustomerErrors inserts the classified errors of one batch inside the
// caller's transaction and invalidates the severity-count cache.
func CreateCustomerErrors(ctx context.Context, tx *gorm.DB, records []*CustomerError) error {
	if len(records) == 0 {
		return nil
	}
	if err := tx.WithContext(ctx).Create(&records).Error; err != nil {
		return err
	}
	_ = config.RemoveRedisKey(severityCountCacheKey)
	return nil
}

func ListCustomerErrors(ctx context.Context, filter *CustomerErrorFilter) ([]*CustomerError, int64, error) {
	db := config.GetDB()

	dbCtx := db.WithContext(ctx).Model(&CustomerError{})
	if filter.BatchIdentifier != "" {
		dbCtx = dbCtx.Where("batch_identifier = ?", filter.BatchIdentifier)
	}
	if filter.Status != "" {
		status, err := ParseErrorStatus(filter.Status)
		if err != nil {
			return nil, 0, err
		}
		dbCtx = dbCtx.Where("status = ?", status)
	}
	if filter.Severity != "" {
		severity, err := ParseErrorSeverity(filter.Severity)
		if err != nil {
			return nil, 0, err
		}
		dbCtx = dbCtx.Where("severity = ?", severity)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		dbCtx = dbCtx.Where(
			"identifier LIKE ? OR customer_name LIKE ? OR customer_code LIKE ? OR account_number LIKE ? OR error_code LIKE ?",
			like, like, like, like, like,
		)
	}

	var total int64
	if err := dbCtx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = config.SearchLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	var results []*CustomerError
	if err := dbCtx.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func GetCustomerError(ctx context.Context, id int) (*CustomerError, error) {
	db := config.GetDB()
	var record CustomerError
	if err := db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

type UpdateErrorStatusInput struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

func UpdateCustomerErrorStatus(ctx context.Context, id int, input *UpdateErrorStatusInput) (*CustomerError, error) {
	status, err := ParseErrorStatus(input.Status)
	if err != nil {
		return nil, err
	}

	record, err := GetCustomerError(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"Status": status,
	}
	if input.Notes != "" {
		updates["Notes"] = input.Notes
	}
	if status == ErrorStatusResolved || status == ErrorStatusIgnored {
		now := time.Now().UTC()
		updates["ResolvedAt"] = &now
		if userName, ok := utils.GetUserNameFromContext(ctx); ok && userName != "" {
			updates["ResolvedBy"] = userName
		}
	} else {
		updates["ResolvedAt"] = nil
		updates["ResolvedBy"] = ""
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(record).Updates(updates).Error; err != nil {
		return nil, err
	}
	_ = config.RemoveRedisKey(severityCountCacheKey)

	return record, nil
}

// SeverityCounts returns pending-error counts grouped by severity, cached in
// redis for a short window since the triage dashboard polls it.
func SeverityCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	exists, err := config.GetRedisObject(severityCountCacheKey, &counts)
	if err == nil && exists {
		return counts, nil
	}

	type row struct {
		Severity string
		Total    int64
	}
	var rows []row
	db := config.GetDB()
	if err := db.WithContext(ctx).Model(&CustomerError{}).
		Select("severity, COUNT(*) AS total").
		Where("status = ?", ErrorStatusPending).
		Group("severity").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.Severity] = r.Total
	}
	if err := config.SetRedisObject(severityCountCacheKey, counts, 30*time.Second); err != nil {
		logger := config.GetLogger()
		config.LogError(logger, "models", "SeverityCounts", "Failed to cache severity counts", nil, err)
	}
	return counts, nil
}
