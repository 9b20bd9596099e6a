package workflow

import (
	"context"

	"bitbucket.org/mmdatafocus/botreport_backend/config"
	"bitbucket.org/mmdatafocus/botreport_backend/models"
	"bitbucket.org/mmdatafocus/botreport_backend/recon"
	"bitbucket.org/mmdatafocus/botreport_backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BatchInput is one uploaded source/report pair.
type BatchInput struct {
	SourceFileName string
	SourceBytes    []byte
	ReportFileName string
	ReportBytes    []byte
	UploadedBy     string
}

// BatchOutput is the persisted outcome of one reconciliation run.
type BatchOutput struct {
	BatchIdentifier string                      `json:"batch_identifier"`
	Result          *recon.ReconciliationResult `json:"result"`
}

// ProcessBatchPair reconciles a source/report pair and persists the batch
// history, the clean entries and the classified errors in one transaction.
// A best-effort redis lock keyed on the source file serializes concurrent
// uploads of the same file.
func ProcessBatchPair(ctx context.Context, input *BatchInput) (*BatchOutput, error) {
	logger := config.GetLogger()

	release, err := utils.BatchLock(ctx, input.SourceFileName, "BatchReconcileLock", "workflow", "ProcessBatchPair")
	if err != nil {
		return nil, err
	}
	defer release()

	batchIdentifier := uuid.NewString()

	result, err := recon.Reconcile(input.SourceBytes, input.ReportBytes)
	if err != nil {
		config.LogError(logger, "workflow", "ProcessBatchPair", "Reconciliation failed", input.SourceFileName, err)
		return nil, err
	}

	history := &models.BatchHistory{
		BatchIdentifier: batchIdentifier,
		SourceFileName:  input.SourceFileName,
		ReportFileName:  input.ReportFileName,
		TotalRecords:    result.TotalInputRecords,
		CleanRecords:    result.TotalCleanRecords,
		ErrorRecords:    len(result.Errors),
		CleanXml:        result.CleanDocument,
		UploadedBy:      input.UploadedBy,
	}
	cleanEntries := buildCleanEntries(batchIdentifier, result)
	customerErrors := buildCustomerErrors(batchIdentifier, input, result)

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := models.CreateBatchHistory(ctx, tx, history); err != nil {
			return err
		}
		if err := models.CreateCleanEntries(ctx, tx, cleanEntries); err != nil {
			return err
		}
		return models.CreateCustomerErrors(ctx, tx, customerErrors)
	})
	if err != nil {
		config.LogError(logger, "workflow", "ProcessBatchPair", "Failed to persist batch", batchIdentifier, err)
		return nil, err
	}

	return &BatchOutput{
		BatchIdentifier: batchIdentifier,
		Result:          result,
	}, nil
}

func buildCleanEntries(batchIdentifier string, result *recon.ReconciliationResult) []*models.CleanEntry {
	entries := make([]*models.CleanEntry, 0, len(result.CleanRecords))
	for _, record := range result.CleanRecords {
		entries = append(entries, &models.CleanEntry{
			BatchIdentifier: batchIdentifier,
			Identifier:      record.Identifier,
			CustomerName:    record.Name,
			CustomerCode:    record.Code,
			AccountNumber:   record.AccountNumber,
			Amount:          record.Amount,
		})
	}
	return entries
}

func buildCustomerErrors(batchIdentifier string, input *BatchInput, result *recon.ReconciliationResult) []*models.CustomerError {
	records := make([]*models.CustomerError, 0, len(result.Errors))
	for _, classified := range result.Errors {
		records = append(records, &models.CustomerError{
			BatchIdentifier: batchIdentifier,
			XmlFileName:     input.SourceFileName,
			Identifier:      classified.Identifier,
			CustomerName:    classified.Name,
			CustomerCode:    classified.Code,
			AccountNumber:   classified.AccountNumber,
			NationalId:      classified.NationalId,
			PhoneNumber:     utils.NormalizePhoneNumber(classified.Phone),
			Amount:          classified.Amount,
			ErrorCode:       classified.ErrorCode,
			ErrorMessage:    classified.Message,
			Severity:        severityFor(classified.Severity),
			Status:          models.ErrorStatusPending,
			UploadedBy:      input.UploadedBy,
		})
	}
	return records
}

func severityFor(severity string) models.ErrorSeverity {
	parsed, err := models.ParseErrorSeverity(severity)
	if err != nil {
		return models.ErrorSeverityMedium
	}
	return parsed
}
