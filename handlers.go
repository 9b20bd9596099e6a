package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"bitbucket.org/mmdatafocus/botreport_backend/config"
	"bitbucket.org/mmdatafocus/botreport_backend/models"
	"bitbucket.org/mmdatafocus/botreport_backend/recon"
	"bitbucket.org/mmdatafocus/botreport_backend/rules"
	"bitbucket.org/mmdatafocus/botreport_backend/translate"
	"bitbucket.org/mmdatafocus/botreport_backend/utils"
	"bitbucket.org/mmdatafocus/botreport_backend/workflow"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// maxUploadBytes caps each uploaded XML file. Authority batches rarely
// exceed a few megabytes; 64MB leaves ample headroom.
const maxUploadBytes = 64 << 20

func readUpload(c *gin.Context, field string) (string, []byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil, fmt.Errorf("missing file field %q", field)
	}
	if fileHeader.Size > maxUploadBytes {
		return "", nil, fmt.Errorf("file %q exceeds the upload size limit", fileHeader.Filename)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return "", nil, err
	}
	defer file.Close()
	raw, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return "", nil, err
	}
	if len(raw) > maxUploadBytes {
		return "", nil, fmt.Errorf("file %q exceeds the upload size limit", fileHeader.Filename)
	}
	return fileHeader.Filename, raw, nil
}

// reconcileBatchHandler accepts a multipart pair: the submitted batch under
// "source" and the authority's result report under "report".
func reconcileBatchHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logger := config.GetLogger()

		sourceName, sourceBytes, err := readUpload(c, "source")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		reportName, reportBytes, err := readUpload(c, "report")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		uploadedBy, _ := utils.GetUserNameFromContext(ctx)

		output, err := workflow.ProcessBatchPair(ctx, &workflow.BatchInput{
			SourceFileName: sourceName,
			SourceBytes:    sourceBytes,
			ReportFileName: reportName,
			ReportBytes:    reportBytes,
			UploadedBy:     uploadedBy,
		})
		if err != nil {
			var parseErr *recon.ParseError
			if errors.As(err, &parseErr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": parseErr.Error()})
				return
			}
			config.LogError(logger, "main", "reconcileBatchHandler", "Batch processing failed", sourceName, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "batch processing failed"})
			return
		}

		logger.WithFields(logrus.Fields{
			"batch_identifier": output.BatchIdentifier,
			"total":            output.Result.TotalInputRecords,
			"clean":            output.Result.TotalCleanRecords,
			"errors":           len(output.Result.Errors),
		}).Info("batch reconciled")

		c.JSON(http.StatusOK, output)
	}
}

func listBatchesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		offset, _ := strconv.Atoi(c.Query("offset"))

		histories, err := models.ListBatchHistories(c.Request.Context(), limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list batches"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"batches": histories})
	}
}

// downloadCleanFileHandler streams the stored clean document of a batch as an
// XML attachment.
func downloadCleanFileHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		batchId := c.Param("batchId")

		history, err := models.GetBatchHistory(c.Request.Context(), batchId)
		if err != nil {
			if errors.Is(err, utils.ErrorRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "batch not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load batch"})
			return
		}
		if len(history.CleanXml) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "batch has no clean records"})
			return
		}

		filename := "clean_" + strings.TrimSuffix(history.SourceFileName, ".xml") + ".xml"
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "application/xml", history.CleanXml)
	}
}

func listCleanEntriesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := models.ListCleanEntries(c.Request.Context(), c.Param("batchId"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list clean entries"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": entries})
	}
}

// validateHandler checks a single batch file against the submission schema
// without persisting anything. Used before sending a file to the authority.
func validateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, raw, err := readUpload(c, "source")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		doc, err := recon.Decode(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, rules.ValidateDocument(doc))
	}
}

func listErrorsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		offset, _ := strconv.Atoi(c.Query("offset"))

		filter := &models.CustomerErrorFilter{
			BatchIdentifier: c.Query("batch"),
			Status:          c.Query("status"),
			Severity:        c.Query("severity"),
			Search:          c.Query("search"),
			Limit:           limit,
			Offset:          offset,
		}

		records, total, err := models.ListCustomerErrors(c.Request.Context(), filter)
		if err != nil {
			if strings.Contains(err.Error(), "invalid") {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list errors"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"errors": records, "total": total})
	}
}

func errorSummaryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, err := models.SeverityCounts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load summary"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"pending_by_severity": counts})
	}
}

func getErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid error id"})
			return
		}

		record, err := models.GetCustomerError(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, utils.ErrorRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "error record not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load error record"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"error_record":     record,
			"friendly_message": translate.FriendlyMessage(record.ErrorCode, record.ErrorMessage, nil),
		})
	}
}

func updateErrorStatusHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid error id"})
			return
		}

		var input models.UpdateErrorStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			var validationErrors validator.ValidationErrors
			if errors.As(err, &validationErrors) {
				c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		record, err := models.UpdateCustomerErrorStatus(c.Request.Context(), id, &input)
		if err != nil {
			if errors.Is(err, utils.ErrorRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "error record not found"})
				return
			}
			if strings.Contains(err.Error(), "invalid") {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update error status"})
			return
		}
		c.JSON(http.StatusOK, record)
	}
}
