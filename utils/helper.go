package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bitbucket.org/mmdatafocus/botreport_backend/config"
	"github.com/bsm/redislock"
	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"
)

var CountryCode = "TZ"

// NormalizePhoneNumber renders a submitted phone number in E.164 form so the
// triage views show one format regardless of how the file spelled it. Numbers
// that don't parse are stored as-is.
func NormalizePhoneNumber(phoneNumber string) string {
	if phoneNumber == "" {
		return ""
	}
	p, err := libphonenumber.Parse(phoneNumber, CountryCode)
	if err != nil || !libphonenumber.IsValidNumber(p) {
		return phoneNumber
	}
	return libphonenumber.Format(p, libphonenumber.E164)
}

func ProcessValidationErrors(err error) map[string]string {

	validationErrors := err.(validator.ValidationErrors)

	errorResponse := make(map[string]string)

	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = ve.Tag()
	}

	return errorResponse
}

// BatchLock obtains a short-lived redis lock for a batch-scoped operation and
// releases it when the returned func is called. The lock is best effort: when
// Redis isn't initialized the caller proceeds unguarded.
func BatchLock(ctx context.Context, batchKey string, lockType string, moduleName string, functionName string) (func(), error) {
	logger := config.GetLogger()
	locker := config.GetRedisLock()
	if locker == nil {
		// Avoid nil-pointer panics when Redis lock isn't initialized yet.
		return func() {}, nil
	}
	lockKey := fmt.Sprintf("%s:%s", lockType, batchKey)
	lock, err := locker.Obtain(ctx, lockKey, 30*time.Second, nil)
	if err == redislock.ErrNotObtained {
		config.LogError(logger, moduleName, functionName, "Could not obtain lock for batch", batchKey, err)
		return nil, errors.New("could not obtain lock for batch")
	} else if err != nil {
		config.LogError(logger, moduleName, functionName, "Error obtaining lock for batch", batchKey, err)
		return nil, err
	}
	return func() { _ = lock.Release(ctx) }, nil
}
