package service

import (
	"context"
)

// NotificationService pushes order alerts to the admin's registered devices.
type NotificationService interface {
	// SendBatchNotification fans one alert out to the given device tokens.
	// Returns success count, failure count and the tokens the provider
	// reported as dead, so a caller can prune them.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
