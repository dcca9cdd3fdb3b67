package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"covershop/internal/models"
)

// Collection names used by the mongo repositories.
const (
	coversCollection        = "covers"
	categoriesCollection    = "categories"
	notificationsCollection = "notifications"
)

// withTimeout bounds an outbound store call so a slow or unreachable store
// signals a retryable timeout instead of hanging the request.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d)
}

// storeErr wraps a store error, translating a context deadline into the
// retryable ErrUpstreamTimeout.
func storeErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, models.ErrUpstreamTimeout)
	}
	return fmt.Errorf("%s: %w", op, err)
}
