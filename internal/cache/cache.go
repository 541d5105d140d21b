// Package cache is the terminal-local offline cache: recently sold products
// for the search panel, sales queued while the backend is unreachable, and
// cached PIN credentials so cashiers can still sign in during an outage.
package cache

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"ceybyte/terminal/internal/domain"
)

// RecentProductLimit bounds the recency cache the product search panel reads.
const RecentProductLimit = 20

type QueuedSale struct {
	ID       string
	Request  domain.SaleCreateRequest
	QueuedAt time.Time
}

type PINUser struct {
	Username    string
	DisplayName string
	Role        string
	PINHash     string
	UpdatedAt   time.Time
}

type OfflineCache interface {
	TouchRecentProduct(ctx context.Context, product domain.ProductResponse) error
	RecentProducts(ctx context.Context, limit int) ([]domain.ProductResponse, error)

	QueueSale(ctx context.Context, sale QueuedSale) error
	PendingSales(ctx context.Context) ([]QueuedSale, error)
	DeleteQueuedSale(ctx context.Context, id string) error
	PendingCount(ctx context.Context) (int, error)

	UpsertPINUser(ctx context.Context, user PINUser) error
	GetPINUser(ctx context.Context, username string) (*PINUser, error)

	Close() error
}

func HashPIN(pin string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(pin)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPIN checks a candidate PIN against the cached bcrypt hash.
func (u PINUser) VerifyPIN(pin string) bool {
	pin = strings.TrimSpace(pin)
	if pin == "" || u.PINHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PINHash), []byte(pin)) == nil
}
