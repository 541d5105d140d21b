package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"ceybyte/terminal/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS recent_products (
	product_id INTEGER PRIMARY KEY,
	payload    TEXT    NOT NULL,
	used_at    INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS pending_sales (
	id        TEXT PRIMARY KEY,
	payload   TEXT    NOT NULL,
	queued_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS pin_users (
	username     TEXT PRIMARY KEY,
	display_name TEXT NOT NULL DEFAULT '',
	role         TEXT NOT NULL DEFAULT '',
	pin_hash     TEXT NOT NULL,
	updated_at   INTEGER NOT NULL
);
`

type SQLiteCache struct {
	db *sqlx.DB
}

// OpenSQLite opens (or creates) the local cache database. WAL keeps the cache
// readable while a sale is being queued mid-checkout.
func OpenSQLite(path string) (*SQLiteCache, error) {
	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteCache{db: db}, nil
}

func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

func (c *SQLiteCache) TouchRecentProduct(ctx context.Context, product domain.ProductResponse) error {
	payload, err := json.Marshal(product)
	if err != nil {
		return err
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO recent_products (product_id, payload, used_at) VALUES (?, ?, ?)
		 ON CONFLICT(product_id) DO UPDATE SET payload = excluded.payload, used_at = excluded.used_at`,
		product.ID, string(payload), time.Now().UnixNano())
	if err != nil {
		return err
	}
	_, err = c.db.ExecContext(ctx,
		`DELETE FROM recent_products WHERE product_id NOT IN (
			SELECT product_id FROM recent_products ORDER BY used_at DESC LIMIT ?)`,
		RecentProductLimit)
	return err
}

func (c *SQLiteCache) RecentProducts(ctx context.Context, limit int) ([]domain.ProductResponse, error) {
	if limit <= 0 || limit > RecentProductLimit {
		limit = RecentProductLimit
	}
	var payloads []string
	err := c.db.SelectContext(ctx, &payloads,
		`SELECT payload FROM recent_products ORDER BY used_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	products := make([]domain.ProductResponse, 0, len(payloads))
	for _, raw := range payloads {
		var product domain.ProductResponse
		if err := json.Unmarshal([]byte(raw), &product); err != nil {
			continue
		}
		products = append(products, product)
	}
	return products, nil
}

func (c *SQLiteCache) QueueSale(ctx context.Context, sale QueuedSale) error {
	if strings.TrimSpace(sale.ID) == "" {
		return errors.New("queued sale id required")
	}
	payload, err := json.Marshal(sale.Request)
	if err != nil {
		return err
	}
	queuedAt := sale.QueuedAt
	if queuedAt.IsZero() {
		queuedAt = time.Now().UTC()
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO pending_sales (id, payload, queued_at) VALUES (?, ?, ?)`,
		sale.ID, string(payload), queuedAt.UnixNano())
	return err
}

func (c *SQLiteCache) PendingSales(ctx context.Context) ([]QueuedSale, error) {
	rows, err := c.db.QueryxContext(ctx,
		`SELECT id, payload, queued_at FROM pending_sales ORDER BY queued_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []QueuedSale
	for rows.Next() {
		var (
			id       string
			payload  string
			queuedAt int64
		)
		if err := rows.Scan(&id, &payload, &queuedAt); err != nil {
			return nil, err
		}
		var req domain.SaleCreateRequest
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			continue
		}
		sales = append(sales, QueuedSale{
			ID:       id,
			Request:  req,
			QueuedAt: time.Unix(0, queuedAt).UTC(),
		})
	}
	return sales, rows.Err()
}

func (c *SQLiteCache) DeleteQueuedSale(ctx context.Context, id string) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM pending_sales WHERE id = ?`, id)
	return err
}

func (c *SQLiteCache) PendingCount(ctx context.Context) (int, error) {
	var count int
	err := c.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM pending_sales`)
	return count, err
}

func (c *SQLiteCache) UpsertPINUser(ctx context.Context, user PINUser) error {
	username := strings.ToLower(strings.TrimSpace(user.Username))
	if username == "" {
		return errors.New("username required")
	}
	updatedAt := user.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO pin_users (username, display_name, role, pin_hash, updated_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(username) DO UPDATE SET
			display_name = excluded.display_name,
			role = excluded.role,
			pin_hash = excluded.pin_hash,
			updated_at = excluded.updated_at`,
		username, user.DisplayName, user.Role, user.PINHash, updatedAt.UnixNano())
	return err
}

func (c *SQLiteCache) GetPINUser(ctx context.Context, username string) (*PINUser, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	row := c.db.QueryRowxContext(ctx,
		`SELECT username, display_name, role, pin_hash, updated_at FROM pin_users WHERE username = ?`,
		username)

	var (
		user      PINUser
		updatedAt int64
	)
	err := row.Scan(&user.Username, &user.DisplayName, &user.Role, &user.PINHash, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	user.UpdatedAt = time.Unix(0, updatedAt).UTC()
	return &user, nil
}
