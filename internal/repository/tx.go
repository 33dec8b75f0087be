package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type txKey struct{}

func withTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// conn returns the transaction carried by ctx, falling back to db.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// Transactor runs units of work that must see a consistent snapshot of one licence.
type Transactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// WithLicenceLock runs fn inside a transaction holding a transaction-scoped
// advisory lock on licenceRef. Repositories called with the ctx passed to fn
// join the transaction; the lock is released on commit or rollback.
func (t *Transactor) WithLicenceLock(ctx context.Context, licenceRef string, fn func(ctx context.Context) error) error {
	return conn(ctx, t.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`SELECT pg_advisory_xact_lock(hashtext(?))`, "licence:"+licenceRef).Error; err != nil {
			return fmt.Errorf("acquire licence lock: %w", err)
		}
		return fn(withTx(ctx, tx))
	})
}
