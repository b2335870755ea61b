package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lachdavey/ledgerdoc/parser/common"
)

// CreateTransactions inserts all transactions of a statement in one batch,
// numbering them by source order.
func (db *DB) CreateTransactions(ctx context.Context, statementID string, txs []common.Transaction) error {
	batch := &pgx.Batch{}
	for i, tx := range txs {
		batch.Queue(`
			INSERT INTO transactions (statement_id, sequence, date, description, type, amount, balance)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, statementID, i+1, tx.Date, tx.Description, string(tx.Type), tx.Amount, tx.Balance)
	}

	results := db.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for range txs {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
	}
	return nil
}
