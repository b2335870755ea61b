package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lachdavey/ledgerdoc/parser/common"
)

// StatementExists checks for a previously imported statement using the
// natural key (bank_name, year, month)
func (db *DB) StatementExists(ctx context.Context, bankName string, year, month int) (bool, string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
		SELECT id FROM statements
		WHERE bank_name = $1 AND year = $2 AND month = $3
	`, bankName, year, month).Scan(&id)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, "", nil
		}
		return false, "", fmt.Errorf("failed to check statement: %w", err)
	}

	return true, id, nil
}

// CreateStatement inserts a new statement
func (db *DB) CreateStatement(ctx context.Context, source string, stmt common.ParsedStatement) (string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO statements (bank_name, month, year, source)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, stmt.BankName, stmt.Month, stmt.Year, source).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to create statement: %w", err)
	}

	return id, nil
}

// DeleteStatement removes a statement and its transactions (cascade)
func (db *DB) DeleteStatement(ctx context.Context, statementID string) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM statements WHERE id = $1`, statementID)
	if err != nil {
		return fmt.Errorf("failed to delete statement: %w", err)
	}
	return nil
}
