package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lachdavey/ledgerdoc/parser/common"
)

// PayslipExists checks for a previously imported payslip using the
// natural key (employer, payment_date)
func (db *DB) PayslipExists(ctx context.Context, employer string, paymentDate time.Time) (bool, string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
		SELECT id FROM payslips
		WHERE employer = $1 AND payment_date = $2
	`, employer, paymentDate).Scan(&id)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, "", nil
		}
		return false, "", fmt.Errorf("failed to check payslip: %w", err)
	}

	return true, id, nil
}

// CreatePayslip inserts a payslip and its earnings and deduction rows.
func (db *DB) CreatePayslip(ctx context.Context, source string, data common.PaySlipData) (string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO payslips (
			employer, payment_date, period_start, period_end,
			gross_pay, net_pay, tax_withheld,
			ytd_gross_pay, ytd_tax_withheld, ytd_superannuation, source
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`,
		data.Employer, data.PaymentDate, data.PayPeriod.Start, data.PayPeriod.End,
		data.GrossPay, data.NetPay, data.TaxWithheld,
		data.YearToDate.GrossPay, data.YearToDate.TaxWithheld, data.YearToDate.Superannuation,
		source,
	).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to create payslip: %w", err)
	}

	if err := db.createPayslipItems(ctx, id, "earning", data.Earnings); err != nil {
		return "", err
	}
	if err := db.createPayslipItems(ctx, id, "deduction", data.Deductions); err != nil {
		return "", err
	}

	return id, nil
}

func (db *DB) createPayslipItems(ctx context.Context, payslipID, kind string, items []common.LineItem) error {
	batch := &pgx.Batch{}
	for i, item := range items {
		batch.Queue(`
			INSERT INTO payslip_items (payslip_id, kind, sequence, description, amount)
			VALUES ($1, $2, $3, $4, $5)
		`, payslipID, kind, i+1, item.Description, item.Amount)
	}

	results := db.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for range items {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert payslip item: %w", err)
		}
	}
	return nil
}

// DeletePayslip removes a payslip and its items (cascade)
func (db *DB) DeletePayslip(ctx context.Context, payslipID string) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM payslips WHERE id = $1`, payslipID)
	if err != nil {
		return fmt.Errorf("failed to delete payslip: %w", err)
	}
	return nil
}
