package postgres

import (
	"context"
	"fmt"
)

const ddl = `
-- Statements table with natural key (bank_name, year, month)
CREATE TABLE IF NOT EXISTS statements (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    bank_name VARCHAR(100) NOT NULL,
    month INTEGER NOT NULL,
    year INTEGER NOT NULL,
    source VARCHAR(255) NOT NULL,
    created_at TIMESTAMPTZ DEFAULT NOW(),

    UNIQUE(bank_name, year, month)
);

-- Transactions table, ordered by sequence within a statement
CREATE TABLE IF NOT EXISTS transactions (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    statement_id UUID NOT NULL REFERENCES statements(id) ON DELETE CASCADE,
    sequence INTEGER NOT NULL,
    date DATE NOT NULL,
    description TEXT NOT NULL,
    type VARCHAR(10) NOT NULL,
    amount NUMERIC(18,2) NOT NULL,
    balance NUMERIC(18,2) NOT NULL,
    created_at TIMESTAMPTZ DEFAULT NOW(),

    UNIQUE(statement_id, sequence)
);

-- Payslips table with natural key (employer, payment_date)
CREATE TABLE IF NOT EXISTS payslips (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    employer VARCHAR(255) NOT NULL,
    payment_date DATE NOT NULL,
    period_start DATE,
    period_end DATE,
    gross_pay NUMERIC(18,2) NOT NULL,
    net_pay NUMERIC(18,2) NOT NULL,
    tax_withheld NUMERIC(18,2) NOT NULL,
    ytd_gross_pay NUMERIC(18,2) NOT NULL,
    ytd_tax_withheld NUMERIC(18,2) NOT NULL,
    ytd_superannuation NUMERIC(18,2) NOT NULL,
    source VARCHAR(255) NOT NULL,
    created_at TIMESTAMPTZ DEFAULT NOW(),

    UNIQUE(employer, payment_date)
);

-- Earnings and deduction rows of a payslip
CREATE TABLE IF NOT EXISTS payslip_items (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    payslip_id UUID NOT NULL REFERENCES payslips(id) ON DELETE CASCADE,
    kind VARCHAR(10) NOT NULL,
    sequence INTEGER NOT NULL,
    description TEXT NOT NULL,
    amount NUMERIC(18,2) NOT NULL,

    UNIQUE(payslip_id, kind, sequence)
);

-- Indexes for common queries
CREATE INDEX IF NOT EXISTS idx_statements_period ON statements(year, month);
CREATE INDEX IF NOT EXISTS idx_transactions_statement_id ON transactions(statement_id);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
CREATE INDEX IF NOT EXISTS idx_payslip_items_payslip_id ON payslip_items(payslip_id);
`

// EnsureSchema creates tables if they don't exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
