package payslip

import (
	"strings"
	"testing"
	"time"
)

const adfPayslip = `Australian Defence Force
Member Pay Advice
Payment Date: 15/06/2024
Pay Period: 01/06/2024 to 14/06/2024
Earnings
Base Salary 3,205.50
Service Allowance 512.34
Total Earnings 3,717.84
Deductions
Income Tax 890.00
Mess Fees 45.00
Total Deductions 935.00
Gross Pay: $3,717.84
Net Pay: $2,782.84
Tax Withheld: $890.00
YTD Gross: $48,331.92
YTD Tax: $11,570.00
YTD Superannuation: $5,315.51
`

func TestCanParse(t *testing.T) {
	p := NewADF()

	if !p.CanParse(adfPayslip) {
		t.Error("Expected the ADF payslip to be claimed")
	}
	if !p.CanParse("ADF Pay Advice") {
		t.Error("Expected the short identifier to be claimed")
	}
	if p.CanParse("Some other employer's payslip") {
		t.Error("Claimed a document without the force identifier")
	}
}

func TestParse_ScalarFields(t *testing.T) {
	data := NewADF().Parse(adfPayslip)

	if data.Employer != "Department of Defence" {
		t.Errorf("Unexpected employer '%s'", data.Employer)
	}
	if data.GrossPay.String() != "3717.84" {
		t.Errorf("Expected gross pay '3717.84', got '%s'", data.GrossPay.String())
	}
	if data.NetPay.String() != "2782.84" {
		t.Errorf("Expected net pay '2782.84', got '%s'", data.NetPay.String())
	}
	if data.TaxWithheld.String() != "890" {
		t.Errorf("Expected tax withheld '890', got '%s'", data.TaxWithheld.String())
	}
}

func TestParse_Dates(t *testing.T) {
	data := NewADF().Parse(adfPayslip)

	wantPayment := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	if !data.PaymentDate.Equal(wantPayment) {
		t.Errorf("Expected payment date %v, got %v", wantPayment, data.PaymentDate)
	}
	wantStart := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	if !data.PayPeriod.Start.Equal(wantStart) {
		t.Errorf("Expected period start %v, got %v", wantStart, data.PayPeriod.Start)
	}
	wantEnd := time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)
	if !data.PayPeriod.End.Equal(wantEnd) {
		t.Errorf("Expected period end %v, got %v", wantEnd, data.PayPeriod.End)
	}
}

func TestParse_Sections(t *testing.T) {
	data := NewADF().Parse(adfPayslip)

	if len(data.Earnings) != 2 {
		t.Fatalf("Expected 2 earnings rows, got %d", len(data.Earnings))
	}
	if data.Earnings[0].Description != "Base Salary" || data.Earnings[0].Amount.String() != "3205.5" {
		t.Errorf("Unexpected first earning: %s %s", data.Earnings[0].Description, data.Earnings[0].Amount.String())
	}
	if data.Earnings[1].Description != "Service Allowance" || data.Earnings[1].Amount.String() != "512.34" {
		t.Errorf("Unexpected second earning: %s %s", data.Earnings[1].Description, data.Earnings[1].Amount.String())
	}

	if len(data.Deductions) != 2 {
		t.Fatalf("Expected 2 deduction rows, got %d", len(data.Deductions))
	}
	if data.Deductions[0].Description != "Income Tax" || data.Deductions[0].Amount.String() != "890" {
		t.Errorf("Unexpected first deduction: %s %s", data.Deductions[0].Description, data.Deductions[0].Amount.String())
	}
	if data.Deductions[1].Description != "Mess Fees" || data.Deductions[1].Amount.String() != "45" {
		t.Errorf("Unexpected second deduction: %s %s", data.Deductions[1].Description, data.Deductions[1].Amount.String())
	}
}

func TestParse_YearToDate(t *testing.T) {
	data := NewADF().Parse(adfPayslip)

	if data.YearToDate.GrossPay.String() != "48331.92" {
		t.Errorf("Expected YTD gross '48331.92', got '%s'", data.YearToDate.GrossPay.String())
	}
	if data.YearToDate.TaxWithheld.String() != "11570" {
		t.Errorf("Expected YTD tax '11570', got '%s'", data.YearToDate.TaxWithheld.String())
	}
	if data.YearToDate.Superannuation.String() != "5315.51" {
		t.Errorf("Expected YTD super '5315.51', got '%s'", data.YearToDate.Superannuation.String())
	}
}

func TestParse_MissingDeductionsAnchor(t *testing.T) {
	text := strings.Replace(adfPayslip, "Deductions\n", "", 1)

	data := NewADF().Parse(text)

	if len(data.Deductions) != 0 {
		t.Errorf("Expected no deductions, got %d", len(data.Deductions))
	}
	if len(data.Earnings) != 2 {
		t.Errorf("Expected earnings intact, got %d rows", len(data.Earnings))
	}
	if data.GrossPay.String() != "3717.84" || data.NetPay.String() != "2782.84" {
		t.Errorf("Scalar fields disturbed: gross '%s' net '%s'",
			data.GrossPay.String(), data.NetPay.String())
	}
}

func TestParse_MissingTotalEarningsLine(t *testing.T) {
	// No "Total Earnings" line: earnings must stop at the deductions
	// header so no deduction row is counted twice.
	text := `Australian Defence Force
Earnings
Base Salary 3,205.50
Deductions
Income Tax 890.00
Total 2,315.50
`

	data := NewADF().Parse(text)

	if len(data.Earnings) != 1 || data.Earnings[0].Description != "Base Salary" {
		t.Fatalf("Expected earnings [Base Salary], got %v", data.Earnings)
	}
	if len(data.Deductions) != 1 || data.Deductions[0].Description != "Income Tax" {
		t.Fatalf("Expected deductions [Income Tax], got %v", data.Deductions)
	}
	if data.Deductions[0].Amount.String() != "890" {
		t.Errorf("Expected deduction amount '890', got '%s'", data.Deductions[0].Amount.String())
	}
}

func TestParse_MissingSections(t *testing.T) {
	text := "Australian Defence Force\nGross Pay: $100.00\nNet Pay: $80.00\n"

	data := NewADF().Parse(text)

	if len(data.Earnings) != 0 || len(data.Deductions) != 0 {
		t.Errorf("Expected empty sections, got %d earnings and %d deductions",
			len(data.Earnings), len(data.Deductions))
	}
	if data.GrossPay.String() != "100" {
		t.Errorf("Expected gross pay '100', got '%s'", data.GrossPay.String())
	}
}
