package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ReceiptRow struct {
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	LineTotal int64  `json:"line_total"`
	RxNumber  string `json:"rx_number,omitempty"`
}

type PatientInfo struct {
	Name              string `json:"name"`
	DOB               string `json:"dob,omitempty"`
	InsuranceProvider string `json:"insurance_provider,omitempty"`
	InsuranceID       string `json:"insurance_id,omitempty"`
}

// Receipt is the pure value produced by checkout. Whole-kwacha amounts are
// int64; the insurance adjustment and the patient share are carried in
// hundredths of a kwacha so the 70% split never loses precision.
type Receipt struct {
	ID               uuid.UUID    `json:"id"`
	Timestamp        time.Time    `json:"timestamp"`
	Cashier          string       `json:"cashier"`
	CashierRole      string       `json:"cashier_role"`
	Patient          *PatientInfo `json:"patient,omitempty"`
	Rows             []ReceiptRow `json:"rows"`
	Subtotal         int64        `json:"subtotal"`
	InsuranceApplied bool         `json:"insurance_applied"`
	AdjustmentCents  int64        `json:"adjustment_cents,omitempty"`
	PatientPaysCents int64        `json:"patient_pays_cents,omitempty"`
}

const receiptSeparator = "----------------------------"

// FormatPrice renders a whole-kwacha amount: FormatPrice(1800) == "MK1,800.00".
func FormatPrice(v int64) string {
	return FormatPriceCents(v * 100)
}

// FormatPriceCents renders an amount held in hundredths of a kwacha.
func FormatPriceCents(c int64) string {
	negative := c < 0
	if negative {
		c = -c
	}

	whole := strconv.FormatInt(c/100, 10)

	var grouped strings.Builder

	lead := len(whole) % 3
	if lead > 0 {
		grouped.WriteString(whole[:lead])
	}

	for i := lead; i < len(whole); i += 3 {
		if grouped.Len() > 0 {
			grouped.WriteByte(',')
		}

		grouped.WriteString(whole[i : i+3])
	}

	sign := ""
	if negative {
		sign = "-"
	}

	return fmt.Sprintf("%sMK%s.%02d", sign, grouped.String(), c%100)
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}

	return v
}

// Render produces the printable receipt text, matching the till's layout
// line for line.
func (r *Receipt) Render() string {
	var b strings.Builder

	b.WriteString("PHARMACY RECEIPT\n")
	b.WriteString(receiptSeparator + "\n")
	fmt.Fprintf(&b, "Date: %s\n", r.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Processed by: %s (%s)\n\n", r.Cashier, r.CashierRole)

	if r.Patient != nil {
		fmt.Fprintf(&b, "Patient: %s\n", r.Patient.Name)
		fmt.Fprintf(&b, "DOB: %s\n", valueOrNA(r.Patient.DOB))
		fmt.Fprintf(&b, "Insurance: %s\n", valueOrNA(r.Patient.InsuranceProvider))
		fmt.Fprintf(&b, "Member ID: %s\n\n", valueOrNA(r.Patient.InsuranceID))
	}

	b.WriteString("Medications:\n")

	for _, row := range r.Rows {
		fmt.Fprintf(&b, "- %s x %d - %s", row.Name, row.Quantity, FormatPrice(row.LineTotal))

		if row.RxNumber != "" {
			fmt.Fprintf(&b, " (RX: %s)", row.RxNumber)
		}

		b.WriteString("\n")
	}

	b.WriteString("\n" + receiptSeparator + "\n")
	fmt.Fprintf(&b, "SUBTOTAL: %s\n", FormatPrice(r.Subtotal))

	if r.InsuranceApplied {
		fmt.Fprintf(&b, "INSURANCE: -%s\n", FormatPriceCents(r.AdjustmentCents))
		fmt.Fprintf(&b, "PATIENT PAYS: %s\n", FormatPriceCents(r.PatientPaysCents))
	}

	b.WriteString("Thank you for your business!\n")
	b.WriteString("Please consult your pharmacist for usage instructions.")

	return b.String()
}
