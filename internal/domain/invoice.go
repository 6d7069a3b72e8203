package domain

// InvoiceStatus payment state recorded on an invoice
type InvoiceStatus string

const (
	InvoiceDepositPaid InvoiceStatus = "Deposit Paid"
	InvoicePaid        InvoiceStatus = "Paid"
)

// Invoice is created once at successful payment and immutable thereafter
type Invoice struct {
	ID              string
	Date            string // presentation date, e.g. "2026-08-29"
	Service         string
	TotalAmount     float64
	DepositAmount   float64 // 30% of total
	RemainingAmount float64 // 70% of total
	ClientName      string
	Status          InvoiceStatus
}
