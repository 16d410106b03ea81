package domain

// InvoiceStatus represents the derived lifecycle of an invoice.
type InvoiceStatus string

const (
	StatusPaid    InvoiceStatus = "paid"
	StatusPending InvoiceStatus = "pending"
	StatusOverdue InvoiceStatus = "overdue"
)

// ValidStatuses maps the accepted status filter values.
var ValidStatuses = map[InvoiceStatus]bool{
	StatusPaid:    true,
	StatusPending: true,
	StatusOverdue: true,
}

// Spend categories assigned to invoices during ingestion.
const (
	CategorySoftware       = "Software"
	CategoryHardware       = "Hardware"
	CategoryServices       = "Services"
	CategoryConsulting     = "Consulting"
	CategoryMarketing      = "Marketing"
	CategoryOfficeSupplies = "Office Supplies"
)

// Categories is the fixed category list. Order matters: the ingestion
// fallback picks an entry by hashing the vendor name modulo this length.
var Categories = []string{
	CategorySoftware,
	CategoryHardware,
	CategoryServices,
	CategoryConsulting,
	CategoryMarketing,
	CategoryOfficeSupplies,
}

// PaymentMethodBankTransfer is the method recorded on payments emitted by
// the ingestion pipeline.
const PaymentMethodBankTransfer = "Bank Transfer"
