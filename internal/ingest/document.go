package ingest

import (
	"encoding/json"
	"fmt"
	"time"
)

// SourceDocument is one record of the semi-structured document export.
// Every nested extraction field is optional; values sit behind {value: ...}
// wrappers at each level of the payload.
type SourceDocument struct {
	ID            string         `json:"_id"`
	Name          string         `json:"name"`
	Status        string         `json:"status"`
	CreatedAt     exportDate     `json:"createdAt"`
	UpdatedAt     exportDate     `json:"updatedAt"`
	ExtractedData *extractedData `json:"extractedData"`
}

type extractedData struct {
	LLMData *llmData `json:"llmData"`
}

type llmData struct {
	Invoice   *section[invoiceFields]  `json:"invoice"`
	Vendor    *section[vendorFields]   `json:"vendor"`
	Customer  *section[customerFields] `json:"customer"`
	Payment   *section[paymentFields]  `json:"payment"`
	Summary   *section[summaryFields]  `json:"summary"`
	LineItems *section[lineItemsValue] `json:"lineItems"`
}

// section wraps a payload sub-object behind its {value: ...} envelope.
type section[T any] struct {
	Value *T `json:"value"`
}

type invoiceFields struct {
	InvoiceID    *stringField `json:"invoiceId"`
	InvoiceDate  *stringField `json:"invoiceDate"`
	DeliveryDate *stringField `json:"deliveryDate"`
}

type vendorFields struct {
	VendorName        *stringField `json:"vendorName"`
	VendorAddress     *stringField `json:"vendorAddress"`
	VendorTaxID       *stringField `json:"vendorTaxId"`
	VendorPartyNumber *stringField `json:"vendorPartyNumber"`
}

type customerFields struct {
	CustomerName    *stringField `json:"customerName"`
	CustomerAddress *stringField `json:"customerAddress"`
}

type paymentFields struct {
	DueDate           *stringField `json:"dueDate"`
	PaymentTerms      *stringField `json:"paymentTerms"`
	BankAccountNumber *stringField `json:"bankAccountNumber"`
	NetDays           *numberField `json:"netDays"`
}

type summaryFields struct {
	SubTotal       *numberField `json:"subTotal"`
	TotalTax       *numberField `json:"totalTax"`
	InvoiceTotal   *numberField `json:"invoiceTotal"`
	CurrencySymbol *stringField `json:"currencySymbol"`
}

type lineItemsValue struct {
	Items *section[[]sourceLineItem] `json:"items"`
}

type sourceLineItem struct {
	Description *stringField `json:"description"`
	Quantity    *numberField `json:"quantity"`
	UnitPrice   *numberField `json:"unitPrice"`
	TotalPrice  *numberField `json:"totalPrice"`
	CostCenter  *stringField `json:"Sachkonto"`
}

type stringField struct {
	Value *string `json:"value"`
}

type numberField struct {
	Value *float64 `json:"value"`
}

// exportDate decodes Mongo extended-JSON dates ({"$date": "..."}) as well as
// plain timestamp strings. Decoding never fails: an absent or unparsable
// date leaves the zero time, so a single bad document cannot abort the
// decode of the whole export. Processing rejects zero times where a
// timestamp is actually required.
type exportDate struct {
	Time time.Time
}

func (d *exportDate) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Date string `json:"$date"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Date != "" {
		if t, err := parseTimestamp(wrapped.Date); err == nil {
			d.Time = t
		}
		return nil
	}

	var plain string
	if err := json.Unmarshal(data, &plain); err == nil && plain != "" {
		if t, err := parseTimestamp(plain); err == nil {
			d.Time = t
		}
	}
	return nil
}

func (d exportDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"$date": d.Time.Format(time.RFC3339)})
}

// timestampLayouts lists the formats seen in exports, most specific first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006",
	"01/02/2006",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable timestamp %q", s)
}

// Extract is the flat intermediate record produced from one source document.
// Optional string fields are empty when absent; optional numbers stay nil so
// callers can distinguish "missing" from zero.
type Extract struct {
	InvoiceID    string
	InvoiceDate  string
	DeliveryDate string
	DueDate      string

	VendorName    string
	VendorAddress *string
	VendorTaxID   *string

	CustomerName    string
	CustomerAddress *string

	SubTotal     *float64
	TotalTax     *float64
	InvoiceTotal *float64

	LineItems []ExtractLineItem
}

// ExtractLineItem is one line-item entry lifted out of the nested payload.
type ExtractLineItem struct {
	Description string
	Quantity    *float64
	UnitPrice   *float64
	TotalPrice  *float64
}

// Flatten collapses the optional nesting of a source document into an
// Extract. It returns false when the document carries no extraction payload
// at all, which is the only condition that makes a document unprocessable.
func (d *SourceDocument) Flatten() (*Extract, bool) {
	if d.ExtractedData == nil || d.ExtractedData.LLMData == nil {
		return nil, false
	}
	data := d.ExtractedData.LLMData

	ex := &Extract{}

	if inv := sectionValue(data.Invoice); inv != nil {
		ex.InvoiceID = strVal(inv.InvoiceID)
		ex.InvoiceDate = strVal(inv.InvoiceDate)
		ex.DeliveryDate = strVal(inv.DeliveryDate)
	}
	if vendor := sectionValue(data.Vendor); vendor != nil {
		ex.VendorName = strVal(vendor.VendorName)
		ex.VendorAddress = strPtr(vendor.VendorAddress)
		ex.VendorTaxID = strPtr(vendor.VendorTaxID)
	}
	if customer := sectionValue(data.Customer); customer != nil {
		ex.CustomerName = strVal(customer.CustomerName)
		ex.CustomerAddress = strPtr(customer.CustomerAddress)
	}
	if payment := sectionValue(data.Payment); payment != nil {
		ex.DueDate = strVal(payment.DueDate)
	}
	if summary := sectionValue(data.Summary); summary != nil {
		ex.SubTotal = numPtr(summary.SubTotal)
		ex.TotalTax = numPtr(summary.TotalTax)
		ex.InvoiceTotal = numPtr(summary.InvoiceTotal)
	}
	if li := sectionValue(data.LineItems); li != nil {
		if items := sectionValue(li.Items); items != nil {
			for _, item := range *items {
				ex.LineItems = append(ex.LineItems, ExtractLineItem{
					Description: strVal(item.Description),
					Quantity:    numPtr(item.Quantity),
					UnitPrice:   numPtr(item.UnitPrice),
					TotalPrice:  numPtr(item.TotalPrice),
				})
			}
		}
	}

	return ex, true
}

func sectionValue[T any](s *section[T]) *T {
	if s == nil {
		return nil
	}
	return s.Value
}

func strVal(f *stringField) string {
	if f == nil || f.Value == nil {
		return ""
	}
	return *f.Value
}

func strPtr(f *stringField) *string {
	if f == nil || f.Value == nil {
		return nil
	}
	return f.Value
}

func numPtr(f *numberField) *float64 {
	if f == nil || f.Value == nil {
		return nil
	}
	return f.Value
}

// DecodeDocuments parses a document export into source documents.
func DecodeDocuments(data []byte) ([]SourceDocument, error) {
	var docs []SourceDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decoding document export: %w", err)
	}
	return docs, nil
}
