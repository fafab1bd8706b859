package invoices

import (
	"strings"

	"invoicing-dashboard-backend/internal/models"
	"invoicing-dashboard-backend/internal/money"
)

// FormDraft is the raw, unvalidated form submission. Amount arrives as a
// decimal dollar string ("42.50"); it never persists in this shape.
type FormDraft struct {
	CustomerID string `json:"customer_id" form:"customer_id"`
	Amount     string `json:"amount" form:"amount"`
	Status     string `json:"status" form:"status"`
}

// ValidInvoice is a draft that passed validation, with the amount
// already converted to cents.
type ValidInvoice struct {
	CustomerID string
	Amount     int64
	Status     string
}

// ValidateDraft checks every field and reports all problems together
// rather than stopping at the first. op ("Create"/"Update") only shapes
// the summary message.
func ValidateDraft(draft FormDraft, op string) (*ValidInvoice, *ValidationError) {
	fields := make(map[string][]FieldError)

	customerID := strings.TrimSpace(draft.CustomerID)
	if customerID == "" {
		fields["customer_id"] = append(fields["customer_id"], FieldError{
			Code:    CodeMissingField,
			Message: "customer_id is required",
		})
	}

	cents, err := money.ParseDollars(strings.TrimSpace(draft.Amount))
	if err != nil || cents <= 0 {
		fields["amount"] = append(fields["amount"], FieldError{
			Code:    CodeInvalidAmount,
			Message: "amount must be greater than 0",
		})
	}

	if !models.ValidStatus(draft.Status) {
		fields["status"] = append(fields["status"], FieldError{
			Code:    CodeInvalidEnum,
			Message: `status must be either "pending" or "paid"`,
		})
	}

	if len(fields) > 0 {
		return nil, &ValidationError{
			Message: "Missing Fields. Failed to " + op + " Invoice.",
			Fields:  fields,
		}
	}

	return &ValidInvoice{
		CustomerID: customerID,
		Amount:     cents,
		Status:     draft.Status,
	}, nil
}
