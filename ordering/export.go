package ordering

import (
	"strings"

	"material-issue-sheet/models"
)

// MissingIssuerPrompt is asked when an export has no Issued By name
const MissingIssuerPrompt = "The 'Issued By' field is empty. Do you want to download anyway?"

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(prompt string) bool

// Confirm calls f(prompt)
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// ValidateExport checks the preconditions of an order sheet export and returns the
// header with its destination and issuer trimmed.
//
// An empty cart fails with ErrEmptyCart and a blank destination with a FieldError
// wrapping ErrMissingDestination. A blank issuer is not an error by itself: confirm
// is asked MissingIssuerPrompt, and declining (or a nil confirm) returns a FieldError
// wrapping ErrExportDeclined.
func ValidateExport(ledger *CartLedger, header models.OrderSheetHeader, confirm Confirmer) (models.OrderSheetHeader, error) {
	if ledger.IsEmpty() {
		return header, ErrEmptyCart
	}

	header.ToWarehouse = strings.TrimSpace(header.ToWarehouse)
	header.IssuedBy = strings.TrimSpace(header.IssuedBy)

	if header.ToWarehouse == "" {
		return header, &FieldError{Field: "toWarehouse", Err: ErrMissingDestination}
	}

	if header.IssuedBy == "" && (confirm == nil || !confirm.Confirm(MissingIssuerPrompt)) {
		return header, &FieldError{Field: "issuedBy", Err: ErrExportDeclined}
	}

	return header, nil
}
