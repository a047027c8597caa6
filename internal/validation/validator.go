package validation

import (
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator with custom struct-level validation registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// register struct-level validation for UpdateStatusRequest: a supplied
	// confirmed_at override must be a parseable RFC 3339 timestamp, since
	// it is written to the ledger verbatim.
	v.RegisterStructValidation(updateStatusStructValidation, UpdateStatusRequest{})

	return v
}

func updateStatusStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(UpdateStatusRequest)
	if req.ConfirmedAt == "" {
		return
	}
	if _, err := time.Parse(time.RFC3339, req.ConfirmedAt); err != nil {
		sl.ReportError(req.ConfirmedAt, "confirmed_at", "ConfirmedAt", "rfc3339", "")
	}
}
