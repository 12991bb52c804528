package shared

import (
	"physio-scheduler/internal/infra"
	"physio-scheduler/internal/pkg/errs"
)

var (
	ErrProviderNotFound = errs.New("provider not found")
	ErrBookingNotFound  = errs.New("booking not found")
	ErrOverrideNotFound = errs.New("override not found")
)

// TranslateNotFound marks a repository NOT_FOUND with the given sentinel.
func TranslateNotFound(err error, sentinel error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.MarkAll(err, sentinel, errs.ErrNotFound)
	}
	return err
}
