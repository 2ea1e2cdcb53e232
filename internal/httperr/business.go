package httperr

import "errors"

// BusinessError carries a stable code ("booking_not_found", "field_not_found")
// across the usecase boundary, so handlers pick the status and message without
// matching on error strings.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err is (or wraps) a BusinessError with the
// given code.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Code == code
}
