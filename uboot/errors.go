package uboot

type errCustom struct {
	Msg   string
	Cause error
}

func (e *errCustom) Error() string {
	if e.Cause == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Cause.Error()
}

func (e *errCustom) Unwrap() error {
	return e.Cause
}

// FormatError reports a malformed address or size expression
type FormatError struct {
	errCustom
	Expr string
}

func newFormatError(expr string, cause error) *FormatError {
	return &FormatError{
		errCustom: errCustom{Msg: "invalid address or size " + quote(expr), Cause: cause},
		Expr:      expr,
	}
}

// TransformError reports a failure while generating a script. Field names
// the configuration entry being processed, e.g. "domains.guest1.kernel.addr".
type TransformError struct {
	errCustom
	Field string
}

func newTransformError(field string, cause error) *TransformError {
	return &TransformError{
		errCustom: errCustom{Msg: field, Cause: cause},
		Field:     field,
	}
}
