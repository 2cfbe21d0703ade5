package domain

import "fmt"

// SchemeError reports an invalid scheme field.
type SchemeError struct {
	Field   string
	Message string
}

func (e *SchemeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
