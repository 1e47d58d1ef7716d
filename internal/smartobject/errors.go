package smartobject

import (
	"errors"
	"fmt"
)

var errDuplicateField = errors.New("field declared more than once")

// FieldError привязывает ошибку генерации к модели и её свойству.
type FieldError struct {
	Model string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("error for mapping in %s in property %s: %v", e.Model, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
