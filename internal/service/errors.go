package service

import (
	"errors"
	"fmt"

	"PredictAdmin/internal/repository"

	"gorm.io/gorm"
)

// 错误种类，配合 errors.Is 使用
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrInvalidReference = errors.New("invalid reference")
)

// Error 业务错误：Kind 为上面的种类之一，Message 可直接返回给调用方
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func validationError(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func notFound(entity string) *Error {
	return &Error{Kind: ErrNotFound, Message: entity + " not found"}
}

// storeError 把仓储错误归类；无法归类的原样包装，由 api 层按 500 处理
func storeError(err error, entity, op string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound(entity)
	case repository.IsUniqueViolation(err):
		return &Error{Kind: ErrConflict, Message: entity + " already exists", Err: err}
	case repository.IsForeignKeyViolation(err):
		return &Error{Kind: ErrInvalidReference, Message: "referenced row does not exist", Err: err}
	}
	return fmt.Errorf("%s %s: %w", op, entity, err)
}
