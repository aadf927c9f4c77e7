package service

import (
	"errors"
	"strings"
)

var (
	// ErrValidation 表示创建页面时缺少必填字段或字段取值无效。
	ErrValidation = errors.New("required page fields are missing")
	// ErrDuplicateSlug 表示 slug 已被其他页面占用。
	ErrDuplicateSlug = errors.New("slug already exists")
	// ErrPageNotFound 表示没有与 slug 匹配的页面。
	ErrPageNotFound = errors.New("page not found")
	// ErrStorageUnavailable 表示底层存储无法读取或写入。
	ErrStorageUnavailable = errors.New("page storage unavailable")
)

// ValidationError lists the fields that were rejected. Reason is empty when the
// fields were only missing.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return "invalid page fields: " + strings.Join(e.Fields, ", ") + ": " + e.Reason
	}
	return ErrValidation.Error() + ": " + strings.Join(e.Fields, ", ")
}

// Message is the operator-facing text for the error.
func (e *ValidationError) Message() string {
	if e.Reason != "" {
		return e.Reason
	}
	return "All fields are required"
}

// Is lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
