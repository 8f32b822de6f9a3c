package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrSignalUnavailable  = errors.New("signal unavailable")
	ErrPermissionRequired = errors.New("sensor permission not granted")
)
