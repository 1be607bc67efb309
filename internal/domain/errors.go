package domain

import (
	"errors"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrNotEnoughBalance = errors.New("not enough balance")
	ErrEmptyCart        = errors.New("empty cart")
	ErrOwnerConflict    = errors.New("owner conflict")
	ErrNotAdmin         = errors.New("admin capability required")
)
