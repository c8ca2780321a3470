package repository

import "errors"

// Store error kinds. Callers match with errors.Is.
var (
	ErrNotFound = errors.New("athlete not found")
	ErrDecode   = errors.New("decode athlete file")
	ErrEncode   = errors.New("encode athlete file")
	ErrIO       = errors.New("athlete store io")
)
