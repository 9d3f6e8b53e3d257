package store

import "errors"

var (
	ErrEntryExists    = errors.New("journal entry already exists")
	ErrRecordNotFound = errors.New("record not found")
)
