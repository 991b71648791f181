package keypad

import "errors"

var (
	// ErrKeyNotFound indicates that no cell on the keypad holds the requested key.
	ErrKeyNotFound = errors.New("keypad: key not found")
)
