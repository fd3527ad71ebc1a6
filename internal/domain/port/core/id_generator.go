package core

// IDGenerator produces opaque unique identifiers for new rows
type IDGenerator interface {
	NewID() (string, error)
}
