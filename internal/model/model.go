// Package model defines the domain models for chronosdeck.
package model

// Model is the interface implemented by all stored document types.
type Model interface {
	// SetID sets the document id assigned by the store.
	SetID(id string)
	// GetID returns the document id.
	GetID() string
}
