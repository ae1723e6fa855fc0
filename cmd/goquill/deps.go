package main

import (
	"fmt"

	"github.com/quillclouds/goquill/internal/store"
)

// withStore opens the SQLite store at the configured path, calls the provided
// function, and handles cleanup automatically.
func withStore(fn func(store.Storer) error) error {
	s, err := store.NewSQLiteStoreWithDSN(globalDB)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	return fn(s)
}
