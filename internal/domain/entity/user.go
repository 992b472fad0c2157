// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the account entity. The stored password hash lives on the entity
// because the service layer needs it for credential checks, but it must never
// cross the HTTP boundary; handlers always map to usecase views first.
type User struct {
	ID           int64     // Database-assigned identifier, immutable after creation.
	Email        string    // Unique login key, stored case-sensitive.
	Name         string    // Display name.
	PasswordHash string    // bcrypt hash of the account password. Never empty for a persisted record.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
