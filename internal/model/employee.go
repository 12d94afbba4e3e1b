package model

import "time"

// Employee represents an account in the `employees` table. Accounts
// authenticate reserve/release calls; the occupant identity written to
// the ledger is derived from the display name, not the account id.
//
// Fields:
//  ID           – primary key identifier.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  FullName     – display name used when reserving seats.
//  Team         – team affiliation, default for preference profiles.
//  IsActive     – whether the account is active.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type Employee struct {
	ID           uint64    // employees.id
	Email        string    // employees.email
	PasswordHash string    // employees.password_hash
	FullName     string    // employees.full_name
	Team         string    // employees.team
	IsActive     bool      // employees.is_active
	CreatedAt    time.Time // employees.created_at
	UpdatedAt    time.Time // employees.updated_at
}
