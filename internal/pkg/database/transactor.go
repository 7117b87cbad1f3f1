package database

import "context"

// Transactor runs fn inside a single database transaction. Repositories
// called with the ctx handed to fn take part in that transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
