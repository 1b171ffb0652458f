// Package stores contains the repository layer over the database pool.
// Every operation is a single atomic statement; no store method spans a
// transaction across component boundaries.
package stores

import "errors"

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")
