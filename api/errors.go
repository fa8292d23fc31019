// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error values for the recoverable surfaces of the library.
// The containers themselves panic on misuse; these errors belong to
// the pooling and dispatch layers built on top of them.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrNotRunning        = fmt.Errorf("dispatcher is not running")
	ErrAlreadyRunning    = fmt.Errorf("dispatcher is already running")
	ErrResourceExhausted = fmt.Errorf("resource exhausted")
	ErrInvalidArgument   = fmt.Errorf("invalid argument")
)
