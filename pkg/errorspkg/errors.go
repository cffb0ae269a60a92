// Package errorspkg holds errors shared by the ledger delivery layers.
package errorspkg

import "errors"

// ErrInternal is reported to API clients in place of any error the ledger does not expect.
var ErrInternal = errors.New("internal")
