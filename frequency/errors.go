// SPDX-License-Identifier: MIT

package frequency

import "errors"

// ErrNegativeK indicates TopK was asked for a negative number of items.
var ErrNegativeK = errors.New("frequency: k must be non-negative")
