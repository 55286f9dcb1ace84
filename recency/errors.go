// SPDX-License-Identifier: MIT

package recency

import "errors"

// ErrInvalidLimit indicates a non-positive size limit.
var ErrInvalidLimit = errors.New("recency: limit must be positive")
