// SPDX-License-Identifier: MIT

package render

import "errors"

// ErrTooLarge indicates a dense output (Image, PNG, ASCII) whose buffer
// would exceed the raster limit. SVG is never limited.
var ErrTooLarge = errors.New("render: image too large")
