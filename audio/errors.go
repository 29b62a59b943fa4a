// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNegativePosition = errors.New("seek position must not be negative")
	ErrSeekUnsupported  = errors.New("source does not support seeking")
	ErrInvalidRate      = errors.New("sample rate must be positive")
	ErrInvalidChannels  = errors.New("channel count must be positive")
)
