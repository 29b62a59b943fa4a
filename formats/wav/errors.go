// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a valid WAV file")
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
)
