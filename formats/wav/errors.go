// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrOnlyPCMSupported     = errors.New("only uncompressed PCM supported")
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")
	ErrShortHeader          = errors.New("WAV header shorter than 44 bytes")
)
