// SPDX-License-Identifier: EPL-2.0

package speech

import "errors"

var (
	ErrMissingAPIKey   = errors.New("speech: missing API key")
	ErrNoAudio         = errors.New("speech: no audio data generated")
	ErrUnsupportedMIME = errors.New("speech: unsupported audio MIME type")
)
