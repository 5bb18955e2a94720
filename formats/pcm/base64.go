// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/ik5/pcmwav/audio"
)

// strict rejects non-zero padding bits, in addition to characters outside the
// standard alphabet and misplaced '='.
var strict = base64.StdEncoding.Strict()

// DecodeBase64 decodes a standard, padded base64 payload into raw bytes.
//
// Line breaks are not tolerated. On failure the error is a *audio.DecodeError
// that matches audio.ErrDecode.
func DecodeBase64(s string) ([]byte, error) {
	// encoding/base64 silently skips CR and LF
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return nil, &audio.DecodeError{Offset: int64(i), Err: base64.CorruptInputError(i)}
	}

	dst := make([]byte, strict.DecodedLen(len(s)))
	n, err := strict.Decode(dst, []byte(s))
	if err != nil {
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) {
			return nil, &audio.DecodeError{Offset: int64(corrupt), Err: err}
		}
		return nil, &audio.DecodeError{Err: err}
	}

	return dst[:n], nil
}
