package htxt

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// DecodeSource converts raw file bytes to a string. A UTF-8 or UTF-16
// byte order mark selects the encoding and is dropped; without a UTF-16
// mark the bytes must be valid UTF-8.
func DecodeSource(data []byte) (string, error) {
	utf16 := bytes.HasPrefix(data, bomUTF16BE) || bytes.HasPrefix(data, bomUTF16LE)
	if !utf16 && !utf8.Valid(data) {
		return "", fmt.Errorf("%w: invalid UTF-8", ErrDecodeSource)
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecodeSource, err)
	}
	return string(out), nil
}
