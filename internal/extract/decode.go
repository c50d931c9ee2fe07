package extract

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// legacyCharsets maps chardet guesses to decoders. Anything else falls back
// to Windows-1252, the usual encoding of US bank exports that are not UTF-8.
var legacyCharsets = map[string]encoding.Encoding{
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-9":   charmap.ISO8859_9,
}

// Line endings other than LF would break the line-anchored patterns.
var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// decodeText turns a raw text dump into UTF-8 with LF line endings.
func decodeText(raw []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		text = string(raw[len(bomUTF8):])
	case bytes.HasPrefix(raw, bomUTF16LE), bytes.HasPrefix(raw, bomUTF16BE):
		// UseBOM takes the byte order from the mark and drops it.
		text, err = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder().String(string(raw))
	case utf8.Valid(raw):
		text = string(raw)
	default:
		text, err = legacyDecoder(raw).String(string(raw))
	}

	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}

	return lineEndings.Replace(text), nil
}

func legacyDecoder(raw []byte) *encoding.Decoder {
	if res, err := chardet.NewTextDetector().DetectBest(raw); err == nil {
		if enc, ok := legacyCharsets[res.Charset]; ok {
			return enc.NewDecoder()
		}
	}

	return charmap.Windows1252.NewDecoder()
}
