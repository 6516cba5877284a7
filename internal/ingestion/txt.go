package ingestion

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// txtEncodings is the ordered fallback chain for decoding plain-text
// resumes. The first encoding that decodes cleanly wins.
var txtEncodings = []struct {
	name    string
	decoder *encoding.Decoder
}{
	{"utf-8", nil}, // validated with utf8.Valid, no transform needed
	{"latin-1", charmap.ISO8859_1.NewDecoder()},
	{"cp1252", charmap.Windows1252.NewDecoder()},
	{"iso-8859-1", charmap.ISO8859_1.NewDecoder()},
}

func loadTXT(path string) (*types.ParsedDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	text, encodingName, err := decodeText(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	return &types.ParsedDocument{
		Text:     text,
		Encoding: encodingName,
		Lines:    len(strings.Split(text, "\n")),
	}, nil
}

// decodeText tries each encoding in order and returns the first clean
// decode along with the encoding name.
func decodeText(raw []byte) (string, string, error) {
	for _, enc := range txtEncodings {
		if enc.decoder == nil {
			if utf8.Valid(raw) {
				return string(raw), enc.name, nil
			}
			continue
		}
		decoded, err := enc.decoder.Bytes(raw)
		if err != nil {
			continue
		}
		return string(decoded), enc.name, nil
	}
	return "", "", fmt.Errorf("no supported encoding succeeded")
}
