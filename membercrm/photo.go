package membercrm

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	json "github.com/goccy/go-json"
	"golang.org/x/net/html"
)

// Photo is a profile picture. The CRM stores it as a rich-text field
// holding a single <img> tag.
type Photo struct {
	URL     string
	AltText string
}

// ParsePhoto extracts the image source and alt text from markup. Entity
// escapes in attribute values are decoded. It returns nil when no img tag
// with a non-empty src is found, even if alt text is present.
func ParsePhoto(markup string) *Photo {
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return nil
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "img" {
				continue
			}
			var src, alt string
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				switch string(key) {
				case "src":
					src = strings.TrimSpace(string(val))
				case "alt":
					alt = string(val)
				}
			}
			if src == "" {
				return nil
			}
			return &Photo{URL: src, AltText: normalizeAltText(alt)}
		}
	}
}

// normalizeAltText turns upload file names like "john_doe-profile" into
// readable captions ("John doe profile").
func normalizeAltText(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return ' '
		}
		return r
	}, s)
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Markup renders the photo back into the CRM's rich-text form.
func (p Photo) Markup() string {
	return fmt.Sprintf(`<img src="%s" alt="%s"></img>`, html.EscapeString(p.URL), html.EscapeString(p.AltText))
}

// MarshalJSON implements json.Marshaler for Photo.
func (p Photo) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Markup())
}

// UnmarshalJSON implements json.Unmarshaler for Photo.
func (p *Photo) UnmarshalJSON(data []byte) error {
	parsed, err := decodePhoto(data)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
