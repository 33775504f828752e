package css

import (
	"fmt"
	"strings"
)

// StyleFontFamily is one entry of CSS property "font-family": either the
// name of a system font or a font file.
type StyleFontFamily struct {
	IsFile bool
	Name   string // font name or file path
}

// SystemFont references a font by its system name.
func SystemFont(name string) StyleFontFamily {
	return StyleFontFamily{Name: name}
}

// FontFile references a font by file.
func FontFile(path string) StyleFontFamily {
	return StyleFontFamily{IsFile: true, Name: path}
}

func (f StyleFontFamily) String() string {
	if f.IsFile {
		return "url(" + quote(f.Name) + ")"
	}
	if strings.ContainsAny(f.Name, " ,") {
		return quote(f.Name)
	}
	return f.Name
}

// StyleFontFamilyVec is a list of font families in order of preference.
type StyleFontFamilyVec []StyleFontFamily

// DefaultFontFamilies is the generic family 'sans-serif'.
func DefaultFontFamilies() StyleFontFamilyVec {
	return StyleFontFamilyVec{SystemFont("sans-serif")}
}

func (v StyleFontFamilyVec) String() string {
	s := make([]string, len(v))
	for i, f := range v {
		s[i] = f.String()
	}
	return strings.Join(s, ", ")
}

// ParseFontFamilies parses a comma separated list of font names. Names may be
// quoted; 'url(…)' references a font file.
func ParseFontFamilies(s string) (StyleFontFamilyVec, error) {
	parts := splitRespectingParens(s, ',')
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty font family", ErrInvalidValue)
	}
	v := make(StyleFontFamilyVec, 0, len(parts))
	for _, p := range parts {
		if name, args, ok := functionCall(p); ok && name == "url" {
			v = append(v, FontFile(unquote(args)))
			continue
		}
		name := unquote(p)
		if name == "" {
			return nil, fmt.Errorf("%w: empty font family in %q", ErrInvalidValue, s)
		}
		v = append(v, SystemFont(name))
	}
	return v, nil
}
