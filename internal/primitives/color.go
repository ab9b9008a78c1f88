package primitives

import (
	"fmt"
	"strings"
)

// DefaultColor is the albedo tint for primitives without a color of their own.
var DefaultColor = [4]uint8{128, 128, 128, 255}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA into RGBA. Alpha defaults to 255.
func ParseHexColor(s string) ([4]uint8, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return [4]uint8{}, fmt.Errorf("primitives: color %q: want #RGB, #RRGGBB or #RRGGBBAA", s)
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := hexNibble(hex[i]); !ok {
			return [4]uint8{}, fmt.Errorf("primitives: color %q: bad hex digit %q", s, hex[i])
		}
	}
	c := [4]uint8{0, 0, 0, 255}
	switch len(hex) {
	case 3:
		// #RGB -> RR GG BB
		for i := 0; i < 3; i++ {
			n, _ := hexNibble(hex[i])
			c[i] = n * 17
		}
	case 6, 8:
		for i := 0; i < len(hex)/2; i++ {
			hi, _ := hexNibble(hex[2*i])
			lo, _ := hexNibble(hex[2*i+1])
			c[i] = hi<<4 | lo
		}
	default:
		return [4]uint8{}, fmt.Errorf("primitives: color %q: want #RGB, #RRGGBB or #RRGGBBAA", s)
	}
	return c, nil
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
