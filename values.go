package elements

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// parseInt reads a leading base-10 integer, ignoring surrounding spaces and
// any trailing unit such as "px". "42px" is 42; "px" is an error.
func parseInt(s string) (int, error) {
	t := strings.TrimSpace(s)
	end := 0
	if end < len(t) && (t[end] == '-' || t[end] == '+') {
		end++
	}
	digits := end
	for end < len(t) && t[end] >= '0' && t[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("parse int %q: no digits", s)
	}
	n, err := strconv.Atoi(t[:end])
	if err != nil {
		return 0, fmt.Errorf("parse int %q: %w", s, err)
	}
	return n, nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse float %q: %w", s, err)
	}
	return f, nil
}

func parsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "absolute":
		return PositionAbsolute, nil
	case "inline":
		return PositionInline, nil
	}
	return PositionAbsolute, fmt.Errorf("unknown position %q", s)
}

func clamp01(f float64) float64 {
	return min(max(f, 0), 1)
}

var namedColors = map[string]color.NRGBA{
	"transparent": {},
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"red":         {255, 0, 0, 255},
	"green":       {0, 128, 0, 255},
	"blue":        {0, 0, 255, 255},
	"gray":        {128, 128, 128, 255},
	"cyan":        {0, 255, 255, 255},
}

// parseColor accepts #rgb, #rrggbb, #rrggbbaa, rgb(r, g, b), rgba(r, g, b, a)
// and a few named colors.
func parseColor(s string) (color.NRGBA, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[t]; ok {
		return c, nil
	}
	switch {
	case strings.HasPrefix(t, "#"):
		return parseHexColor(t[1:])
	case strings.HasPrefix(t, "rgba(") && strings.HasSuffix(t, ")"):
		return parseRGBFunc(t[5:len(t)-1], true)
	case strings.HasPrefix(t, "rgb(") && strings.HasSuffix(t, ")"):
		return parseRGBFunc(t[4:len(t)-1], false)
	}
	return color.NRGBA{}, fmt.Errorf("parse color %q: unknown format", s)
}

func parseHexColor(h string) (color.NRGBA, error) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("parse color #%s: bad length", h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color #%s: %w", h, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func parseRGBFunc(args string, alpha bool) (color.NRGBA, error) {
	parts := strings.Split(args, ",")
	want := 3
	if alpha {
		want = 4
	}
	if len(parts) != want {
		return color.NRGBA{}, fmt.Errorf("parse color: want %d components, got %d", want, len(parts))
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("parse color component %d: %w", i, err)
		}
		ch[i] = uint8(min(max(n, 0), 255))
	}
	a := uint8(255)
	if alpha {
		f, err := parseFloat(parts[3])
		if err != nil {
			return color.NRGBA{}, err
		}
		a = uint8(clamp01(f)*255 + 0.5)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: a}, nil
}
