// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtemplate

package pathtemplate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// formatSpec is a parsed "[[fill]align][sign][#][0][width][,|_][.precision][type]" spec.
type formatSpec struct {
	fill      rune
	align     byte
	sign      byte
	grouping  byte
	verb      byte
	width     int
	precision int
	alt       bool
	// zero reports '=' alignment implied by a leading "0" flag.
	zero bool
}

// parseFormatSpec parses one format spec. Empty spec is valid and renders plain text.
func parseFormatSpec(spec string) (formatSpec, error) {
	fs := formatSpec{fill: ' ', precision: -1}
	rs := []rune(spec)
	i := 0

	if len(rs) >= 2 && isAlign(rs[1]) {
		fs.fill, fs.align = rs[0], byte(rs[1])
		i = 2
	} else if len(rs) >= 1 && isAlign(rs[0]) {
		fs.align = byte(rs[0])
		i = 1
	}

	if i < len(rs) && (rs[i] == '+' || rs[i] == '-' || rs[i] == ' ') {
		fs.sign = byte(rs[i])
		i++
	}

	if i < len(rs) && rs[i] == '#' {
		fs.alt = true
		i++
	}

	if i < len(rs) && rs[i] == '0' {
		if fs.align == 0 {
			fs.fill, fs.align, fs.zero = '0', '=', true
		}
		i++
	}

	start := i
	for i < len(rs) && rs[i] >= '0' && rs[i] <= '9' {
		i++
	}

	if i > start {
		w, err := strconv.Atoi(string(rs[start:i]))
		if err != nil {
			return formatSpec{}, fmt.Errorf("%w: width in %q", ErrInvalidFormat, spec)
		}
		fs.width = w
	}

	if i < len(rs) && (rs[i] == ',' || rs[i] == '_') {
		fs.grouping = byte(rs[i])
		i++
	}

	if i < len(rs) && rs[i] == '.' {
		i++
		start = i
		for i < len(rs) && rs[i] >= '0' && rs[i] <= '9' {
			i++
		}

		if i == start {
			return formatSpec{}, fmt.Errorf("%w: missing precision in %q", ErrInvalidFormat, spec)
		}

		p, err := strconv.Atoi(string(rs[start:i]))
		if err != nil {
			return formatSpec{}, fmt.Errorf("%w: precision in %q", ErrInvalidFormat, spec)
		}
		fs.precision = p
	}

	if i < len(rs) {
		if !strings.ContainsRune("sdboxXceEfFgG%", rs[i]) {
			return formatSpec{}, fmt.Errorf("%w: unknown type %q in %q", ErrInvalidFormat, rs[i], spec)
		}
		fs.verb = byte(rs[i])
		i++
	}

	if i != len(rs) {
		return formatSpec{}, fmt.Errorf("%w: trailing characters in %q", ErrInvalidFormat, spec)
	}

	return fs, nil
}

func isAlign(r rune) bool {
	return r == '<' || r == '>' || r == '^' || r == '='
}

// formatValue renders value through spec.
func formatValue(value any, spec string) (string, error) {
	if spec == "" {
		return fmt.Sprint(value), nil
	}

	fs, err := parseFormatSpec(spec)
	if err != nil {
		return "", err
	}

	return fs.render(value)
}

// render produces the padded text for value.
func (fs formatSpec) render(value any) (string, error) {
	neg, mag, isInt := integerOf(value)
	f, isFloat := floatOf(value)

	var sign, prefix, body string
	numeric := true

	switch fs.verb {
	case 'd', 'b', 'o', 'x', 'X', 'c':
		if !isInt {
			if !isFloat || f != math.Trunc(f) || math.IsInf(f, 0) || math.Abs(f) >= 1<<63 {
				return "", fmt.Errorf("%w: %q needs an integer, got %T", ErrInvalidFormat, fs.verb, value)
			}
			neg, mag = f < 0, uint64(math.Abs(f))
		}

		if fs.verb == 'c' {
			if neg || mag > utf8.MaxRune {
				return "", fmt.Errorf("%w: %d is not a character", ErrInvalidFormat, mag)
			}
			body, numeric = string(rune(mag)), false
			break
		}

		body, prefix = fs.formatInteger(mag)
		sign = fs.signOf(neg)
	case 'e', 'E', 'f', 'F', 'g', 'G', '%':
		if !isFloat {
			return "", fmt.Errorf("%w: %q needs a number, got %T", ErrInvalidFormat, fs.verb, value)
		}

		body = fs.formatFloat(math.Abs(f))
		sign = fs.signOf(math.Signbit(f) && f != 0)
	case 's':
		body, numeric = fmt.Sprint(value), false
		if fs.precision >= 0 && utf8.RuneCountInString(body) > fs.precision {
			body = string([]rune(body)[:fs.precision])
		}
	default:
		switch {
		case isInt:
			body, prefix = fs.formatInteger(mag)
			sign = fs.signOf(neg)
		case isFloat:
			body = fs.formatFloat(math.Abs(f))
			sign = fs.signOf(math.Signbit(f) && f != 0)
		default:
			body, numeric = fmt.Sprint(value), false
			if fs.precision >= 0 && utf8.RuneCountInString(body) > fs.precision {
				body = string([]rune(body)[:fs.precision])
			}
		}
	}

	return fs.pad(sign, prefix, body, numeric)
}

// formatInteger renders magnitude in the spec base with optional grouping and prefix.
func (fs formatSpec) formatInteger(mag uint64) (string, string) {
	base, prefix, group := 10, "", 3
	switch fs.verb {
	case 'b':
		base, prefix, group = 2, "0b", 4
	case 'o':
		base, prefix, group = 8, "0o", 4
	case 'x', 'X':
		base, prefix, group = 16, "0x", 4
	}

	body := strconv.FormatUint(mag, base)
	if fs.verb == 'X' {
		body = strings.ToUpper(body)
		prefix = "0X"
	}

	if fs.grouping != 0 {
		body = groupDigits(body, group, fs.grouping)
	}

	if !fs.alt {
		prefix = ""
	}

	return body, prefix
}

// formatFloat renders a non-negative float for float verbs.
func (fs formatSpec) formatFloat(f float64) string {
	prec := fs.precision
	var body string

	switch fs.verb {
	case 'e', 'E':
		if prec < 0 {
			prec = 6
		}
		body = strconv.FormatFloat(f, 'e', prec, 64)
	case 'f', 'F':
		if prec < 0 {
			prec = 6
		}
		body = strconv.FormatFloat(f, 'f', prec, 64)
	case '%':
		if prec < 0 {
			prec = 6
		}
		body = strconv.FormatFloat(f*100, 'f', prec, 64)
	case 'g', 'G':
		if prec < 0 {
			prec = 6
		}
		if prec == 0 {
			prec = 1
		}
		body = strconv.FormatFloat(f, 'g', prec, 64)
	default:
		body = strconv.FormatFloat(f, 'g', prec, 64)
	}

	if fs.verb == 'E' || fs.verb == 'G' || fs.verb == 'F' {
		body = strings.ToUpper(body)
	}

	if fs.grouping != 0 {
		intPart, rest := body, ""
		if idx := strings.IndexAny(body, ".eE"); idx >= 0 {
			intPart, rest = body[:idx], body[idx:]
		}
		body = groupDigits(intPart, 3, fs.grouping) + rest
	}

	if fs.verb == '%' {
		body += "%"
	}

	return body
}

// signOf returns the sign prefix for the spec sign option.
func (fs formatSpec) signOf(neg bool) string {
	switch {
	case neg:
		return "-"
	case fs.sign == '+':
		return "+"
	case fs.sign == ' ':
		return " "
	default:
		return ""
	}
}

// pad applies width, fill and alignment.
func (fs formatSpec) pad(sign, prefix, body string, numeric bool) (string, error) {
	text := sign + prefix + body
	n := fs.width - utf8.RuneCountInString(text)
	if n <= 0 {
		return text, nil
	}

	align := fs.align
	if align == 0 {
		align = '<'
		if numeric {
			align = '>'
		}
	}

	fill := strings.Repeat(string(fs.fill), n)
	switch align {
	case '<':
		return text + fill, nil
	case '>':
		return fill + text, nil
	case '^':
		left := n / 2
		return strings.Repeat(string(fs.fill), left) + text + strings.Repeat(string(fs.fill), n-left), nil
	default:
		if !numeric && fs.zero {
			return text + fill, nil
		}

		if !numeric {
			return "", fmt.Errorf("%w: '=' alignment needs a number", ErrInvalidFormat)
		}
		return sign + prefix + fill + body, nil
	}
}

// groupDigits inserts sep every size digits counting from the right.
func groupDigits(digits string, size int, sep byte) string {
	if len(digits) <= size {
		return digits
	}

	var b strings.Builder
	head := len(digits) % size
	if head > 0 {
		b.WriteString(digits[:head])
	}

	for i := head; i < len(digits); i += size {
		if b.Len() > 0 {
			b.WriteByte(sep)
		}
		b.WriteString(digits[i : i+size])
	}

	return b.String()
}

// integerOf reports sign and magnitude of Go integer kinds.
func integerOf(value any) (bool, uint64, bool) {
	switch v := value.(type) {
	case int:
		return signedMag(int64(v))
	case int8:
		return signedMag(int64(v))
	case int16:
		return signedMag(int64(v))
	case int32:
		return signedMag(int64(v))
	case int64:
		return signedMag(v)
	case uint:
		return false, uint64(v), true
	case uint8:
		return false, uint64(v), true
	case uint16:
		return false, uint64(v), true
	case uint32:
		return false, uint64(v), true
	case uint64:
		return false, v, true
	default:
		return false, 0, false
	}
}

func signedMag(v int64) (bool, uint64, bool) {
	if v < 0 {
		return true, uint64(-(v + 1)) + 1, true
	}

	return false, uint64(v), true
}

// floatOf converts numeric kinds to float64.
func floatOf(value any) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}

	neg, mag, ok := integerOf(value)
	if !ok {
		return 0, false
	}

	if neg {
		return -float64(mag), true
	}

	return float64(mag), true
}
