package generator

import (
	"strconv"
	"strings"
)

const hexDigits = "0123456789abcdef"

// EncodedString escapes s into a quoted C++ string literal: \n, \t,
// quote and backslash escapes, \xHH for bytes outside printable ASCII
// with a "" break before a resumed printable run, soft-wrapped with a
// line continuation past roughly 80 output columns.
func EncodedString(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)

	const lineBreak = "\\\n"
	hexing := false
	startOnNewLine := false
	lastCut := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if b.Len()-lastCut > 80 {
			startOnNewLine = true
			b.WriteString(lineBreak)
			lastCut = b.Len()
		}
		switch {
		case ch == '\n':
			hexing = false
			b.WriteString(`\n`)
		case ch == '\t':
			hexing = false
			b.WriteString(`\t`)
		case ch == '"' || ch == '\\':
			hexing = false
			b.WriteByte('\\')
			b.WriteByte(ch)
		case ch < 32 || ch > 127:
			hexing = true
			b.WriteString(`\x`)
			b.WriteByte(hexDigits[ch>>4])
			b.WriteByte(hexDigits[ch&0x0f])
		default:
			if hexing {
				// Break the literal so the hex escape can't swallow a
				// printable hex digit that follows it.
				hexing = false
				b.WriteString(`""`)
			}
			b.WriteByte(ch)
		}
	}

	prefix := `"`
	if startOnNewLine {
		prefix += lineBreak
	}

	return prefix + b.String() + `"`
}

// BinaryArray renders a byte blob as a C++ aggregate of two-digit
// lowercase hex byte literals, 13 per row.
func BinaryArray(data []byte) string {
	var rows []string
	chars := make([]string, 0, 13)
	for _, ch := range data {
		if len(chars) > 12 {
			rows = append(rows, strings.Join(chars, ", "))
			chars = chars[:0]
		}
		chars = append(chars, "0x"+string(hexDigits[ch>>4])+string(hexDigits[ch&0x0f]))
	}
	if len(chars) != 0 {
		rows = append(rows, strings.Join(chars, ", "))
	}

	separator := " "
	if len(rows) > 1 {
		separator = "\n"
	}

	return "{" + separator + strings.Join(rows, ",\n") + " }"
}

// pxValueName names the shared scaled constant for a pixel value:
// "px12" for 12, "pxm12" for -12.
func pxValueName(value int) string {
	prefix := "px"
	if value < 0 {
		value = -value
		prefix += "m"
	}

	return prefix + strconv.Itoa(value)
}
