package register

import "strings"

// Parse turns clipboard text into a payload by structure: any newline makes a
// block (rows split on tabs), a tab alone makes a row, anything else is a
// scalar. Trailing line breaks are ignored and CRLF is treated as LF.
// Whitespace-only text yields an empty payload.
func Parse(text string) Payload {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if strings.TrimSpace(text) == "" {
		return Payload{}
	}

	switch {
	case strings.Contains(text, "\n"):
		lines := strings.Split(text, "\n")
		rows := make([][]string, len(lines))
		for i, line := range lines {
			rows[i] = strings.Split(line, "\t")
		}
		return Payload{Kind: KindBlock, Cells: rows}
	case strings.Contains(text, "\t"):
		return Payload{Kind: KindRow, Cells: [][]string{strings.Split(text, "\t")}}
	default:
		return Scalar(text)
	}
}
