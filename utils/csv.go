package utils

import (
	"bytes"
	"regexp"
	"strings"
)

const utf8BOM = "\ufeff"

// CSV renders header and rows as UTF-8 text with a BOM, every field double
// quoted. It returns nil when there are no rows so callers can skip the export.
func CSV(header []string, rows [][]string) []byte {
	if len(rows) == 0 {
		return nil
	}
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	buf.WriteString(strings.Join(header, ","))
	buf.WriteByte('\n')
	for _, row := range rows {
		for i, field := range row {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			buf.WriteString(strings.ReplaceAll(field, `"`, `""`))
			buf.WriteByte('"')
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

var (
	espacios        = regexp.MustCompile(`\s+`)
	noPermitidosFil = regexp.MustCompile(`[/\\:*?"<>|]`)
)

// SanitizarNombreArchivo makes a filter value safe to embed in a file name:
// whitespace runs become sep and path or reserved characters are dropped.
func SanitizarNombreArchivo(s, sep string) string {
	s = noPermitidosFil.ReplaceAllString(strings.TrimSpace(s), "")
	return espacios.ReplaceAllString(s, sep)
}
