// Package codec encodes logical records to single lines of a
// comma-delimited file and parses them back. Numeric and date fields
// use one canonical, locale-independent rendering in both directions.
package codec

import (
	"strings"
	"time"

	"github.com/safar/go-csv-store/internal/models"
	"github.com/shopspring/decimal"
)

const TimeLayout = "2006-01-02 15:04:05"

const addressSeparator = "|"

// EncodeLine joins fields into one line. A field containing the
// delimiter, a quote or a line break is wrapped in quotes, with
// embedded quotes doubled.
func EncodeLine(fields []string) string {
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		if strings.ContainsAny(field, ",\"\n\r") {
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		} else {
			b.WriteString(field)
		}
	}
	return b.String()
}

// ParseLine splits one line into fields, honoring quoting. A doubled
// quote inside a quoted field becomes one literal quote; an unquoted
// comma ends the field. Fields are trimmed of surrounding whitespace
// after unquoting.
func ParseLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}

// FormatDecimal renders a decimal with a period separator and exactly
// two fraction digits, regardless of host locale.
func FormatDecimal(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ParseDecimal accepts the canonical period format and, for files
// written by older builds, a decimal comma. A malformed value decodes
// to zero rather than failing the whole load.
func ParseDecimal(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseTime decodes a timestamp in the fixed layout; a malformed or
// empty value falls back to the current time.
func ParseTime(s string) time.Time {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Now()
	}
	return t
}

// FormatAddress flattens an address into one pipe-delimited field.
// The result is still subject to EncodeLine's outer quoting.
func FormatAddress(a models.Address) string {
	return strings.Join([]string{a.Street, a.Number, a.Neighborhood, a.City, a.State, a.ZipCode}, addressSeparator)
}

// ParseAddress splits a flattened address. Anything with fewer than
// six sub-fields yields the zero address.
func ParseAddress(s string) models.Address {
	parts := strings.Split(s, addressSeparator)
	if len(parts) < 6 {
		return models.Address{}
	}
	return models.Address{
		Street:       parts[0],
		Number:       parts[1],
		Neighborhood: parts[2],
		City:         parts[3],
		State:        parts[4],
		ZipCode:      parts[5],
	}
}
