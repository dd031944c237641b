package codec

import (
	"testing"
	"time"

	"github.com/safar/go-csv-store/internal/models"
	"github.com/shopspring/decimal"
)

func TestEncodeLineQuoting(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		want   string
	}{
		{"plain", []string{"1", "a", "b"}, "1,a,b"},
		{"embedded delimiter", []string{"1", "cheese, lettuce"}, `1,"cheese, lettuce"`},
		{"embedded quote", []string{`Burger "Deluxe"`}, `"Burger ""Deluxe"""`},
		{"embedded pipe untouched", []string{"Main St|42|Center"}, "Main St|42|Center"},
		{"empty fields", []string{"", "", ""}, ",,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeLine(tt.fields); got != tt.want {
				t.Errorf("EncodeLine(%q) = %q, want %q", tt.fields, got, tt.want)
			}
		})
	}
}

func TestParseLineRoundTrip(t *testing.T) {
	tests := [][]string{
		{"1", "alice@example.com", "Alice", "555-0100"},
		{"2", "cheese, lettuce and tomato", "plain"},
		{`Burger "Deluxe"`, `quotes "in" the, middle`},
		{"Main St|42|Center|Springfield|SP|01000-000"},
		{"line\nbreak", "after"},
		{"", "empty first", ""},
	}

	for _, fields := range tests {
		got := ParseLine(EncodeLine(fields))
		if len(got) != len(fields) {
			t.Fatalf("round trip of %q: got %d fields, want %d", fields, len(got), len(fields))
		}
		for i := range fields {
			if got[i] != fields[i] {
				t.Errorf("round trip of %q: field %d = %q, want %q", fields, i, got[i], fields[i])
			}
		}
	}
}

func TestParseLineTrimsWhitespace(t *testing.T) {
	got := ParseLine(" 1 ,  alice@example.com , Alice ")
	want := []string{"1", "alice@example.com", "Alice"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFormatDecimal(t *testing.T) {
	if got := FormatDecimal(decimal.RequireFromString("12.5")); got != "12.50" {
		t.Errorf("FormatDecimal(12.5) = %q, want %q", got, "12.50")
	}
	if got := FormatDecimal(decimal.Zero); got != "0.00" {
		t.Errorf("FormatDecimal(0) = %q, want %q", got, "0.00")
	}
}

func TestParseDecimal(t *testing.T) {
	if got := ParseDecimal("12.50"); !got.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("ParseDecimal(12.50) = %s", got)
	}

	// Older builds wrote a decimal comma depending on host locale.
	if got := ParseDecimal("12,50"); !got.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("ParseDecimal(12,50) = %s", got)
	}

	if got := ParseDecimal("not-a-number"); !got.Equal(decimal.Zero) {
		t.Errorf("ParseDecimal(garbage) = %s, want 0", got)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	when := time.Date(2024, 3, 15, 18, 30, 5, 0, time.UTC)
	got := ParseTime(FormatTime(when))
	if !got.Equal(when) {
		t.Errorf("round trip = %v, want %v", got, when)
	}
}

func TestParseTimeFallsBackToNow(t *testing.T) {
	before := time.Now().Add(-time.Second)
	got := ParseTime("garbage")
	if got.Before(before) {
		t.Errorf("ParseTime(garbage) = %v, expected a current timestamp", got)
	}
}

func TestAddressRoundTrip(t *testing.T) {
	addr := models.Address{
		Street:       "Main St",
		Number:       "42",
		Neighborhood: "Center",
		City:         "Springfield",
		State:        "SP",
		ZipCode:      "01000-000",
	}

	got := ParseAddress(FormatAddress(addr))
	if got != addr {
		t.Errorf("round trip = %+v, want %+v", got, addr)
	}
}

func TestParseAddressShortInput(t *testing.T) {
	if got := ParseAddress("Main St|42"); got != (models.Address{}) {
		t.Errorf("ParseAddress(short) = %+v, want zero address", got)
	}
	if got := ParseAddress(""); got != (models.Address{}) {
		t.Errorf("ParseAddress(empty) = %+v, want zero address", got)
	}
}
