package utils

import (
	"fmt"
	"time"
)

// Indonesian month names, January first.
var monthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthYearLabel formats a period the way the dashboard labels it,
// e.g. "Agustus 2026".
func MonthYearLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", monthNames[month-1], year)
}

// FormatDateTimeID formats a timestamp in the Indonesian day-first style
// used by the export sheets. Nil timestamps format as the empty string.
func FormatDateTimeID(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006 15.04.05")
}

// FormatDateID formats just the date portion, day first.
func FormatDateID(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}
