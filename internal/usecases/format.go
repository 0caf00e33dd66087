package usecases

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// formatRupees renders an amount as ₹1,250.00
func formatRupees(v float64) string {
	return printer.Sprintf("₹%.2f", v)
}

// formatCount renders a count with grouping, e.g. 1,204
func formatCount(n int64) string {
	return printer.Sprintf("%d", n)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}
