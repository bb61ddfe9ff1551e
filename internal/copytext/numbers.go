package copytext

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCount renders a counter with thousands separators ("36,400")
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}
