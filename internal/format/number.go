package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Number renders n with comma thousands separators, e.g. 32032284 -> "32,032,284"
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}
