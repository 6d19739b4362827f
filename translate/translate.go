// Package translate localizes the simulator's diagnostic and console text.
package translate

import (
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// DEFAULT_LOCALE is used when the host reports no preference.
const DEFAULT_LOCALE = "en-US"

var printer *message.Printer

func init() {
	printer = message.NewPrinter(message.MatchLanguage(Locales()...))
}

// Locales returns the host's preferred locales, most preferred first.
func Locales() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("f32sim: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{DEFAULT_LOCALE}
	}

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprintf writes a translated en-US Printf() format to w.
func Fprintf(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	return printer.Fprintf(w, key, args...)
}
