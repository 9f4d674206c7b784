// Package greeting says hello and goodbye in a few languages.
package greeting

import "fmt"

// Sayer greets people in one language.
type Sayer struct {
	lang string
}

// New returns a Sayer for lang. "en" and "sv" are known;
// any other tag falls back to Esperanto.
func New(lang string) *Sayer {
	return &Sayer{lang: lang}
}

// Lang returns the language tag the Sayer was created with.
func (s *Sayer) Lang() string { return s.lang }

// Hello returns "<hello>, <name>".
func (s *Sayer) Hello(name string) string {
	return fmt.Sprintf("%s, %s", s.helloPhrase(), name)
}

// Goodbye returns "<goodbye>, <name>".
func (s *Sayer) Goodbye(name string) string {
	return fmt.Sprintf("%s, %s", s.goodbyePhrase(), name)
}

func (s *Sayer) helloPhrase() string {
	switch s.lang {
	case "en":
		return "Hello"
	case "sv":
		return "Hej"
	default:
		return "Saluton" // Esperanto
	}
}

func (s *Sayer) goodbyePhrase() string {
	switch s.lang {
	case "en":
		return "Goodbye"
	case "sv":
		return "Hejdå"
	default:
		return "Adiaŭ" // Esperanto
	}
}
