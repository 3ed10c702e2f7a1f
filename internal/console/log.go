package console

import (
	"github.com/harrison/conslog/internal/i18n"
)

// Kind is the severity of a log entry. The set is closed: every kind maps
// to a fixed terminal color and a fixed short label.
type Kind int

const (
	KindError Kind = iota
	KindWarning
	KindNote
)

// colorNum returns the ANSI foreground color wrapped around the bracketed
// kind label on terminal output.
func (k Kind) colorNum() int {
	switch k {
	case KindError:
		return 31
	case KindWarning:
		return 33
	default:
		return 34
	}
}

// name returns the short label shown inside the brackets.
func (k Kind) name() string {
	switch k {
	case KindError:
		return "err"
	case KindWarning:
		return "warn"
	default:
		return "note"
	}
}

// Translator is a unit of text resolved against a language code at render
// time. Implementations carry their interpolation data bound at
// construction, must resolve for every recognized code, and yield
// i18n.ErrUnknownLanguage for any other code. Resolution is pure.
type Translator interface {
	Translate(lang string) (string, error)
}

// Text is a catalog-backed Translator: a message key plus optional template
// data substituted verbatim into the locale's template.
type Text struct {
	Key  string
	Data map[string]any
}

func (t Text) Translate(lang string) (string, error) {
	return i18n.Default().Render(lang, t.Key, t.Data)
}

// Literal resolves to itself for every recognized language code. It is the
// escape hatch for text that has no catalog entry, such as foreign error
// strings routed through Consume.
type Literal string

func (l Literal) Translate(lang string) (string, error) {
	if !i18n.Default().Recognized(lang) {
		return "", i18n.ErrUnknownLanguage
	}
	return string(l), nil
}

// Log is one diagnostic entry: a severity, a title and zero or more
// description lines. Entries are immutable once constructed.
type Log struct {
	kind  Kind
	title Translator
	descs []Translator
}

// NewLog constructs a log entry from a severity, a title node and any
// number of description nodes. This is the constructor producers use.
func NewLog(kind Kind, title Translator, descs ...Translator) Log {
	return Log{
		kind:  kind,
		title: title,
		descs: append([]Translator(nil), descs...),
	}
}

// Kind returns the entry's severity.
func (l Log) Kind() Kind {
	return l.kind
}
