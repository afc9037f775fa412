// Package inflect maps resource field names to wire-format keys.
//
// A resource schema resolves exactly one Mode at declaration time, and both
// conversion directions run every field name through Convert with that mode.
// Using the same function on both sides is what guarantees the serializer
// emits the keys the deserializer looks up.
package inflect

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// Mode is a key-naming convention applied when mapping field names to
// wire-format keys.
type Mode string

const (
	// None leaves field names untouched.
	None Mode = "none"
	// Camel renders keys as camelCase.
	Camel Mode = "camel"
	// Pascal renders keys as PascalCase.
	Pascal Mode = "pascal"
	// Snake renders keys as snake_case.
	Snake Mode = "snake"
	// Kebab renders keys as kebab-case.
	Kebab Mode = "kebab"
)

// ParseMode validates a mode name. The empty string resolves to None so
// callers can pass through unset configuration values directly.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case None, "":
		return None, nil
	case Camel:
		return Camel, nil
	case Pascal:
		return Pascal, nil
	case Snake:
		return Snake, nil
	case Kebab:
		return Kebab, nil
	default:
		return None, fmt.Errorf("unknown inflect mode %q: must be 'camel', 'pascal', 'snake', 'kebab', or 'none'", s)
	}
}

// Convert transforms a field name into its wire-format key for the given
// mode. It is pure and total over the five modes; None is the identity.
func Convert(name string, mode Mode) string {
	switch mode {
	case Camel:
		return strcase.ToLowerCamel(name)
	case Pascal:
		return strcase.ToCamel(name)
	case Snake:
		return strcase.ToSnake(name)
	case Kebab:
		return strcase.ToKebab(name)
	default:
		return name
	}
}
