package params

import (
	"fmt"
	"strconv"
	"strings"
)

// truthy is the accepted spelling set for bool literals, case-insensitive.
var truthy = map[string]struct{}{
	"true": {},
	"1":    {},
	"yes":  {},
	"on":   {},
}

// coerceDefault converts a raw default literal into the semantic value its
// type declares. An absent literal yields the type's zero default. A number
// literal parses as int unless it contains a decimal point; parse failures
// warn and fall back to 0. Color literals gain a leading # when missing.
func (p *Parser) coerceDefault(name string, declared Type, literal string) any {
	if literal == "" {
		switch declared {
		case TypeNumber:
			return 0
		case TypeColor:
			return "#000000"
		case TypeBool:
			return false
		default:
			return ""
		}
	}

	switch declared {
	case TypeNumber:
		if strings.Contains(literal, ".") {
			f, err := strconv.ParseFloat(literal, 64)
			if err != nil {
				p.logger.Warn("invalid number default, using 0", "param", name, "value", literal)
				return 0
			}
			return f
		}
		n, err := strconv.Atoi(literal)
		if err != nil {
			p.logger.Warn("invalid number default, using 0", "param", name, "value", literal)
			return 0
		}
		return n

	case TypeBool:
		_, ok := truthy[strings.ToLower(literal)]
		return ok

	case TypeColor:
		if strings.HasPrefix(literal, "#") {
			return literal
		}
		return "#" + literal

	default:
		return literal
	}
}

// Stringify renders a context value into the text form placeholders expect.
// Booleans become the literal lowercase words so markup consumers (CSS
// classes, JS attributes) see true/false rather than a Go spelling; nil
// becomes the empty string; everything else takes its natural string form.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}
