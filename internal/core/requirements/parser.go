package requirements

import "strings"

// =============================================================================
// Extras Table
// =============================================================================

// ExtrasRule maps a package-name prefix to the single extras tag it may carry.
type ExtrasRule struct {
	Prefix string
	Tag    string
}

// KnownExtras is the closed table of packages whose bracketed extras are understood.
// Any other "name[extra]" spelling is kept verbatim as the package name.
var KnownExtras = []ExtrasRule{
	{Prefix: "python-server-infra", Tag: "api-analytics"},
	{Prefix: "retrain-python-logger", Tag: "starlette"},
}

const pinSeparator = "=="

// =============================================================================
// Parser Functions
// =============================================================================

// Options controls which lines ParseLines considers.
type Options struct {
	// SkipPrefixes drops any line starting with one of these strings.
	SkipPrefixes []string
}

// SplitLines splits file content into lines, accepting \n, \r\n and \r endings.
// A trailing line ending does not produce an extra empty line.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}

// ParsePin parses a single "name==version[ # comment]" line.
// The name is everything before the separator, untouched. The version has
// any "#" comment removed and surrounding whitespace trimmed.
//
// Example:
//
//	pin, err := ParsePin("python-server-infra[api-analytics]==1.2.0  # api")
//	// pin.Name == "python-server-infra"
//	// pin.Constraint == Constraint{Version: "1.2.0", Extras: []string{"api-analytics"}}
func ParsePin(line string) (Pin, error) {
	parts := strings.Split(line, pinSeparator)
	if len(parts) != 2 {
		return Pin{}, NewParseError(0, line, `expected exactly one "==" separator`, ErrMalformedPin)
	}

	name, constraint := resolveExtras(parts[0], cleanVersion(parts[1]))
	return Pin{Name: name, Constraint: constraint}, nil
}

// Each parses pin lines in file order and calls fn for every pin. Blank lines
// and lines starting with "#" are ignored. Iteration stops at the first parse
// error or the first error returned by fn.
func Each(lines []string, opts Options, fn func(Pin) error) error {
	for i, line := range lines {
		if line == "" || line[0] == '#' || hasAnyPrefix(line, opts.SkipPrefixes) {
			continue
		}

		pin, err := ParsePin(line)
		if err != nil {
			if pErr, ok := err.(*ParseError); ok {
				pErr.Line = i + 1
			}
			return err
		}
		if err := fn(pin); err != nil {
			return err
		}
	}
	return nil
}

// ParseLines parses every pin line in file order.
// Duplicates are kept; use ToMap to collapse them.
func ParseLines(lines []string, opts Options) ([]Pin, error) {
	pins := make([]Pin, 0, len(lines))
	err := Each(lines, opts, func(p Pin) error {
		pins = append(pins, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pins, nil
}

// ToMap collapses pins into a Map; later pins overwrite earlier ones.
func ToMap(pins []Pin) *Map {
	m := NewMap()
	for _, p := range pins {
		m.Set(p.Name, p.Constraint)
	}
	return m
}

// cleanVersion drops a trailing "# comment" and surrounding whitespace.
func cleanVersion(raw string) string {
	return strings.TrimSpace(strings.Split(raw, "#")[0])
}

// resolveExtras applies KnownExtras to a raw package name.
func resolveExtras(name, version string) (string, Constraint) {
	constraint := Constraint{Version: version}
	for _, rule := range KnownExtras {
		if strings.HasPrefix(name, rule.Prefix) && strings.Contains(name, "["+rule.Tag+"]") {
			name = rule.Prefix
			constraint.Extras = []string{rule.Tag}
		}
	}
	return name, constraint
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
