package player

import (
	"fmt"
	"strconv"
	"strings"
)

// Option is one engine property assignment from configuration, e.g. "hwdec=auto".
type Option struct {
	Name  string
	Value string
}

// Flag renders the option as an mpv command line flag.
func (o Option) Flag() string {
	return fmt.Sprintf("--%s=%s", o.Name, o.Value)
}

// Typed converts the value to what set_property expects: bool, number or string.
func (o Option) Typed() interface{} {
	switch o.Value {
	case "yes", "true":
		return true
	case "no", "false":
		return false
	}

	if f, err := strconv.ParseFloat(o.Value, 64); err == nil {
		return f
	}

	return o.Value
}

// ParseOption parses "name=value". A bare name means "name=yes".
func ParseOption(raw string) (Option, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "--")

	name, value, found := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)

	if name == "" {
		return Option{}, fmt.Errorf("option %q: empty name", raw)
	}

	if strings.ContainsAny(name, " \t\n\r\x00") {
		return Option{}, fmt.Errorf("option %q: invalid name", raw)
	}

	if !found {
		value = "yes"
	}

	return Option{Name: name, Value: strings.TrimSpace(value)}, nil
}

// ParseOptions parses every entry, failing on the first malformed one.
func ParseOptions(raw []string) ([]Option, error) {
	options := make([]Option, 0, len(raw))
	for _, r := range raw {
		o, err := ParseOption(r)
		if err != nil {
			return nil, err
		}
		options = append(options, o)
	}

	return options, nil
}
