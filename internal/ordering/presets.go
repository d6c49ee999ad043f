package ordering

import "strings"

// FindPreset looks a preset up by name, ignoring case and surrounding space.
func FindPreset(presets []OptionPreset, name string) (OptionPreset, bool) {
	name = strings.TrimSpace(name)
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return OptionPreset{}, false
}

// AppendOption joins text onto a personal option as "<current>, <text>".
// Text that is already one of the parts is not repeated.
func AppendOption(current, text string) string {
	current = strings.TrimSpace(current)
	text = strings.TrimSpace(text)
	if text == "" {
		return current
	}
	if current == "" {
		return text
	}
	for _, part := range strings.Split(current, ",") {
		if strings.EqualFold(strings.TrimSpace(part), text) {
			return current
		}
	}
	return current + ", " + text
}
