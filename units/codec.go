package units

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON implements json.Marshaler, emitting the canonical symbol.
func (u Unit) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(u))
}

// UnmarshalJSON implements json.Unmarshaler. Any registered alias is
// accepted and normalized to the canonical unit; a JSON null decodes to
// None, matching the "no unit" encoding.
func (u *Unit) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = None
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting the canonical symbol.
func (u Unit) MarshalYAML() (any, error) {
	return string(u), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Any registered alias is
// accepted and normalized to the canonical unit; a YAML null decodes to
// None, matching the "no unit" encoding.
func (u *Unit) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*u = None
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
