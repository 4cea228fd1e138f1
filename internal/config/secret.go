package config

const redacted = "**********"

// Secret holds a sensitive setting. Every formatting path prints a mask;
// Value is the only way to read the clear text.
type Secret string

func (s Secret) Value() string {
	return string(s)
}

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

func (s Secret) GoString() string {
	return `config.Secret("` + s.String() + `")`
}

func (s Secret) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
