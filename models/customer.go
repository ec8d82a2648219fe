package models

// Customer maps customer form field names to their trimmed values.
type Customer map[string]string

// Field returns the value of name, or "" when absent.
func (c Customer) Field(name string) string {
	if c == nil {
		return ""
	}
	return c[name]
}
