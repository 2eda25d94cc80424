package said

import "fmt"

// GetString returns a string field, erroring if absent or of the wrong type.
func (d *Doc) GetString(key string) (string, error) {
	v, ok := d.Get(key)
	if !ok {
		return "", fmt.Errorf("said: field %q missing", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("said: field %q is not a string", key)
	}
	return s, nil
}

// OptString returns a string field or "" if absent.
func (d *Doc) OptString(key string) string {
	v, ok := d.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetStringSlice returns a []string field, accepting both []string (set by
// a builder in-process) and []any (produced by DecodeDoc) whose elements
// are strings.
func (d *Doc) GetStringSlice(key string) ([]string, error) {
	v, ok := d.Get(key)
	if !ok {
		return nil, fmt.Errorf("said: field %q missing", key)
	}
	switch t := v.(type) {
	case []string:
		return t, nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("said: field %q has a non-string element", key)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("said: field %q is not a string array", key)
	}
}

// GetSlice returns a []any field, whatever its element shapes.
func (d *Doc) GetSlice(key string) ([]any, error) {
	v, ok := d.Get(key)
	if !ok {
		return nil, fmt.Errorf("said: field %q missing", key)
	}
	switch t := v.(type) {
	case []any:
		return t, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("said: field %q is not an array", key)
	}
}

// GetDoc returns a nested object field as a *Doc.
func (d *Doc) GetDoc(key string) (*Doc, error) {
	v, ok := d.Get(key)
	if !ok {
		return nil, fmt.Errorf("said: field %q missing", key)
	}
	switch t := v.(type) {
	case *Doc:
		return t, nil
	case Doc:
		return &t, nil
	default:
		return nil, fmt.Errorf("said: field %q is not an object", key)
	}
}
