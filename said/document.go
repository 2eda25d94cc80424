package said

// Doc is an insertion-ordered JSON object. Builders append fields in
// canonical field order; Doc never reorders them, which is what makes its
// serialization reproducible for SAID computation (spec §4.1: "key order =
// insertion order of the builder").
type Doc struct {
	keys []string
	vals map[string]any
}

// NewDoc returns an empty ordered document.
func NewDoc() *Doc {
	return &Doc{vals: make(map[string]any)}
}

// Set appends key with value if it is new, or overwrites the value in
// place (preserving its original position) if key already exists.
func (d *Doc) Set(key string, value any) *Doc {
	if _, ok := d.vals[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = value
	return d
}

// Get returns the value at key and whether it was present.
func (d *Doc) Get(key string) (any, bool) {
	v, ok := d.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (d *Doc) Has(key string) bool {
	_, ok := d.vals[key]
	return ok
}

// Delete removes key, if present.
func (d *Doc) Delete(key string) {
	if _, ok := d.vals[key]; !ok {
		return
	}
	delete(d.vals, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the fields in insertion order.
func (d *Doc) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Clone returns a deep-enough copy for re-saidification: top-level keys are
// independent, nested *Doc and []any values are shared by reference since
// saidify only ever replaces top-level placeholder labels.
func (d *Doc) Clone() *Doc {
	c := NewDoc()
	for _, k := range d.keys {
		c.Set(k, d.vals[k])
	}
	return c
}
