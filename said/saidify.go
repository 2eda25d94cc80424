package said

import (
	"github.com/aaronp/kerits-sub005/codec"
	"github.com/aaronp/kerits-sub005/config"
)

// Saidify computes the self-addressing identifier of doc and writes it back
// into every target label (spec §4.2):
//
//  1. replace each target label's value with the 44-character placeholder;
//  2. if doc carries a version field, measure the canonical size with the
//     placeholder(s) in place, rewrite the version field's size component
//     to that measured size (spec §3: "Version string" — size is filled in
//     after placeholder substitution but before the SAID digest, so the
//     SAID covers the size);
//  3. serialize canonically and digest the result;
//  4. write the resulting SAID back into every target label.
//
// Saidify is pure and idempotent: Saidify(Saidify(doc)) == Saidify(doc).
func Saidify(doc *Doc, withOpts ...Option) (string, error) {
	o := newOptions(withOpts...)

	for _, label := range o.labels {
		if !doc.Has(label) {
			return "", ErrMissingLabel
		}
		doc.Set(label, config.SAIDPlaceholder)
	}

	raw, err := Canonicalize(doc)
	if err != nil {
		return "", err
	}

	if doc.Has(o.versionField) {
		measuredSize := len(raw)

		rawVersion, _ := doc.Get(o.versionField)
		versionStr, _ := rawVersion.(string)
		proto, v, kind, _, perr := config.ParseVersionString(versionStr)
		if perr != nil {
			return "", perr
		}
		doc.Set(o.versionField, config.VersionString(proto, v, kind, measuredSize))

		raw, err = Canonicalize(doc)
		if err != nil {
			return "", err
		}
		if len(raw) != measuredSize {
			// the fixed-width placeholder guarantees substitution never
			// changes the size, so this indicates a serializer bug.
			return "", ErrSizeMismatch
		}
	}

	digest, err := codec.Digest(o.code, raw)
	if err != nil {
		return "", err
	}

	for _, label := range o.labels {
		doc.Set(label, digest)
	}

	return digest, nil
}
