package verify

import "github.com/aaronp/kerits-sub005/said"

// Event re-derives raw's SAID (and, when the document is self-addressing —
// its declared `i` already equals its declared `d` — its `i` too) and
// compares against the stored values. It never reparses event semantics
// beyond the `d`/`i` fields: that is event/tel's job.
func Event(raw []byte) error {
	d, err := said.DecodeDoc(raw)
	if err != nil {
		return ErrSAIDMismatch
	}
	declaredD := d.OptString("d")
	if declaredD == "" {
		return ErrSAIDMismatch
	}

	selfAddressing := d.Has("i") && d.OptString("i") == declaredD
	declaredI := d.OptString("i")

	clone := d.Clone()
	var recomputed string
	if selfAddressing {
		recomputed, err = said.Saidify(clone, said.WithLabel("i"))
	} else {
		recomputed, err = said.Saidify(clone)
	}
	if err != nil {
		return ErrSAIDMismatch
	}
	if recomputed != declaredD {
		return ErrSAIDMismatch
	}
	if selfAddressing && recomputed != declaredI {
		return ErrSAIDMismatch
	}
	return nil
}
