package bundle

import "github.com/aaronp/kerits-sub005/said"

// declaredSAID reads raw's `d` field without validating it, so the import
// loop can decide skip-existing before doing any real work.
func declaredSAID(raw []byte) string {
	d, err := said.DecodeDoc(raw)
	if err != nil {
		return ""
	}
	return d.OptString("d")
}
