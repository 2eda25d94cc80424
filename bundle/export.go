package bundle

import "github.com/aaronp/kerits-sub005/store"

// ExportKEL builds a kel-typed bundle from every event in aid's chain.
func ExportKEL(s store.Store, aid, scope, createdAt string) (Bundle, error) {
	metas, err := s.ListKEL(aid, nil, nil)
	if err != nil {
		return Bundle{}, err
	}
	return exportMetas(s, TypeKEL, metas, scope, createdAt)
}

// ExportTEL builds a tel-typed bundle from every event in registry ri's
// chain (vcp/ixn/vrt only; credential iss/rev events key by the
// credential's own SAID and are not addressed by this call).
func ExportTEL(s store.Store, ri, scope, createdAt string) (Bundle, error) {
	metas, err := s.ListTEL(ri, nil, nil)
	if err != nil {
		return Bundle{}, err
	}
	return exportMetas(s, TypeTEL, metas, scope, createdAt)
}

// ExportACDC builds a single-event acdc-typed bundle for credential said.
func ExportACDC(s store.Store, said, scope, createdAt string) (Bundle, error) {
	raw, ok := s.GetACDC(said)
	if !ok {
		return Bundle{}, ErrEmptyBundle
	}
	return Bundle{
		Type:     TypeACDC,
		Metadata: Metadata{Scope: scope, CreatedAt: createdAt},
		Events:   [][]byte{raw},
	}, nil
}

func exportMetas(s store.Store, t Type, metas []store.Meta, scope, createdAt string) (Bundle, error) {
	if len(metas) == 0 {
		return Bundle{}, ErrEmptyBundle
	}
	events := make([][]byte, 0, len(metas))
	for _, m := range metas {
		raw, _, ok := s.GetEvent(m.SAID)
		if !ok {
			continue
		}
		events = append(events, raw)
	}
	return Bundle{
		Type:     t,
		Metadata: Metadata{Scope: scope, CreatedAt: createdAt},
		Events:   events,
	}, nil
}
