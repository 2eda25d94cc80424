package store

// Store is the capability set spec §4.7 requires the core to export. The
// store never parses event semantics beyond what Meta records.
type Store interface {
	PutEvent(raw []byte, enc Encoding) (string, Meta, error)
	GetEvent(said string) ([]byte, Meta, bool)

	PutKELEvent(raw []byte, enc Encoding) (string, Meta, error)
	ListKEL(aid string, from, to *uint64) ([]Meta, error)
	GetKELHead(aid string) (string, bool)
	SetKELHead(aid, said string) error

	PutTELEvent(raw []byte, enc Encoding) (string, Meta, error)
	ListTEL(ri string, from, to *uint64) ([]Meta, error)
	GetTELHead(ri string) (string, bool)
	SetTELHead(ri, said string) error

	PutACDC(raw []byte) (string, error)
	GetACDC(said string) ([]byte, bool)

	PutSchema(raw []byte) (string, error)
	GetSchema(said string) ([]byte, bool)

	PutAlias(scope Scope, said, alias string) error
	GetAliasSAID(scope Scope, alias string) (string, bool)
	GetSAIDAlias(scope Scope, said string) (string, bool)
	ListAliases(scope Scope) map[string]string
	DelAlias(scope Scope, alias string) error

	GetByPrior(priorSAID string) []Meta
}
