package store

import (
	"sort"
	"strconv"
	"sync"

	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/aaronp/kerits-sub005/said"
)

// Memory is an in-memory reference implementation of Store. It is a
// reference backend, not a mandated persistence format (spec §1 Non-goals);
// any backend satisfying the Store contract and the key layout in keys.go
// is equally legal.
type Memory struct {
	mu sync.RWMutex

	raw   map[string][]byte
	metas map[string]Meta

	kelIndex map[string][]string // aid -> ordered SAIDs by seq
	telIndex map[string][]string // ri -> ordered SAIDs by seq
	kelHeads map[string]string
	telHeads map[string]string

	priorIndex map[string][]string // prior said -> said list

	acdcs   map[string][]byte
	schemas map[string][]byte

	aliasToSAID map[Scope]map[string]string
	saidToAlias map[Scope]map[string]string

	// flat mirrors the abstract key layout from spec §4.7 (event/<said>,
	// kel/<aid>/<seq>/<said>, ...) as a single namespace, so a caller
	// comparing this backend against a real KV store sees the same keys.
	flat map[string]string

	log logger.Logger
}

// NewMemory returns an empty in-memory store with no logger.
func NewMemory() *Memory {
	return NewMemoryWithLogger(nil)
}

// NewMemoryWithLogger returns an empty in-memory store that logs puts at
// Debug and rejected writes at Error. log may be nil.
func NewMemoryWithLogger(log logger.Logger) *Memory {
	return &Memory{
		raw:         map[string][]byte{},
		metas:       map[string]Meta{},
		kelIndex:    map[string][]string{},
		telIndex:    map[string][]string{},
		kelHeads:    map[string]string{},
		telHeads:    map[string]string{},
		priorIndex:  map[string][]string{},
		acdcs:       map[string][]byte{},
		schemas:     map[string][]byte{},
		aliasToSAID: map[Scope]map[string]string{},
		saidToAlias: map[Scope]map[string]string{},
		flat:        map[string]string{},
		log:         log,
	}
}

func (m *Memory) debugf(format string, args ...any) {
	if m.log != nil {
		m.log.Debugf(format, args...)
	}
}

func (m *Memory) errorf(format string, args ...any) {
	if m.log != nil {
		m.log.Errorf(format, args...)
	}
}

// verifyDigest decodes raw, re-derives its SAID under the default "d"
// label, and checks it against the declared value, returning the decoded
// document for metadata extraction.
func verifyDigest(raw []byte) (*said.Doc, error) {
	d, err := said.DecodeDoc(raw)
	if err != nil {
		return nil, ErrParse
	}
	declared := d.OptString("d")
	if declared == "" {
		return nil, ErrParse
	}
	clone := d.Clone()
	recomputed, err := said.Saidify(clone)
	if err != nil {
		return nil, ErrParse
	}
	if recomputed != declared {
		return nil, ErrDigestMismatch
	}
	return d, nil
}

func metaFromDoc(d *said.Doc) Meta {
	m := Meta{
		Type:        d.OptString("t"),
		SAID:        d.OptString("d"),
		AID:         d.OptString("i"),
		Prior:       d.OptString("p"),
		Timestamp:   d.OptString("dt"),
		RegistryRef: d.OptString("ri"),
	}
	switch m.Type {
	case "vcp":
		// vcp is self-addressing: its own "i" is the registry id.
		m.IssuerRef = d.OptString("ii")
	case "iss", "rev":
		m.ACDCRef = d.OptString("i")
	}
	if s := d.OptString("s"); s != "" {
		if v, err := strconv.ParseUint(s, 16, 64); err == nil {
			m.Seq = v
		}
	}
	return m
}

func (m *Memory) PutEvent(rawBytes []byte, enc Encoding) (string, Meta, error) {
	d, err := verifyDigest(rawBytes)
	if err != nil {
		m.errorf("store: rejected event, digest verification failed: %v", err)
		return "", Meta{}, err
	}
	meta := metaFromDoc(d)

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.raw[meta.SAID]; ok {
		if string(existing) != string(rawBytes) {
			m.errorf("store: rejected event said=%s, conflicts with an existing event at the same SAID", meta.SAID)
			return "", Meta{}, ErrAlreadyExists
		}
		return meta.SAID, m.metas[meta.SAID], nil
	}
	m.raw[meta.SAID] = rawBytes
	m.metas[meta.SAID] = meta
	m.flat[eventKey(meta.SAID)] = meta.SAID
	m.flat[metaKey(meta.SAID)] = meta.SAID
	if meta.Prior != "" {
		m.priorIndex[meta.Prior] = append(m.priorIndex[meta.Prior], meta.SAID)
		m.flat[priorKey(meta.Prior, meta.SAID)] = meta.SAID
	}
	m.debugf("store: put event said=%s type=%s", meta.SAID, meta.Type)
	return meta.SAID, meta, nil
}

func (m *Memory) GetEvent(saidVal string) ([]byte, Meta, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.raw[saidVal]
	if !ok {
		return nil, Meta{}, false
	}
	return r, m.metas[saidVal], true
}

func (m *Memory) putIndexed(rawBytes []byte, enc Encoding, index map[string][]string, heads map[string]string, keyOf func(Meta) string, buildKey func(key string, seq uint64, said string) string, buildHeadKey func(key string) string) (string, Meta, error) {
	d, err := verifyDigest(rawBytes)
	if err != nil {
		m.errorf("store: rejected chained event, digest verification failed: %v", err)
		return "", Meta{}, err
	}
	meta := metaFromDoc(d)
	key := keyOf(meta)

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.raw[meta.SAID]; ok {
		if string(existing) != string(rawBytes) {
			return "", Meta{}, ErrAlreadyExists
		}
		return meta.SAID, m.metas[meta.SAID], nil
	}

	existingChain := index[key]
	if head, ok := heads[key]; ok {
		headMeta := m.metas[head]
		if meta.Seq != headMeta.Seq+1 {
			m.errorf("store: rejected event said=%s key=%s, sequence gap (got %d, want %d)", meta.SAID, key, meta.Seq, headMeta.Seq+1)
			return "", Meta{}, ErrSequenceGap
		}
		if meta.Prior != head {
			m.errorf("store: rejected event said=%s key=%s, prior mismatch (got %s, want %s)", meta.SAID, key, meta.Prior, head)
			return "", Meta{}, ErrPriorMismatch
		}
	} else if len(existingChain) == 0 {
		if meta.Seq != 0 {
			m.errorf("store: rejected event said=%s key=%s, chain must start at sequence 0", meta.SAID, key)
			return "", Meta{}, ErrSequenceGap
		}
	}

	m.raw[meta.SAID] = rawBytes
	m.metas[meta.SAID] = meta
	index[key] = append(index[key], meta.SAID)
	heads[key] = meta.SAID
	m.flat[eventKey(meta.SAID)] = meta.SAID
	m.flat[metaKey(meta.SAID)] = meta.SAID
	m.flat[buildKey(key, meta.Seq, meta.SAID)] = meta.SAID
	m.flat[buildHeadKey(key)] = meta.SAID
	if meta.Prior != "" {
		m.priorIndex[meta.Prior] = append(m.priorIndex[meta.Prior], meta.SAID)
		m.flat[priorKey(meta.Prior, meta.SAID)] = meta.SAID
	}
	m.debugf("store: put chained event said=%s key=%s seq=%d", meta.SAID, key, meta.Seq)
	return meta.SAID, meta, nil
}

func kelKeyOf(m Meta) string { return m.AID }

// telKeyOf picks the chain a TEL event's sequence number is continuous
// within. vcp/ixn/vrt continue the registry's own sequence (spec §4.5); iss
// (s=0) and rev (s=1) are each credential's own two-entry sequence,
// independent of the registry and of every other credential under it.
func telKeyOf(m Meta) string {
	switch m.Type {
	case "iss", "rev":
		return m.ACDCRef
	default:
		return m.AID
	}
}

func (m *Memory) PutKELEvent(rawBytes []byte, enc Encoding) (string, Meta, error) {
	return m.putIndexed(rawBytes, enc, m.kelIndex, m.kelHeads, kelKeyOf, kelKey, kelHeadKey)
}

func (m *Memory) PutTELEvent(rawBytes []byte, enc Encoding) (string, Meta, error) {
	return m.putIndexed(rawBytes, enc, m.telIndex, m.telHeads, telKeyOf, telKey, telHeadKey)
}

func (m *Memory) listChain(index map[string][]string, key string, from, to *uint64) []Meta {
	m.mu.RLock()
	defer m.mu.RUnlock()
	chain := index[key]
	out := make([]Meta, 0, len(chain))
	for _, s := range chain {
		mt := m.metas[s]
		if from != nil && mt.Seq < *from {
			continue
		}
		if to != nil && mt.Seq > *to {
			continue
		}
		out = append(out, mt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

func (m *Memory) ListKEL(aid string, from, to *uint64) ([]Meta, error) {
	return m.listChain(m.kelIndex, aid, from, to), nil
}
func (m *Memory) ListTEL(ri string, from, to *uint64) ([]Meta, error) {
	return m.listChain(m.telIndex, ri, from, to), nil
}

// ListCredentialEvents returns a single credential's iss/rev history (its
// own 0/1 sequence, tracked independently of the registry's chain and of
// every other credential under it). Not part of the Store interface since
// spec §4.7's table names only the registry-chain list_tel; this is the
// accessor a verifier uses to walk a specific credential's status.
func (m *Memory) ListCredentialEvents(acdcSAID string) []Meta {
	return m.listChain(m.telIndex, acdcSAID, nil, nil)
}

func (m *Memory) GetKELHead(aid string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.kelHeads[aid]
	return s, ok
}
func (m *Memory) SetKELHead(aid, saidVal string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.metas[saidVal]; !ok {
		return ErrNotFound
	}
	m.kelHeads[aid] = saidVal
	m.flat[kelHeadKey(aid)] = saidVal
	return nil
}
func (m *Memory) GetTELHead(ri string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.telHeads[ri]
	return s, ok
}
func (m *Memory) SetTELHead(ri, saidVal string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.metas[saidVal]; !ok {
		return ErrNotFound
	}
	m.telHeads[ri] = saidVal
	m.flat[telHeadKey(ri)] = saidVal
	return nil
}

func (m *Memory) putContentAddressed(store map[string][]byte, rawBytes []byte, label string, buildKey func(string) string) (string, error) {
	d, err := said.DecodeDoc(rawBytes)
	if err != nil {
		return "", ErrParse
	}
	declared := d.OptString(label)
	if declared == "" {
		return "", ErrParse
	}
	clone := d.Clone()
	recomputed, err := said.Saidify(clone, said.WithLabels(label))
	if err != nil {
		return "", ErrParse
	}
	if recomputed != declared {
		return "", ErrDigestMismatch
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := store[declared]; ok && string(existing) != string(rawBytes) {
		return "", ErrAlreadyExists
	}
	store[declared] = rawBytes
	m.flat[buildKey(declared)] = declared
	return declared, nil
}

func (m *Memory) PutACDC(rawBytes []byte) (string, error) {
	return m.putContentAddressed(m.acdcs, rawBytes, "d", acdcKey)
}
func (m *Memory) GetACDC(saidVal string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.acdcs[saidVal]
	return r, ok
}
func (m *Memory) PutSchema(rawBytes []byte) (string, error) {
	return m.putContentAddressed(m.schemas, rawBytes, "$id", schemaKey)
}
func (m *Memory) GetSchema(saidVal string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.schemas[saidVal]
	return r, ok
}

func (m *Memory) PutAlias(scope Scope, saidVal, alias string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.aliasToSAID[scope] == nil {
		m.aliasToSAID[scope] = map[string]string{}
		m.saidToAlias[scope] = map[string]string{}
	}
	if existing, ok := m.aliasToSAID[scope][alias]; ok && existing != saidVal {
		return ErrAliasCollision
	}
	m.aliasToSAID[scope][alias] = saidVal
	m.saidToAlias[scope][saidVal] = alias
	m.flat[aliasKey(scope, alias)] = saidVal
	return nil
}
func (m *Memory) GetAliasSAID(scope Scope, alias string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.aliasToSAID[scope][alias]
	return s, ok
}
func (m *Memory) GetSAIDAlias(scope Scope, saidVal string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.saidToAlias[scope][saidVal]
	return a, ok
}
func (m *Memory) ListAliases(scope Scope) map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.aliasToSAID[scope]))
	for k, v := range m.aliasToSAID[scope] {
		out[k] = v
	}
	return out
}
func (m *Memory) DelAlias(scope Scope, alias string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.aliasToSAID[scope][alias]
	if !ok {
		return ErrNotFound
	}
	delete(m.aliasToSAID[scope], alias)
	delete(m.saidToAlias[scope], s)
	delete(m.flat, aliasKey(scope, alias))
	return nil
}

func (m *Memory) GetByPrior(priorSAID string) []Meta {
	m.mu.RLock()
	defer m.mu.RUnlock()
	saids := m.priorIndex[priorSAID]
	out := make([]Meta, 0, len(saids))
	for _, s := range saids {
		out = append(out, m.metas[s])
	}
	return out
}

var _ Store = (*Memory)(nil)
