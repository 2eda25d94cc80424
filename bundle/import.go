package bundle

import (
	"context"

	"github.com/aaronp/kerits-sub005/kerierr"
	"github.com/aaronp/kerits-sub005/store"
	"github.com/aaronp/kerits-sub005/verify"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
)

// Importer runs the import pipeline (spec §4.8) against a store, logging
// at Debug for each accepted event and Error for each recorded failure.
type Importer struct {
	Store store.Store
	Log   logger.Logger
}

// NewImporter constructs an Importer. log may be nil, in which case the
// importer does not log.
func NewImporter(s store.Store, log logger.Logger) *Importer {
	return &Importer{Store: s, Log: log}
}

func (imp *Importer) debugf(format string, args ...any) {
	if imp.Log != nil {
		imp.Log.Debugf(format, args...)
	}
}

func (imp *Importer) errorf(format string, args ...any) {
	if imp.Log != nil {
		imp.Log.Errorf(format, args...)
	}
}

// FromBundle ingests b's events in order: it parses each event's metadata,
// optionally skips SAIDs already present, optionally re-verifies each SAID
// before insert, and never partially corrupts indices on a per-event
// failure — it records the failure and continues (spec §4.8 steps 1-3).
// The loop checks ctx at the entry of each iteration so a large import can
// be cancelled without rolling back already-committed events (spec §5).
func (imp *Importer) FromBundle(ctx context.Context, b Bundle, opts ImportOptions) ImportResult {
	result := ImportResult{RunID: uuid.NewString()}

	for i, raw := range b.Events {
		if err := ctx.Err(); err != nil {
			result.Errors = append(result.Errors, EventError{Index: i, Kind: kerierr.Internal, Err: err})
			result.Failed++
			continue
		}

		said, existed := imp.peek(b.Type, raw)
		if opts.SkipExisting && existed {
			result.Skipped++
			imp.debugf("bundle: skipping existing event said=%s index=%d", said, i)
			continue
		}

		if opts.Verify {
			if err := verify.Event(raw); err != nil {
				result.Failed++
				result.Errors = append(result.Errors, EventError{Index: i, Kind: kerierr.Classify(err), Err: err})
				imp.errorf("bundle: verify failed index=%d said=%s err=%v", i, said, err)
				continue
			}
		}

		insertedSAID, meta, err := imp.insert(b.Type, raw)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, EventError{Index: i, Kind: kerierr.Classify(err), Err: err})
			imp.errorf("bundle: insert failed index=%d said=%s err=%v", i, said, err)
			continue
		}

		result.Imported++
		imp.debugf("bundle: imported event said=%s index=%d", insertedSAID, i)
		applyIdentity(&result, b.Type, meta, insertedSAID)
	}

	return result
}

// peek reports the event's declared SAID and whether it is already present
// in the store, without mutating anything.
func (imp *Importer) peek(t Type, raw []byte) (string, bool) {
	said := declaredSAID(raw)
	if said == "" {
		return "", false
	}
	if t == TypeACDC {
		if _, ok := imp.Store.GetACDC(said); ok {
			return said, true
		}
		return said, false
	}
	_, _, ok := imp.Store.GetEvent(said)
	return said, ok
}

func (imp *Importer) insert(t Type, raw []byte) (string, store.Meta, error) {
	switch t {
	case TypeKEL:
		return imp.Store.PutKELEvent(raw, store.EncodingJSON)
	case TypeTEL:
		return imp.Store.PutTELEvent(raw, store.EncodingJSON)
	case TypeACDC:
		said, err := imp.Store.PutACDC(raw)
		return said, store.Meta{SAID: said}, err
	default:
		return "", store.Meta{}, ErrUnknownType
	}
}

func applyIdentity(result *ImportResult, t Type, meta store.Meta, said string) {
	switch t {
	case TypeKEL:
		result.AID = meta.AID
	case TypeTEL:
		if meta.RegistryRef != "" {
			result.RegistryID = meta.RegistryRef
		} else {
			result.RegistryID = meta.AID
		}
	case TypeACDC:
		result.CredentialID = said
	}
}
