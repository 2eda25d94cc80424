package event

import (
	"github.com/aaronp/kerits-sub005/config"
	"github.com/aaronp/kerits-sub005/said"
	"github.com/aaronp/kerits-sub005/tholder"
)

// Rotation is a rot or drt event.
type Rotation struct {
	doc       *said.Doc
	said_     string
	aid       string
	seq       uint64
	delegated bool
}

func (e *Rotation) EventType() Type {
	if e.delegated {
		return TypeDelegatedRotation
	}
	return TypeRotation
}
func (e *Rotation) SAID() string        { return e.said_ }
func (e *Rotation) AID() string         { return e.aid }
func (e *Rotation) Seq() uint64         { return e.seq }
func (e *Rotation) Doc() *said.Doc      { return e.doc }
func (e *Rotation) Raw() ([]byte, error) { return said.Canonicalize(e.doc) }

// RotateArgs carries the witness-list edits spec §4.4 describes:
// removals applied before additions, with uniqueness maintained.
type RotateArgs struct {
	Pre    string
	Keys   []string
	Dig    string // prior event's SAID
	Seq    uint64
	Ndigs  []string
	Cuts   []string // backers removed
	Adds   []string // backers added
	PriorBackers []string // the registry/KEL's backer list before this rotation
}

// Rotate builds a rot (or, with WithDelegator, a drt) event, applying the
// witness edit in remove-then-add order and deriving the new backer list.
func Rotate(args RotateArgs, withOpts ...Option) (*Rotation, error) {
	if args.Seq == 0 {
		return nil, ErrInvalidInput
	}
	o := newOptions(withOpts...)

	isith := o.Isith
	if isith == nil {
		isith = tholder.DefaultCurrent(len(args.Keys))
	}
	if err := isith.Validate(len(args.Keys)); err != nil {
		return nil, err
	}
	nsith := o.Nsith
	if nsith == nil {
		nsith = tholder.DefaultNext(len(args.Ndigs))
	}
	if err := nsith.Validate(len(args.Ndigs)); err != nil {
		return nil, err
	}

	newBackers, err := applyBackerEdits(args.PriorBackers, args.Cuts, args.Adds)
	if err != nil {
		return nil, err
	}
	toad := o.Toad
	if toad == nil {
		toad = tholder.NewNumeric(uint64(config.AmpleThreshold(len(newBackers))))
	}

	typ := TypeRotation
	if o.Delpre != "" {
		typ = TypeDelegatedRotation
	}

	d := said.NewDoc()
	d.Set("v", config.PlaceholderVersionString(o.Protocol, o.Version, o.Kind))
	d.Set("t", string(typ))
	d.Set("d", config.SAIDPlaceholder)
	d.Set("i", args.Pre)
	d.Set("s", hexSeq(args.Seq))
	d.Set("p", args.Dig)
	d.Set("kt", thresholdDocValue(isith))
	d.Set("k", stringSliceToAny(args.Keys))
	d.Set("nt", thresholdDocValue(nsith))
	d.Set("n", stringSliceToAny(args.Ndigs))
	d.Set("bt", toad.Hex())
	d.Set("br", stringSliceToAny(args.Cuts))
	d.Set("ba", stringSliceToAny(args.Adds))
	d.Set("a", sealSliceToAny(o.Anchors))
	if typ == TypeDelegatedRotation {
		if o.Delpre == "" {
			return nil, ErrInvalidInput
		}
		d.Set("di", o.Delpre)
	}

	saidVal, err := said.Saidify(d)
	if err != nil {
		return nil, err
	}

	return &Rotation{doc: d, said_: saidVal, aid: args.Pre, seq: args.Seq, delegated: typ == TypeDelegatedRotation}, nil
}

// ValidateRotation checks the single-event invariants of spec §4.4 for
// rot/drt: s > 0, kt/nt satisfy their key vectors, and drt carries di.
func ValidateRotation(e *Rotation) error {
	if e.seq == 0 {
		return ErrSequenceGap
	}
	keys, err := e.doc.GetStringSlice("k")
	if err != nil {
		return ErrInvalidInput
	}
	kt, err := thresholdFromDoc(e.doc, "kt", len(keys))
	if err != nil {
		return err
	}
	if err := kt.Validate(len(keys)); err != nil {
		return ErrThresholdUnsatisfied
	}
	ndigs, err := e.doc.GetStringSlice("n")
	if err != nil {
		return ErrInvalidInput
	}
	if len(ndigs) > 0 {
		nt, err := thresholdFromDoc(e.doc, "nt", len(ndigs))
		if err != nil {
			return err
		}
		if err := nt.Validate(len(ndigs)); err != nil {
			return ErrThresholdUnsatisfied
		}
	}
	if e.EventType() == TypeDelegatedRotation && e.doc.OptString("di") == "" {
		return ErrDelegationContinuityBroken
	}
	return nil
}

// applyBackerEdits removes Cuts then adds Adds, rejecting duplicates
// within either list or overlap between them (spec §4.4/§4.5).
func applyBackerEdits(prior, cuts, adds []string) ([]string, error) {
	if err := checkNoDuplicates(cuts); err != nil {
		return nil, err
	}
	if err := checkNoDuplicates(adds); err != nil {
		return nil, err
	}
	cutSet := map[string]bool{}
	for _, c := range cuts {
		cutSet[c] = true
	}
	for _, a := range adds {
		if cutSet[a] {
			return nil, ErrBackerOverlap
		}
	}

	remaining := make([]string, 0, len(prior))
	for _, b := range prior {
		if !cutSet[b] {
			remaining = append(remaining, b)
		}
	}
	seen := map[string]bool{}
	for _, b := range remaining {
		seen[b] = true
	}
	for _, a := range adds {
		if seen[a] {
			return nil, ErrDuplicateBacker
		}
		seen[a] = true
		remaining = append(remaining, a)
	}
	return remaining, nil
}

func checkNoDuplicates(list []string) error {
	seen := map[string]bool{}
	for _, v := range list {
		if seen[v] {
			return ErrDuplicateBacker
		}
		seen[v] = true
	}
	return nil
}
