package tel

import (
	"github.com/aaronp/kerits-sub005/config"
	"github.com/aaronp/kerits-sub005/said"
	"github.com/aaronp/kerits-sub005/tholder"
)

// RegistryRotation is a vrt event: it adjusts the registry's backer list.
type RegistryRotation struct {
	doc      *said.Doc
	said_    string
	registry string
	seq      uint64
}

func (e *RegistryRotation) EventType() Type      { return TypeRegistryRotation }
func (e *RegistryRotation) SAID() string         { return e.said_ }
func (e *RegistryRotation) AID() string          { return e.registry }
func (e *RegistryRotation) Seq() uint64          { return e.seq }
func (e *RegistryRotation) Doc() *said.Doc       { return e.doc }
func (e *RegistryRotation) Raw() ([]byte, error) { return said.Canonicalize(e.doc) }

// RotateArgs carries the backer edit spec §4.5 describes, plus the
// registry's last-known backer list so the default threshold can be
// computed from the resulting count rather than from len(Adds) alone (the
// Open Question decision recorded for registry-rotation backer counting).
type RotateArgs struct {
	RegistryID   string
	Seq          uint64
	Dig          string // prior event's SAID
	Cuts         []string
	Adds         []string
	PriorBackers []string
}

// Rotate builds a vrt event.
func Rotate(args RotateArgs, withOpts ...Option) (*RegistryRotation, error) {
	if args.Seq == 0 {
		return nil, ErrInvalidInput
	}
	o := newOptions(withOpts...)

	newBackers, err := applyBackerEdits(args.PriorBackers, args.Cuts, args.Adds)
	if err != nil {
		return nil, err
	}
	toad := o.Toad
	if toad == nil {
		toad = tholder.NewNumeric(uint64(config.AmpleThreshold(len(newBackers))))
	}

	d := said.NewDoc()
	d.Set("v", config.PlaceholderVersionString(o.Protocol, o.Version, o.Kind))
	d.Set("t", string(TypeRegistryRotation))
	d.Set("d", config.SAIDPlaceholder)
	d.Set("i", args.RegistryID)
	d.Set("s", hexSeq(args.Seq))
	d.Set("p", args.Dig)
	d.Set("bt", toad.Hex())
	d.Set("br", stringSliceToAny(args.Cuts))
	d.Set("ba", stringSliceToAny(args.Adds))

	saidVal, err := said.Saidify(d)
	if err != nil {
		return nil, err
	}
	return &RegistryRotation{doc: d, said_: saidVal, registry: args.RegistryID, seq: args.Seq}, nil
}

// applyBackerEdits removes Cuts then adds Adds, rejecting duplicates within
// either list or overlap between them (spec §4.5 vrt invariants).
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
