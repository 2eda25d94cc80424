package event

import (
	"github.com/aaronp/kerits-sub005/config"
	"github.com/aaronp/kerits-sub005/said"
)

// Interaction is an ixn event: it anchors seals without touching keys.
type Interaction struct {
	doc   *said.Doc
	said_ string
	aid   string
	seq   uint64
}

func (e *Interaction) EventType() Type     { return TypeInteraction }
func (e *Interaction) SAID() string        { return e.said_ }
func (e *Interaction) AID() string         { return e.aid }
func (e *Interaction) Seq() uint64         { return e.seq }
func (e *Interaction) Doc() *said.Doc      { return e.doc }
func (e *Interaction) Raw() ([]byte, error) { return said.Canonicalize(e.doc) }

// Seals returns the anchored seal list.
func (e *Interaction) Seals() ([]Seal, error) {
	return sealsFromDoc(e.doc, "a")
}

// Interact builds an ixn event anchoring seals at sequence seq, whose prior
// field must equal dig (the predecessor event's SAID).
func Interact(pre string, seq uint64, dig string, seals []Seal, withOpts ...Option) (*Interaction, error) {
	if seq == 0 {
		return nil, ErrInvalidInput
	}
	o := newOptions(withOpts...)

	d := said.NewDoc()
	d.Set("v", config.PlaceholderVersionString(o.Protocol, o.Version, o.Kind))
	d.Set("t", string(TypeInteraction))
	d.Set("d", config.SAIDPlaceholder)
	d.Set("i", pre)
	d.Set("s", hexSeq(seq))
	d.Set("p", dig)
	d.Set("a", sealSliceToAny(seals))

	saidVal, err := said.Saidify(d)
	if err != nil {
		return nil, err
	}
	return &Interaction{doc: d, said_: saidVal, aid: pre, seq: seq}, nil
}

// sealsFromDoc reads a seal list field, accepting both `i`/`d` (canonical)
// and the legacy `acdcSaid` alias for `d`'s value used by some source
// paths (spec §9 Open Question "Nested registry anchoring").
func sealsFromDoc(d *said.Doc, field string) ([]Seal, error) {
	raw, err := d.GetSlice(field)
	if err != nil {
		return nil, err
	}
	seals := make([]Seal, 0, len(raw))
	for _, item := range raw {
		sd, ok := item.(*said.Doc)
		if !ok {
			return nil, ErrInvalidInput
		}
		i := sd.OptString("i")
		digest := sd.OptString("d")
		if digest == "" {
			digest = sd.OptString("acdcSaid")
		}
		seals = append(seals, Seal{I: i, S: sd.OptString("s"), D: digest})
	}
	return seals, nil
}
