package tel

import (
	"github.com/aaronp/kerits-sub005/config"
	"github.com/aaronp/kerits-sub005/said"
)

// Seal anchors an external SAID into a TEL ixn's `a` field: {i, d}. Used to
// anchor a nested registry's vcp into its parent registry's TEL.
type Seal struct {
	I string `json:"i"`
	D string `json:"d"`
}

func sealSliceToAny(seals []Seal) []any {
	out := make([]any, len(seals))
	for i, s := range seals {
		d := said.NewDoc()
		d.Set("i", s.I)
		d.Set("d", s.D)
		out[i] = d
	}
	return out
}

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
		digest := sd.OptString("d")
		if digest == "" {
			digest = sd.OptString("acdcSaid")
		}
		seals = append(seals, Seal{I: sd.OptString("i"), D: digest})
	}
	return seals, nil
}

// Interaction is a TEL ixn event: it anchors seals (typically a nested
// registry's vcp) without touching backers.
type Interaction struct {
	doc      *said.Doc
	said_    string
	registry string
	seq      uint64
}

func (e *Interaction) EventType() Type      { return TypeInteraction }
func (e *Interaction) SAID() string         { return e.said_ }
func (e *Interaction) AID() string          { return e.registry }
func (e *Interaction) Seq() uint64          { return e.seq }
func (e *Interaction) Doc() *said.Doc       { return e.doc }
func (e *Interaction) Raw() ([]byte, error) { return said.Canonicalize(e.doc) }

// Seals returns the anchored seal list.
func (e *Interaction) Seals() ([]Seal, error) {
	return sealsFromDoc(e.doc, "a")
}

// Interact builds a TEL ixn event. registryID continues its own sequence
// (spec §4.5): seq must be the registry's next sequence number and dig its
// predecessor event's SAID.
func Interact(registryID string, seq uint64, dig string, seals []Seal, withOpts ...Option) (*Interaction, error) {
	if seq == 0 {
		return nil, ErrInvalidInput
	}
	o := newOptions(withOpts...)

	d := said.NewDoc()
	d.Set("v", config.PlaceholderVersionString(o.Protocol, o.Version, o.Kind))
	d.Set("t", string(TypeInteraction))
	d.Set("d", config.SAIDPlaceholder)
	d.Set("i", registryID)
	d.Set("s", hexSeq(seq))
	d.Set("p", dig)
	d.Set("a", sealSliceToAny(seals))

	saidVal, err := said.Saidify(d)
	if err != nil {
		return nil, err
	}
	return &Interaction{doc: d, said_: saidVal, registry: registryID, seq: seq}, nil
}
