package ipex

import (
	"github.com/aaronp/kerits-sub005/config"
	"github.com/aaronp/kerits-sub005/said"
)

// GrantBlock is a grant message's `e` embed: the credential, its issuance
// event, and (when the issuer's registry is anchored in its KEL) the
// anchoring establishment or interaction event. The block is itself
// self-addressing (spec §4.9).
type GrantBlock struct {
	doc   *said.Doc
	said_ string
}

func (b *GrantBlock) SAID() string   { return b.said_ }
func (b *GrantBlock) Doc() *said.Doc { return b.doc }

// BuildGrantBlock saidifies the embed in {d, acdc, iss, [anchor]} order.
// anchorDoc may be nil when the issuer's registry is not KEL-anchored.
func BuildGrantBlock(acdcDoc, issDoc, anchorDoc *said.Doc, withOpts ...Option) (*GrantBlock, error) {
	if acdcDoc == nil || issDoc == nil {
		return nil, ErrInvalidInput
	}
	o := newOptions(withOpts...)

	d := said.NewDoc()
	d.Set("d", config.SAIDPlaceholder)
	d.Set("acdc", acdcDoc)
	d.Set("iss", issDoc)
	if anchorDoc != nil {
		d.Set("anchor", anchorDoc)
	}

	saidVal, err := said.Saidify(d, said.WithDigestCode(o.Code))
	if err != nil {
		return nil, err
	}
	return &GrantBlock{doc: d, said_: saidVal}, nil
}

// BuildGrant constructs a grant exn carrying block in its `e` field.
// sender is the issuer's AID; prior is the agree message's SAID that
// authorized this grant.
func BuildGrant(sender, prior string, block *GrantBlock, withOpts ...Option) (*Message, error) {
	if block == nil {
		return nil, ErrMissingGrantBlock
	}
	msg, err := Build(RouteGrant, sender, prior, nil, withOpts...)
	if err != nil {
		return nil, err
	}
	msg.doc.Set("e", block.doc)
	saidVal, err := resaidify(msg.doc, withOpts...)
	if err != nil {
		return nil, err
	}
	msg.said_ = saidVal
	return msg, nil
}

func resaidify(d *said.Doc, withOpts ...Option) (string, error) {
	o := newOptions(withOpts...)
	return said.Saidify(d, said.WithDigestCode(o.Code))
}

// GrantEmbed returns the grant message's `e` block, or ErrMissingGrantBlock
// if msg is not a grant or carries no embed.
func GrantEmbed(msg *Message) (*said.Doc, error) {
	if msg.Route() != RouteGrant || !msg.doc.Has("e") {
		return nil, ErrMissingGrantBlock
	}
	return msg.doc.GetDoc("e")
}
