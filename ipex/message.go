package ipex

import (
	"github.com/aaronp/kerits-sub005/config"
	"github.com/aaronp/kerits-sub005/said"
)

// Message is an exn envelope: one leg of an IPEX exchange. Every message
// is self-addressing (its `d` field is its own SAID).
type Message struct {
	doc   *said.Doc
	said_ string
	route Route
	sender string
	prior  string
}

func (m *Message) SAID() string        { return m.said_ }
func (m *Message) Doc() *said.Doc      { return m.doc }
func (m *Message) Raw() ([]byte, error) { return said.Canonicalize(m.doc) }
func (m *Message) Route() Route        { return m.route }
func (m *Message) Sender() string      { return m.sender }
func (m *Message) Prior() string       { return m.prior }

// Payload returns the message's `a` attribute block, or nil if none was
// set.
func (m *Message) Payload() (*said.Doc, error) {
	if !m.doc.Has("a") {
		return nil, nil
	}
	return m.doc.GetDoc("a")
}

// Build constructs an exn envelope for route, sent by sender, optionally
// responding to prior (the predecessor message's SAID). prior may be "" only
// for routes that can initiate, and must be "" for a route that never
// answers another (apply). payload becomes the `a` block and may be nil.
func Build(route Route, sender, prior string, payload *said.Doc, withOpts ...Option) (*Message, error) {
	if sender == "" {
		return nil, ErrInvalidInput
	}
	if RequiresPrior(route) && prior == "" {
		return nil, ErrRequiresPrior
	}
	if !RequiresPrior(route) && prior != "" {
		responds := false
		for _, rs := range allowedResponses {
			for _, r := range rs {
				if r == route {
					responds = true
				}
			}
		}
		if !responds {
			return nil, ErrUnexpectedPrior
		}
	}
	o := newOptions(withOpts...)

	d := said.NewDoc()
	d.Set("v", config.PlaceholderVersionString(o.Protocol, o.Version, o.Kind))
	d.Set("t", "exn")
	d.Set("d", config.SAIDPlaceholder)
	d.Set("i", sender)
	if prior != "" {
		d.Set("p", prior)
	}
	d.Set("dt", o.Datetime)
	d.Set("r", string(route))
	if payload != nil {
		d.Set("a", payload)
	} else {
		d.Set("a", said.NewDoc())
	}

	saidVal, err := said.Saidify(d, said.WithDigestCode(o.Code))
	if err != nil {
		return nil, err
	}
	return &Message{doc: d, said_: saidVal, route: route, sender: sender, prior: prior}, nil
}
