package said

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronp/kerits-sub005/config"
)

func newTestDoc() *Doc {
	d := NewDoc()
	d.Set("v", config.PlaceholderVersionString(config.ProtocolKERI, config.DefaultVersion, config.KindJSON))
	d.Set("t", "icp")
	d.Set("d", "")
	d.Set("i", "")
	d.Set("s", "0")
	return d
}

func TestSaidifyIdempotent(t *testing.T) {
	d := newTestDoc()
	first, err := Saidify(d, WithLabel("i"))
	require.NoError(t, err)

	again, err := Saidify(d, WithLabel("i"))
	require.NoError(t, err)

	assert.Equal(t, first, again)
}

func TestSaidifySizeFixpoint(t *testing.T) {
	d := newTestDoc()
	_, err := Saidify(d, WithLabel("i"))
	require.NoError(t, err)

	raw, err := Canonicalize(d)
	require.NoError(t, err)

	vRaw, _ := d.Get("v")
	_, _, _, size, err := config.ParseVersionString(vRaw.(string))
	require.NoError(t, err)

	assert.Equal(t, size, len(raw))
}

func TestSaidifyWritesAllLabels(t *testing.T) {
	d := newTestDoc()
	said, err := Saidify(d, WithLabel("i"))
	require.NoError(t, err)

	dv, _ := d.Get("d")
	iv, _ := d.Get("i")
	assert.Equal(t, said, dv)
	assert.Equal(t, said, iv)
	assert.Len(t, said, 44)
}

func TestSaidifyMissingLabel(t *testing.T) {
	d := NewDoc()
	d.Set("t", "icp")
	_, err := Saidify(d)
	assert.ErrorIs(t, err, ErrMissingLabel)
}
