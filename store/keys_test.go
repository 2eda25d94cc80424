package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyPathAndParseRoundTrip(t *testing.T) {
	k := Key{Scope: "kel", ID: "Eaid", SubPath: seqSAIDPath(3, "Esaid")}
	path := k.Path()
	assert.Equal(t, "kel/Eaid/0000000000000003/Esaid", path)

	parsed := ParseKey(path)
	assert.Equal(t, k, parsed)
}

func TestKeyPathWithoutSubPath(t *testing.T) {
	k := Key{Scope: "event", ID: "Esaid"}
	assert.Equal(t, "event/Esaid", k.Path())
}

func TestExistingKeyHelpersUnchanged(t *testing.T) {
	assert.Equal(t, "kel/Eaid/0000000000000000/Esaid", kelKey("Eaid", 0, "Esaid"))
	assert.Equal(t, "head/kel/Eaid", kelHeadKey("Eaid"))
	assert.Equal(t, "alias/kel/my-alias", aliasKey(ScopeKEL, "my-alias"))
}
