package kerierr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aaronp/kerits-sub005/event"
	"github.com/aaronp/kerits-sub005/store"
)

func TestClassifyKnownSentinels(t *testing.T) {
	assert.Equal(t, SAIDMismatch, Classify(event.ErrSAIDMismatch))
	assert.Equal(t, SequenceGap, Classify(store.ErrSequenceGap))
	assert.Equal(t, AliasCollision, Classify(store.ErrAliasCollision))
}

func TestClassifyWrappedSentinel(t *testing.T) {
	wrapped := errors.Join(event.ErrPreRotationViolation)
	assert.Equal(t, PreRotationViolation, Classify(wrapped))
}

func TestClassifyUnknownErrorIsInternal(t *testing.T) {
	assert.Equal(t, Internal, Classify(errors.New("something unforeseen")))
}

func TestClassifyNilIsEmpty(t *testing.T) {
	assert.Equal(t, Kind(""), Classify(nil))
}

func TestNewAvoidsDoubleWrapping(t *testing.T) {
	inner := New(SAIDMismatch, "verify.Event", event.ErrSAIDMismatch)
	outer := New(Internal, "bundle.FromBundle", inner)
	assert.Equal(t, SAIDMismatch, outer.Kind)
	assert.Equal(t, "bundle.FromBundle", outer.Op)
}
