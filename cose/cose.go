package cose

import (
	"crypto"
	"crypto/ecdsa"
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/veraison/go-cose"
)

/**
 * Cose functions based on CBOR Object Signing and Encryption (COSE)
 *
 * https://datatracker.ietf.org/doc/html/rfc8152
 */

const (
	HeaderLabelDID  int64 = 391
	HeaderLabelFeed int64 = 392
)

// CoseSign1Message extends the cose.sign1message
type CoseSign1Message struct {
	*cose.Sign1Message
	decMode cbor.DecMode
	encMode cbor.EncMode
}

func newDefaultSignOptions() SignOptions {
	encOpts := cbor.CanonicalEncOptions()
	decOpts := cbor.DecOptions{
		DupMapKey:      cbor.DupMapKeyEnforcedAPF,
		IntDec:         cbor.IntDecConvertSigned,
		DefaultMapType: reflect.TypeOf(map[any]any(nil)),
	}
	return SignOptions{
		encOpts: &encOpts,
		decOpts: &decOpts,
	}
}

// NewCoseSign1Message creates a new cose sign1 message
func NewCoseSign1Message(message *cose.Sign1Message, withOpts ...SignOption) (*CoseSign1Message, error) {
	opts := newDefaultSignOptions()

	for _, o := range withOpts {
		o(&opts)
	}

	var err error

	csm := CoseSign1Message{
		Sign1Message: message,
	}

	csm.encMode, err = opts.encOpts.EncMode()
	if err != nil {
		return nil, err
	}

	csm.decMode, err = opts.decOpts.DecMode()
	if err != nil {
		return nil, err
	}

	return &csm, nil
}

// NewCoseSign1MessageFromCBOR creates a new cose sign1 message from a cbor encoded message
func NewCoseSign1MessageFromCBOR(message []byte, withOpts ...SignOption) (*CoseSign1Message, error) {
	opts := newDefaultSignOptions()

	for _, o := range withOpts {
		o(&opts)
	}

	coseMessage, err := UnmarshalCBOR(message)
	if err != nil {
		return nil, err
	}

	sign1Message := &CoseSign1Message{
		Sign1Message: coseMessage,
	}

	sign1Message.encMode, err = opts.encOpts.EncMode()
	if err != nil {
		return nil, err
	}

	sign1Message.decMode, err = opts.decOpts.DecMode()
	if err != nil {
		return nil, err
	}

	return sign1Message, nil
}

// MarshalCBOR marshals a cose_Sign1 message to cbor
func MarshalCBOR(message *cose.Sign1Message) ([]byte, error) {
	marshaledMessage, err := message.MarshalCBOR()
	if err != nil {
		return nil, err
	}

	return marshaledMessage, err
}

// UnmarshalCBOR unmarshals a cbor encoded cose_Sign1 message
func UnmarshalCBOR(message []byte) (*cose.Sign1Message, error) {
	var unmarshaledMessage cose.Sign1Message
	err := unmarshaledMessage.UnmarshalCBOR(message)
	if err != nil {
		return nil, err
	}

	return &unmarshaledMessage, err
}

// valueFromProtectedHeader gets a value from the cose_Sign1 protected Header given the label
func (cs *CoseSign1Message) valueFromProtectedHeader(label int64) (any, error) {
	header := cs.Headers.Protected

	value, ok := header[label]
	if !ok {
		return nil, &ErrNoProtectedHeaderValue{Label: label}
	}

	return value, nil
}

// DidFromProtectedHeader gets the DID (Decentralised IDentity)
//
//	to use to acquire the public key for verifying
func (cs *CoseSign1Message) DidFromProtectedHeader() (string, error) {
	did, err := cs.valueFromProtectedHeader(HeaderLabelDID)
	if err != nil {
		return "", err
	}

	didStr, ok := did.(string)
	if !ok {
		return "", &ErrUnexpectedProtectedHeaderType{label: HeaderLabelDID, expectedType: "string", actualType: reflect.TypeOf(did).String()}
	}

	return didStr, nil
}

// FeedFromProtectedHeader gets the feed id from the protected header
func (cs *CoseSign1Message) FeedFromProtectedHeader() (string, error) {
	feed, err := cs.valueFromProtectedHeader(HeaderLabelFeed)
	if err != nil {
		return "", err
	}

	feedStr, ok := feed.(string)
	if !ok {
		return "", &ErrUnexpectedProtectedHeaderType{label: HeaderLabelFeed, expectedType: "string", actualType: reflect.TypeOf(feed).String()}
	}

	return feedStr, nil
}

type publicKeyProvider interface {
	PublicKey() (crypto.PublicKey, cose.Algorithm, error)
}

func (cs *CoseSign1Message) VerifyWithProvider(
	pubKeyProvider publicKeyProvider, external []byte,
) error {
	publicKey, algorithm, err := pubKeyProvider.PublicKey()
	if err != nil {
		return err
	}

	verifier, err := cose.NewVerifier(algorithm, publicKey)
	if err != nil {
		return err
	}

	// verify the message
	err = cs.Verify(external, verifier)
	if err != nil {
		return err
	}

	return nil
}

// VerifyWithPublicKey verifies the given message using the given public key
//
//	for verification
//
// example code:  https://github.com/veraison/go-cose/blob/main/example_test.go
func (cs *CoseSign1Message) VerifyWithPublicKey(publicKey crypto.PublicKey, external []byte) error {
	return cs.VerifyWithProvider(NewPublicKeyProvider(cs, publicKey), external)
}

// SignES256 signs a cose sign1 message using the given ecdsa private key using the algorithm ES256
func (cs *CoseSign1Message) SignES256(rand io.Reader, external []byte, privateKey *ecdsa.PrivateKey) error {
	signer, err := cose.NewSigner(cose.AlgorithmES256, privateKey)
	if err != nil {
		return err
	}

	if cs.Headers.Protected == nil {
		cs.Headers.Protected = make(cose.ProtectedHeader)
	}

	// Note: It *must* be ES256 to work with this types Verify etc. we could
	// detect the programming error where the caller has set the wrong alg but
	// that seems overly fussy.
	cs.Headers.Protected[cose.HeaderLabelAlgorithm] = cose.AlgorithmES256

	return cs.Sign(rand, external, signer)
}
