package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Protocol identifies which version-string prefix a serialized object uses.
type Protocol string

const (
	ProtocolKERI Protocol = "KERI"
	ProtocolACDC Protocol = "ACDC"
)

// Kind is the serialization kind token in the version string. JSON is the
// only kind the reference encoding supports.
type Kind string

const KindJSON Kind = "JSON"

// Version is the (major, minor) pair carried in the version string.
type Version struct {
	Major uint8
	Minor uint8
}

// DefaultVersion is (1, 0), used whenever a builder's caller does not
// specify one explicitly.
var DefaultVersion = Version{Major: 1, Minor: 0}

const versionStringLen = 17 // <proto:4><major:1><minor:1><kind:4><size:6>_

// SAIDPlaceholder is the fixed-content, fixed-width (44 code point) stand-in
// written into a SAID label before canonicalization, so that substituting
// the real SAID back in afterwards never changes the serialized size.
const SAIDPlaceholder = "############################################"

// VersionString renders the fixed-shape version token:
// <proto><majorhex><minorhex><kind><sizehex6>_
func VersionString(proto Protocol, v Version, kind Kind, size int) string {
	return fmt.Sprintf("%s%x%x%s%06x_", proto, v.Major&0xf, v.Minor&0xf, kind, size)
}

// PlaceholderVersionString is the version string used for the initial
// size-measuring pass, with the size field zeroed.
func PlaceholderVersionString(proto Protocol, v Version, kind Kind) string {
	return VersionString(proto, v, kind, 0)
}

// ParseVersionString decodes a version token back into its parts. It
// rejects strings whose overall shape doesn't match, surfacing a
// config.ErrMalformedVersionString the caller can fold into InvalidInput.
func ParseVersionString(s string) (Protocol, Version, Kind, int, error) {
	if len(s) != versionStringLen || !strings.HasSuffix(s, "_") {
		return "", Version{}, "", 0, ErrMalformedVersionString
	}
	proto := Protocol(s[0:4])
	if proto != ProtocolKERI && proto != ProtocolACDC {
		return "", Version{}, "", 0, ErrMalformedVersionString
	}
	major, err := strconv.ParseUint(s[4:5], 16, 8)
	if err != nil {
		return "", Version{}, "", 0, ErrMalformedVersionString
	}
	minor, err := strconv.ParseUint(s[5:6], 16, 8)
	if err != nil {
		return "", Version{}, "", 0, ErrMalformedVersionString
	}
	kind := Kind(s[6:10])
	if kind != KindJSON {
		return "", Version{}, "", 0, ErrMalformedVersionString
	}
	size, err := strconv.ParseUint(s[10:16], 16, 32)
	if err != nil {
		return "", Version{}, "", 0, ErrMalformedVersionString
	}
	return proto, Version{Major: uint8(major), Minor: uint8(minor)}, kind, int(size), nil
}
