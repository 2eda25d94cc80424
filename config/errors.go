package config

import "errors"

var ErrMalformedVersionString = errors.New("version string does not match the fixed KERI/ACDC shape")
