// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"errors"
	"fmt"
)

// Configuration errors. These are always wrapped in a *ConfigError.
var (
	ErrIncompatibleScale = errors.New("scale incompatible with channel")
	ErrUnknownScaleType  = errors.New("unknown scale type")
	ErrInvalidReduce     = errors.New("invalid reduce")
	ErrInvalidClassName  = errors.New("invalid class name")
	ErrUnknownScale      = errors.New("unknown scale")
	ErrUnknownScheme     = errors.New("unknown color scheme")
	ErrInvalidOption     = errors.New("invalid option")
)

// A ConfigError reports a plot configuration that cannot be built. It
// is returned before any rendering takes place.
type ConfigError struct {
	// Key is the scale key, channel name, or option the error
	// concerns. It may be empty.
	Key string

	// Err is one of the Err* sentinels, possibly wrapped with
	// more detail.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Key, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErrorf(key string, sentinel error, format string, args ...interface{}) error {
	return &ConfigError{key, fmt.Errorf("%w: "+format, append([]interface{}{sentinel}, args...)...)}
}
