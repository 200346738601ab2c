// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package monochain

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// Options configures Decompose and Locate.
type Options struct {
	Logger *log.Logger
}

// Option sets a field of Options and reports invalid values.
type Option func(*Options) error

// WithLogger routes debug records about regularization, balancing and chain
// extraction to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) error {
		if l == nil {
			return errors.New("WithLogger: logger must not be nil")
		}
		o.Logger = l
		return nil
	}
}

func newOptions(setters []Option) (*Options, error) {
	opts := &Options{
		Logger: log.New(io.Discard),
	}
	for _, set := range setters {
		if err := set(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}
