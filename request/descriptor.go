// Copyright 2021 The stepreq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrEmptyURL is returned by Build when no URL, or an empty URL,
	// was given to the builder.
	ErrEmptyURL = errors.New("stepreq/request: URL cannot be empty")

	// ErrNegativeTimeout is returned by Build when a negative timeout
	// was given to the builder.
	ErrNegativeTimeout = errors.New("stepreq/request: timeout cannot be negative")

	// ErrTimeoutTooLarge is returned by Build when a timeout too large
	// to be represented as a time.Duration was given to the builder.
	ErrTimeoutTooLarge = errors.New("stepreq/request: timeout too large")
)

// maxTimeoutSeconds is the largest timeout, in seconds, that fits in a
// time.Duration.
const maxTimeoutSeconds = int64(math.MaxInt64 / int64(time.Second))

// defaultMethod replaces an empty method when a Descriptor is built.
const defaultMethod = "GET"

// A Descriptor is an immutable description of an HTTP request: what
// to send and where, but not how. Descriptors are only produced by a
// successful Build, either from the staged builder (NewStepBuilder) or
// the unordered builder (NewBuilder), and always have a non-empty URL
// and method.
//
// The zero value is not a valid Descriptor. A Descriptor is safe for
// concurrent use by multiple goroutines.
type Descriptor struct {
	url    string
	method string
	header fields
	query  fields

	body    string
	hasBody bool

	// timeout is in whole seconds.
	timeout    int
	hasTimeout bool
}

// URL returns the request URL.
func (d *Descriptor) URL() string {
	return d.url
}

// Method returns the HTTP method, for example GET or POST.
func (d *Descriptor) Method() string {
	return d.method
}

// Header returns the value of the named header and whether it is
// present. Header names are matched exactly, without canonicalization.
func (d *Descriptor) Header(name string) (string, bool) {
	return d.header.get(name)
}

// Headers returns a copy of all headers in the order each name was
// first set.
func (d *Descriptor) Headers() []Field {
	return d.header.list()
}

// Query returns the value of the named query parameter and whether it
// is present.
func (d *Descriptor) Query(name string) (string, bool) {
	return d.query.get(name)
}

// QueryParams returns a copy of all query parameters in the order each
// name was first set.
func (d *Descriptor) QueryParams() []Field {
	return d.query.list()
}

// Body returns the request body and whether one was set. A body that
// was explicitly set to the empty string is reported as present.
func (d *Descriptor) Body() (string, bool) {
	return d.body, d.hasBody
}

// Timeout returns the request timeout and whether one was set. An
// unset timeout means the caller's default applies, which is not the
// same as a zero timeout.
func (d *Descriptor) Timeout() (time.Duration, bool) {
	return time.Duration(d.timeout) * time.Second, d.hasTimeout
}

// Equal reports whether d and other describe the same request. Header
// and query parameter order does not affect equality.
func (d *Descriptor) Equal(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.url == other.url &&
		d.method == other.method &&
		d.hasBody == other.hasBody && d.body == other.body &&
		d.hasTimeout == other.hasTimeout && d.timeout == other.timeout &&
		d.header.equal(&other.header) &&
		d.query.equal(&other.query)
}

// String returns the method and URL, for example "GET https://example.com".
func (d *Descriptor) String() string {
	return d.method + " " + d.url
}

// checkTimeout returns the error, if any, for a timeout of seconds.
func checkTimeout(seconds int) error {
	if seconds < 0 {
		return ErrNegativeTimeout
	}
	if int64(seconds) > maxTimeoutSeconds {
		return ErrTimeoutTooLarge
	}
	return nil
}

// finish validates d and returns a copy of it. The copy shares header
// and query storage with d, so d must not be modified afterwards. The
// URL is checked before err so that an empty URL is always reported as
// such.
func (d *Descriptor) finish(err error) (*Descriptor, error) {
	if d.url == "" {
		return nil, ErrEmptyURL
	}
	if err != nil {
		return nil, err
	}
	d2 := *d
	if d2.method == "" {
		d2.method = defaultMethod
	}
	return &d2, nil
}
