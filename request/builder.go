// Copyright 2021 The stepreq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

// A Builder assembles a Descriptor from fields set in any order. Unlike
// the staged builder returned by NewStepBuilder, nothing is checked
// until Build is called.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	d   Descriptor
	err error
}

// NewBuilder returns an empty unordered builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithURL sets the request URL, replacing any previous URL.
func (b *Builder) WithURL(url string) *Builder {
	b.d.url = url
	return b
}

// WithMethod sets the HTTP method, replacing any previous method. An
// empty method is replaced by GET when the Descriptor is built.
func (b *Builder) WithMethod(method string) *Builder {
	b.d.method = method
	return b
}

// WithHeader sets a header, replacing any previous value for name.
func (b *Builder) WithHeader(name, value string) *Builder {
	b.d.header.set(name, value)
	return b
}

// WithQueryParam sets a query parameter, replacing any previous value
// for name.
func (b *Builder) WithQueryParam(name, value string) *Builder {
	b.d.query.set(name, value)
	return b
}

// WithBody sets the request body.
func (b *Builder) WithBody(body string) *Builder {
	b.d.body = body
	b.d.hasBody = true
	return b
}

// WithTimeout sets the request timeout in whole seconds. A negative
// value, or one too large for a time.Duration, is not stored and causes
// Build to fail with ErrNegativeTimeout or ErrTimeoutTooLarge until a
// valid timeout is set.
func (b *Builder) WithTimeout(seconds int) *Builder {
	if err := checkTimeout(seconds); err != nil {
		b.err = err
		return b
	}
	b.err = nil
	b.d.timeout = seconds
	b.d.hasTimeout = true
	return b
}

// Build returns a Descriptor built from the fields set so far. The
// validation rules are those of OptionalStage.Build.
//
// Build takes a snapshot: the Builder may continue to be modified and
// built again without affecting Descriptors already returned.
func (b *Builder) Build() (*Descriptor, error) {
	d := b.d
	d.header = b.d.header.clone()
	d.query = b.d.query.clone()
	return d.finish(b.err)
}
