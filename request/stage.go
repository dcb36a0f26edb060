// Copyright 2021 The stepreq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

const (
	spentStageMsg  = "stepreq/request: builder stage reused after transition"
	uninitStageMsg = "stepreq/request: uninitialized builder stage"
)

// draft is the partially-built Descriptor carried from stage to stage.
type draft struct {
	d     Descriptor
	err   error
	spent bool
}

// take moves the contents of s into a new draft and marks s spent, so
// that every stage value can be advanced at most once.
func (s *draft) take() *draft {
	if s == nil {
		panic(uninitStageMsg)
	}
	if s.spent {
		panic(spentStageMsg)
	}
	next := &draft{d: s.d, err: s.err}
	s.d = Descriptor{}
	s.err = nil
	s.spent = true
	return next
}

// NewStepBuilder returns the first stage of the staged request builder.
//
// The staged builder enforces, at compile time, the order in which a
// request is described: a URL, then a method, then at least one
// header, after which optional fields may be set and the Descriptor
// built.
//
//	d, err := request.NewStepBuilder().
//		WithURL("https://api.example.com/products").
//		WithMethod("POST").
//		WithHeader("Content-Type", "application/json").
//		WithBody(`{"product":"Laptop"}`).
//		WithTimeout(45).
//		Build()
//
// Each method consumes the stage it is called on and returns the next
// one. A stage value must not be used again once it has been advanced:
// doing so panics.
func NewStepBuilder() URLStage {
	return URLStage{s: &draft{}}
}

// URLStage is the initial stage of the staged builder. The zero value
// is ready to use.
type URLStage struct {
	s *draft
}

// WithURL sets the request URL. An empty URL is accepted here but
// causes Build to fail with ErrEmptyURL.
func (b URLStage) WithURL(url string) MethodStage {
	s := b.s
	if s == nil {
		s = &draft{}
	}
	next := s.take()
	next.d.url = url
	return MethodStage{s: next}
}

// MethodStage is the stage after the URL has been set.
type MethodStage struct {
	s *draft
}

// WithMethod sets the HTTP method. An empty method is accepted here
// and replaced by GET when the Descriptor is built.
func (b MethodStage) WithMethod(method string) HeaderStage {
	next := b.s.take()
	next.d.method = method
	return HeaderStage{s: next}
}

// HeaderStage is the stage after the method has been set. One header
// must be given before the request can be completed.
type HeaderStage struct {
	s *draft
}

// WithHeader sets the first request header.
func (b HeaderStage) WithHeader(name, value string) OptionalStage {
	next := b.s.take()
	next.d.header.set(name, value)
	return OptionalStage{s: next}
}

// OptionalStage is the final stage of the staged builder, where
// optional fields may be set in any order and the Descriptor built.
type OptionalStage struct {
	s *draft
}

// WithHeader sets a header. Setting a header name that is already set
// replaces its value.
func (b OptionalStage) WithHeader(name, value string) OptionalStage {
	next := b.s.take()
	next.d.header.set(name, value)
	return OptionalStage{s: next}
}

// WithQueryParam sets a query parameter. Setting a parameter name that
// is already set replaces its value.
func (b OptionalStage) WithQueryParam(name, value string) OptionalStage {
	next := b.s.take()
	next.d.query.set(name, value)
	return OptionalStage{s: next}
}

// WithBody sets the request body.
func (b OptionalStage) WithBody(body string) OptionalStage {
	next := b.s.take()
	next.d.body = body
	next.d.hasBody = true
	return OptionalStage{s: next}
}

// WithTimeout sets the request timeout in whole seconds. Zero is a
// valid timeout. A negative value, or one too large for a
// time.Duration, is not stored and causes Build to fail with
// ErrNegativeTimeout or ErrTimeoutTooLarge.
func (b OptionalStage) WithTimeout(seconds int) OptionalStage {
	next := b.s.take()
	if err := checkTimeout(seconds); err != nil {
		if next.err == nil {
			next.err = err
		}
	} else {
		next.d.timeout = seconds
		next.d.hasTimeout = true
	}
	return OptionalStage{s: next}
}

// Build consumes the stage and returns the finished Descriptor.
//
// Build fails with ErrEmptyURL if the URL is empty, whatever else was
// set, and otherwise with the error for the first invalid timeout
// given. No Descriptor is returned on failure.
func (b OptionalStage) Build() (*Descriptor, error) {
	last := b.s.take()
	return last.d.finish(last.err)
}
