// Copyright 2021 The stepreq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"context"
	"time"

	"github.com/gogama/stepreq/request"
)

// A Policy decides the timeout to apply when a request described by a
// request.Descriptor is eventually sent.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	// Timeout returns the timeout to use for the request described by
	// d. The return value must be positive; a zero or negative timeout
	// means the request times out immediately.
	Timeout(d *request.Descriptor) time.Duration
}

// DefaultPolicy is the default timeout policy. It uses the descriptor's
// own timeout when one was set, and 30 seconds otherwise.
var DefaultPolicy Policy = Fallback(30 * time.Second)

// Infinite is a built-in timeout policy which never times out.
var Infinite Policy = Fixed(1<<63 - 1)

// Fixed constructs a timeout policy that always returns d, ignoring any
// timeout set on the descriptor.
func Fixed(d time.Duration) Policy {
	return fixed(d)
}

// Fallback constructs a timeout policy that returns the descriptor's
// own timeout if it has one, and d otherwise.
//
// Use Fallback to supply the caller-defined default for descriptors
// built without a timeout. A descriptor timeout of zero is honored as
// zero, not replaced by d.
func Fallback(d time.Duration) Policy {
	return fallback(d)
}

// Bounded constructs a timeout policy that clamps the value returned
// by p to the closed interval [lo, hi].
//
// Consider the following timeout policy:
//
//	p := Bounded(Fallback(10*time.Second), time.Second, time.Minute)
//
// The policy p uses the descriptor's timeout if set, or 10 seconds if
// not, but never less than 1 second nor more than 1 minute. The result
// is undefined if lo is greater than hi.
func Bounded(p Policy, lo, hi time.Duration) Policy {
	return bounded{p: p, lo: lo, hi: hi}
}

// WithContext returns a copy of ctx with a timeout decided by applying
// p to d. As with context.WithTimeout, the caller must call the
// returned cancel function to release resources.
func WithContext(ctx context.Context, d *request.Descriptor, p Policy) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, p.Timeout(d))
}

type fixed time.Duration

func (p fixed) Timeout(_ *request.Descriptor) time.Duration {
	return time.Duration(p)
}

type fallback time.Duration

func (p fallback) Timeout(d *request.Descriptor) time.Duration {
	if t, ok := d.Timeout(); ok {
		return t
	}
	return time.Duration(p)
}

type bounded struct {
	p      Policy
	lo, hi time.Duration
}

func (p bounded) Timeout(d *request.Descriptor) time.Duration {
	t := p.p.Timeout(d)
	if t < p.lo {
		return p.lo
	}
	if t > p.hi {
		return p.hi
	}
	return t
}
