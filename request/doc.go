// Copyright 2021 The stepreq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core type Descriptor (an immutable
description of an HTTP request) and the two builders which produce it.

A Descriptor records what to send: URL, method, headers, query
parameters, an optional body and an optional timeout in seconds. It
does not send anything. Once built it cannot be changed, and accessors
which return collections return copies.

The staged builder fixes the order in which a request is described and
lets the compiler enforce it. Each stage is its own type exposing only
the methods legal at that point, so a request without a method, or a
header set before the method, does not type-check:

	d, err := request.NewStepBuilder().
		WithURL("https://api.example.com/products").
		WithMethod("POST").
		WithHeader("Content-Type", "application/json").
		WithBody(`{"product":"Laptop"}`).
		WithTimeout(45).
		Build()

Every stage transition consumes the stage it is called on. Keeping a
stage value and advancing it a second time is a programming error and
panics.

The unordered builder accepts the same fields in any order and checks
them only when Build is called:

	d, err := request.NewBuilder().
		WithMethod("GET").
		WithURL("https://api.example.com/users").
		Build()

Both builders fail with ErrEmptyURL if the URL is empty and with
ErrNegativeTimeout if a negative timeout was given. Neither checks the
syntax of the URL, method or headers; ToRequest does that when
converting a Descriptor to a net/http request.
*/
package request
