// Copyright 2021 The stepreq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package stepreq builds immutable HTTP request descriptors, either step
by step through a builder whose stages are checked by the compiler, or
through a conventional fluent builder.

For the common cases, use the helper functions:

	d, err := stepreq.Get("https://api.example.com/users")
	...
	d, err := stepreq.JSONPost("https://api.example.com/users",
		`{"name": "Aditya"}`)

For full control, drive a builder from package request directly:

	d, err := request.NewStepBuilder().
		WithURL("https://api.example.com/products").
		WithMethod("POST").
		WithHeader("Content-Type", "application/json").
		WithTimeout(45).
		Build()

A descriptor is only a description. To send it, convert it to a
net/http request with ToRequest, and decide its timeout with a policy
from package timeout:

	ctx, cancel := timeout.WithContext(ctx, d, timeout.DefaultPolicy)
	defer cancel()
	r, err := d.ToRequest(ctx)
	...
	resp, err := http.DefaultClient.Do(r)
*/
package stepreq
