// Copyright 2021 The stepreq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package stepreq

import (
	"github.com/gogama/stepreq/request"
)

const jsonContentType = "application/json"

// Get returns a descriptor for a GET request to url.
func Get(url string) (*request.Descriptor, error) {
	return request.NewBuilder().
		WithURL(url).
		WithMethod("GET").
		Build()
}

// JSONPost returns a descriptor for a POST request sending jsonBody to
// url. The Content-Type and Accept headers are both set to
// application/json. The body is not checked to be valid JSON.
func JSONPost(url, jsonBody string) (*request.Descriptor, error) {
	return request.NewBuilder().
		WithURL(url).
		WithMethod("POST").
		WithHeader("Content-Type", jsonContentType).
		WithHeader("Accept", jsonContentType).
		WithBody(jsonBody).
		Build()
}

// StagedJSONPost is like JSONPost but builds the descriptor with the
// staged builder and also sets a timeout, in seconds.
func StagedJSONPost(url, jsonBody string, timeoutSeconds int) (*request.Descriptor, error) {
	return request.NewStepBuilder().
		WithURL(url).
		WithMethod("POST").
		WithHeader("Content-Type", jsonContentType).
		WithHeader("Accept", jsonContentType).
		WithBody(jsonBody).
		WithTimeout(timeoutSeconds).
		Build()
}
