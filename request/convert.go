// Copyright 2021 The stepreq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	urlpkg "net/url"
	"strings"

	"golang.org/x/net/http/httpguts"
)

const nilCtxMsg = "stepreq/request: nil context"

// ToRequest creates a net/http request corresponding to d, with its
// context set to ctx. The request is not sent.
//
// Building a Descriptor does not check syntax, so ToRequest does: the
// URL must parse, the method must be a valid token, and every header
// name must be a valid header field name. Query parameters are added
// to any query already present in the URL, replacing parameters of the
// same name.
//
// The Descriptor's timeout is not applied to ctx. Use
// timeout.WithContext for that.
func (d *Descriptor) ToRequest(ctx context.Context) (*http.Request, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if !validMethod(d.method) {
		return nil, fmt.Errorf("stepreq/request: invalid method %q", d.method)
	}
	u, err := urlpkg.Parse(d.url)
	if err != nil {
		return nil, err
	}
	u.Host = removeEmptyPort(u.Host)
	if d.query.len() > 0 {
		q := u.Query()
		for _, f := range d.query.list() {
			q.Set(f.Name, f.Value)
		}
		u.RawQuery = q.Encode()
	}

	h := make(http.Header, d.header.len())
	for _, f := range d.header.list() {
		if !httpguts.ValidHeaderFieldName(f.Name) {
			return nil, fmt.Errorf("stepreq/request: invalid header name %q", f.Name)
		}
		h.Set(f.Name, f.Value)
	}

	r := &http.Request{
		Method:     d.method,
		URL:        u,
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     h,
		Host:       u.Host,
	}
	if d.hasBody && len(d.body) > 0 {
		body := d.body
		r.Body = ioutil.NopCloser(strings.NewReader(body))
		r.GetBody = func() (io.ReadCloser, error) {
			return ioutil.NopCloser(strings.NewReader(body)), nil
		}
		r.ContentLength = int64(len(body))
	}
	return r.WithContext(ctx), nil
}

// validMethod reports whether method is a token per RFC 7230. The
// method grammar is the same as the header field name grammar.
func validMethod(method string) bool {
	return httpguts.ValidHeaderFieldName(method)
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
