// Copyright 2021 The stepreq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"io/ioutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRequest(t *testing.T) {
	type foo struct{}
	ctx := context.WithValue(context.Background(), foo{}, "bar")

	t.Run("full", func(t *testing.T) {
		d, err := NewStepBuilder().
			WithURL("https://api.example.com/products?sort=asc").
			WithMethod("POST").
			WithHeader("Content-Type", "application/json").
			WithQueryParam("key", "12345").
			WithQueryParam("sort", "desc").
			WithBody(`{"product":"Laptop"}`).
			WithTimeout(45).
			Build()
		require.NoError(t, err)
		r, err := d.ToRequest(ctx)
		require.NoError(t, err)
		assert.Same(t, ctx, r.Context())
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "https://api.example.com/products?key=12345&sort=desc", r.URL.String())
		assert.Equal(t, "api.example.com", r.Host)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, int64(20), r.ContentLength)
		b, err := ioutil.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, `{"product":"Laptop"}`, string(b))
		require.NotNil(t, r.GetBody)
		rc, err := r.GetBody()
		require.NoError(t, err)
		b, err = ioutil.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, `{"product":"Laptop"}`, string(b))
	})
	t.Run("no body", func(t *testing.T) {
		d, err := NewBuilder().WithURL("http://ham:").Build()
		require.NoError(t, err)
		r, err := d.ToRequest(context.Background())
		require.NoError(t, err)
		assert.Nil(t, r.Body)
		assert.Nil(t, r.GetBody)
		assert.Equal(t, "ham", r.Host)
		assert.Equal(t, "ham", r.URL.Host)
	})
	t.Run("nil context", func(t *testing.T) {
		d, err := NewBuilder().WithURL("http://foo").Build()
		require.NoError(t, err)
		r, err := d.ToRequest(nil)
		assert.Nil(t, r)
		assert.EqualError(t, err, nilCtxMsg)
	})
	t.Run("invalid method", func(t *testing.T) {
		d, err := NewBuilder().WithURL("http://foo").WithMethod("GE T").Build()
		require.NoError(t, err)
		r, err := d.ToRequest(ctx)
		assert.Nil(t, r)
		assert.EqualError(t, err, `stepreq/request: invalid method "GE T"`)
	})
	t.Run("invalid header name", func(t *testing.T) {
		d, err := NewStepBuilder().WithURL("http://foo").WithMethod("GET").WithHeader("Bad Name", "x").Build()
		require.NoError(t, err)
		r, err := d.ToRequest(ctx)
		assert.Nil(t, r)
		assert.EqualError(t, err, `stepreq/request: invalid header name "Bad Name"`)
	})
	t.Run("invalid URL", func(t *testing.T) {
		d, err := NewBuilder().WithURL("http://[::1").Build()
		require.NoError(t, err)
		r, err := d.ToRequest(ctx)
		assert.Nil(t, r)
		assert.Error(t, err)
	})
}
