// Copyright 2021 The stepreq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package stepreq

import (
	"testing"
	"time"

	"github.com/gogama/stepreq/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		d, err := Get("https://api.example.com/users")
		require.NoError(t, err)
		assert.Equal(t, "GET", d.Method())
		assert.Equal(t, "https://api.example.com/users", d.URL())
		assert.Nil(t, d.Headers())
		_, ok := d.Body()
		assert.False(t, ok)
		_, ok = d.Timeout()
		assert.False(t, ok)
	})
	t.Run("empty URL", func(t *testing.T) {
		d, err := Get("")
		assert.Nil(t, d)
		assert.Same(t, request.ErrEmptyURL, err)
	})
}

func TestJSONPost(t *testing.T) {
	body := `{"name": "Aditya", "email": "aditya@example.com"}`
	d, err := JSONPost("https://api.example.com/users", body)
	require.NoError(t, err)
	assert.Equal(t, "POST", d.Method())
	assert.Equal(t, []request.Field{
		{Name: "Content-Type", Value: "application/json"},
		{Name: "Accept", Value: "application/json"},
	}, d.Headers())
	b, ok := d.Body()
	assert.True(t, ok)
	assert.Equal(t, body, b)

	_, err = JSONPost("", body)
	assert.Same(t, request.ErrEmptyURL, err)
}

func TestStagedJSONPost(t *testing.T) {
	d, err := StagedJSONPost("https://api.example.com/users", `{}`, 15)
	require.NoError(t, err)
	timeout, ok := d.Timeout()
	assert.True(t, ok)
	assert.Equal(t, 15*time.Second, timeout)

	u, err := JSONPost("https://api.example.com/users", `{}`)
	require.NoError(t, err)
	assert.False(t, d.Equal(u), "timeout differs")

	_, err = StagedJSONPost("https://api.example.com/users", `{}`, -1)
	assert.Same(t, request.ErrNegativeTimeout, err)
}
