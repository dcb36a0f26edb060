// Copyright 2021 The stepreq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/gogama/stepreq/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func descriptor(t *testing.T, seconds ...int) *request.Descriptor {
	b := request.NewBuilder().WithURL("https://example.com")
	for _, s := range seconds {
		b.WithTimeout(s)
	}
	d, err := b.Build()
	require.NoError(t, err)
	return d
}

func TestDefault(t *testing.T) {
	a := DefaultPolicy.Timeout(descriptor(t))
	assert.Equal(t, 30*time.Second, a)
	b := DefaultPolicy.Timeout(descriptor(t, 45))
	assert.Equal(t, 45*time.Second, b)
}

func TestInfinite(t *testing.T) {
	a := Infinite.Timeout(descriptor(t))
	assert.Equal(t, time.Duration(math.MaxInt64), a)
	b := Infinite.Timeout(descriptor(t, 10))
	assert.Equal(t, time.Duration(math.MaxInt64), b)
}

func TestFixed(t *testing.T) {
	p := Fixed(33 * time.Hour)
	a := p.Timeout(descriptor(t))
	assert.Equal(t, 33*time.Hour, a)
	b := p.Timeout(descriptor(t, 1))
	assert.Equal(t, 33*time.Hour, b)
}

func TestFallback(t *testing.T) {
	p := Fallback(5 * time.Millisecond)
	assert.Equal(t, 5*time.Millisecond, p.Timeout(descriptor(t)))
	assert.Equal(t, 2*time.Second, p.Timeout(descriptor(t, 2)))
	assert.Equal(t, time.Duration(0), p.Timeout(descriptor(t, 0)))
}

func TestBounded(t *testing.T) {
	p := Bounded(Fallback(10*time.Second), time.Second, time.Minute)
	assert.Equal(t, 10*time.Second, p.Timeout(descriptor(t)))
	assert.Equal(t, time.Second, p.Timeout(descriptor(t, 0)))
	assert.Equal(t, 30*time.Second, p.Timeout(descriptor(t, 30)))
	assert.Equal(t, time.Minute, p.Timeout(descriptor(t, 3600)))
}

func TestWithContext(t *testing.T) {
	before := time.Now()
	ctx, cancel := WithContext(context.Background(), descriptor(t, 45), DefaultPolicy)
	defer cancel()
	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, before.Add(45*time.Second), deadline, 5*time.Second)
	cancel()
	assert.Error(t, ctx.Err())
}
