// Copyright 2021 The stepreq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package catalog reads named request definitions from YAML and builds
// a request.Descriptor from each one.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/gogama/stepreq/request"
	"gopkg.in/yaml.v3"
)

// Builder kinds accepted in a Definition.
const (
	Staged    = "staged"
	Unordered = "unordered"
)

var (
	// ErrNoHeader is returned for a staged definition without headers,
	// since the staged builder requires at least one.
	ErrNoHeader = errors.New("catalog: staged builder requires at least one header")

	// ErrEmpty is returned by Parse when the document has no content.
	ErrEmpty = errors.New("catalog: empty document")
)

// A Pair is a header or query parameter in a Definition.
type Pair struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// A Definition describes one request. Builder selects the builder used
// to construct it; empty means Staged.
type Definition struct {
	Name    string  `yaml:"name"`
	Builder string  `yaml:"builder"`
	URL     string  `yaml:"url"`
	Method  string  `yaml:"method"`
	Headers []Pair  `yaml:"headers"`
	Query   []Pair  `yaml:"query"`
	Body    *string `yaml:"body"`
	Timeout *int    `yaml:"timeout"`
}

// A Catalog is an ordered list of request definitions.
type Catalog struct {
	Requests []Definition `yaml:"requests"`
}

// An Entry is a successfully built definition.
type Entry struct {
	Name       string
	Descriptor *request.Descriptor
}

// Load reads and parses the catalog file at path.
func Load(path string) (*Catalog, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse parses a YAML catalog document. Unknown keys are rejected.
func Parse(b []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, err
	}
	return &c, nil
}

// Build builds every definition in c, in order. Definitions that fail
// are left out of the returned entries, and their errors, each naming
// the definition, are joined into the returned error.
func (c *Catalog) Build() ([]Entry, error) {
	entries := make([]Entry, 0, len(c.Requests))
	var errs []error
	for i := range c.Requests {
		def := &c.Requests[i]
		d, err := def.Build()
		if err != nil {
			errs = append(errs, fmt.Errorf("request %q: %w", def.label(i), err))
			continue
		}
		entries = append(entries, Entry{Name: def.label(i), Descriptor: d})
	}
	return entries, errors.Join(errs...)
}

// Build constructs the Descriptor described by def.
func (def *Definition) Build() (*request.Descriptor, error) {
	switch def.Builder {
	case "", Staged:
		return def.buildStaged()
	case Unordered:
		return def.buildUnordered()
	default:
		return nil, fmt.Errorf("catalog: unknown builder %q", def.Builder)
	}
}

func (def *Definition) buildStaged() (*request.Descriptor, error) {
	if len(def.Headers) == 0 {
		return nil, ErrNoHeader
	}
	first := def.Headers[0]
	b := request.NewStepBuilder().
		WithURL(def.URL).
		WithMethod(def.Method).
		WithHeader(first.Name, first.Value)
	for _, h := range def.Headers[1:] {
		b = b.WithHeader(h.Name, h.Value)
	}
	for _, q := range def.Query {
		b = b.WithQueryParam(q.Name, q.Value)
	}
	if def.Body != nil {
		b = b.WithBody(*def.Body)
	}
	if def.Timeout != nil {
		b = b.WithTimeout(*def.Timeout)
	}
	return b.Build()
}

func (def *Definition) buildUnordered() (*request.Descriptor, error) {
	b := request.NewBuilder().
		WithURL(def.URL).
		WithMethod(def.Method)
	for _, h := range def.Headers {
		b.WithHeader(h.Name, h.Value)
	}
	for _, q := range def.Query {
		b.WithQueryParam(q.Name, q.Value)
	}
	if def.Body != nil {
		b.WithBody(*def.Body)
	}
	if def.Timeout != nil {
		b.WithTimeout(*def.Timeout)
	}
	return b.Build()
}

func (def *Definition) label(i int) string {
	if def.Name != "" {
		return def.Name
	}
	return fmt.Sprintf("#%d", i+1)
}
