// Copyright 2021 The stepreq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

// A Field is a single name/value pair, such as a header or a query
// parameter.
type Field struct {
	Name  string
	Value string
}

// fields is a set of uniquely-named values which remembers the order
// in which each name was first set. Setting an existing name replaces
// its value but keeps its original position.
type fields struct {
	names  []string
	values map[string]string
}

func (f *fields) set(name, value string) {
	if f.values == nil {
		f.values = make(map[string]string)
	}
	if _, ok := f.values[name]; !ok {
		f.names = append(f.names, name)
	}
	f.values[name] = value
}

func (f *fields) get(name string) (string, bool) {
	v, ok := f.values[name]
	return v, ok
}

func (f *fields) len() int {
	return len(f.names)
}

func (f *fields) list() []Field {
	if len(f.names) == 0 {
		return nil
	}
	l := make([]Field, len(f.names))
	for i, name := range f.names {
		l[i] = Field{Name: name, Value: f.values[name]}
	}
	return l
}

func (f *fields) clone() fields {
	if f.values == nil {
		return fields{}
	}
	c := fields{
		names:  make([]string, len(f.names)),
		values: make(map[string]string, len(f.values)),
	}
	copy(c.names, f.names)
	for k, v := range f.values {
		c.values[k] = v
	}
	return c
}

// equal ignores insertion order.
func (f *fields) equal(g *fields) bool {
	if len(f.values) != len(g.values) {
		return false
	}
	for k, v := range f.values {
		if w, ok := g.values[k]; !ok || w != v {
			return false
		}
	}
	return true
}
