// Copyright 2021 The stepreq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/gogama/stepreq"
	"github.com/gogama/stepreq/internal/catalog"
	"github.com/gogama/stepreq/request"
)

// examples builds one request with each builder and director helper.
func examples() ([]catalog.Entry, error) {
	type example struct {
		name  string
		build func() (*request.Descriptor, error)
	}
	list := []example{
		{"unordered", func() (*request.Descriptor, error) {
			return request.NewBuilder().
				WithURL("https://api.example.com").
				WithMethod("POST").
				WithHeader("Content-Type", "application/json").
				WithHeader("Accept", "application/json").
				WithQueryParam("key", "12345").
				WithBody(`{"name": "Aditya"}`).
				WithTimeout(60).
				Build()
		}},
		{"get", func() (*request.Descriptor, error) {
			return stepreq.Get("https://api.example.com/users")
		}},
		{"json-post", func() (*request.Descriptor, error) {
			return stepreq.JSONPost("https://api.example.com/users",
				`{"name": "Aditya", "email": "aditya@example.com"}`)
		}},
		{"staged", func() (*request.Descriptor, error) {
			return request.NewStepBuilder().
				WithURL("https://api.example.com/products").
				WithMethod("POST").
				WithHeader("Content-Type", "application/json").
				WithBody(`{"product": "Laptop", "price": 49999}`).
				WithTimeout(45).
				Build()
		}},
	}

	entries := make([]catalog.Entry, 0, len(list))
	var errs []error
	for _, ex := range list {
		d, err := ex.build()
		if err != nil {
			errs = append(errs, fmt.Errorf("request %q: %w", ex.name, err))
			continue
		}
		entries = append(entries, catalog.Entry{Name: ex.name, Descriptor: d})
	}
	return entries, errors.Join(errs...)
}
