// Copyright 2021 The stepreq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout defines policies for deciding the effective timeout
// of a request descriptor, including the caller's default for
// descriptors built without a timeout. A generic interface for timeout
// policies is provided, Policy, along with several useful policy
// generating functions and built-in policies.
package timeout
