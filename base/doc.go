// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base contains a collection of base infrastructure packages
// that serve as a base for the main Cogent Core packages.
package base
