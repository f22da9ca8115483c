// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil provides efficient path building utilities for document
// traversal during decoding.
//
// The primary type is [PathBuilder], which uses push/pop semantics to build
// paths incrementally without allocating intermediate strings. Codecs push a
// segment before descending into a field, element, or mapping value and pop
// it on the way back; the string is only materialized when a diagnostic is
// reported.
//
// Use [Get] to obtain a pooled PathBuilder, and [Put] to return it:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("components")
//	path.Push("schemas")
//	path.PushKey("Pet")
//	// ... recurse ...
//	path.Pop()
//
// Array indices are supported via [PathBuilder.PushIndex], and mapping keys
// that are not plain identifiers are bracketed by [PathBuilder.PushKey]:
//
//	path.Push("paths")
//	path.PushKey("/pets")  // produces `paths["/pets"]`
//	path.Push("allOf")
//	path.PushIndex(0)      // produces `paths["/pets"].allOf[0]`
//
// The package also provides the fixed "#/components/<collection>/" prefixes
// used by local references.
package pathutil
