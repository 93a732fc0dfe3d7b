// Package collections provides [List][T], a fluent, immutable list facade
// over the fixed-size slice helpers in package arr.
//
// # Overview
//
// A List wraps a private slice and exposes the arr helpers as chainable
// methods:
//
//	names := collections.New("ann", "bob").
//	    Add("cid").
//	    Insert(0, "zed").
//	    RemoveAt(2).
//	    All() // → [zed ann cid]
//
// # Immutability
//
// Every structural method returns a *new* List and leaves the receiver
// unchanged, Reverse included. The index policies are those of package arr:
// Insert, InsertRange, GetRange and Resize clamp; RemoveAt, RemoveRange and
// Remove ignore invalid input; the bounded IndexOf*/LastIndexOf* queries
// return [arr.ErrArgumentOutOfRange].
//
// A List is safe for concurrent reads. It has no locking, and none is needed
// because no method writes to an existing List.
package collections
