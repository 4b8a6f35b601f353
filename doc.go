// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package pjson implements an incremental parser for partial JSON objects.
//
// The parser accepts a restricted grammar: objects, possibly nested, whose
// values are strings or other objects. Input arrives in pieces of any size, and
// at any point the caller may ask for the best snapshot of the object seen so
// far, even if the input ends in the middle of a key, a value, or a nested
// object.
//
// # Streaming
//
// Construct a Stream and feed it input with Consume, or use it as an
// io.Writer. Call Query to get a snapshot:
//
//	s := pjson.NewStream()
//	s.Consume(`{"name": "Inigo", "job": {"title": "fen`)
//	fmt.Println(s.Query().JSON()) // {"job":{"title":"fen"},"name":"Inigo"}
//
// Each call to Query rescans the whole buffer, so querying twice with no input
// in between gives equal results, and the final result does not depend on how
// the input was split into chunks.
//
// # Partial and unsupported input
//
// Query never reports an error. Instead:
//
//	Input                            | Result
//	-------------------------------- | --------------------------------
//	no "{" in the input              | empty object
//	object not closed                | members seen so far
//	nested object not closed         | nested members seen so far
//	key cut off                      | key omitted
//	string value cut off             | value truncated to the text seen
//	array, number, true, false, null | member omitted, siblings kept
//	empty string or empty object     | member omitted
//	text after the object closes     | ignored
//
// Strings are not unescaped: the first double quotation mark after an opening
// mark always ends the string, and a backslash has no special meaning.
//
// If the top-level object is reported invalid, Query discards it entirely and
// returns an empty object. Use Parse to see the complete outcome, including
// the Partial and Invalid flags and the location of the object in the input.
package pjson
