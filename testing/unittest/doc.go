// Package unittest holds the protobuf_unittest types used to test generated code and the
// reflection layer. protobuf_unittest.tw.go is generated from package schema.
package unittest

//go:generate go run ./gen -dir .
