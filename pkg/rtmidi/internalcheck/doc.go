// Package internalcheck provides internal validation and testing utilities.
//
// This package contains source-level policy checks used internally by the
// rtmidi-go library to keep the public wrapper honest: explicit error
// returns everywhere, raw pointers confined to the handle state. It is not
// intended for external use and the API may change without notice.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications using the rtmidi-go library. Use the public API
// provided by pkg/rtmidi instead.
package internalcheck
