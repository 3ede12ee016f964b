// Package logging provides a minimal logging facade for the rtmidi wrapper.
//
// The Logger interface wraps a subset of go.uber.org/zap so applications can
// route the wrapper's lifecycle events into their own logging setup, or
// replace the implementation entirely in tests.
//
// The default implementation is zap-backed:
//
//	logger := logging.New(nil) // binds to zap.L()
//
//	zl, _ := zap.NewDevelopment()
//	logger = logging.New(zl)
//
//	in, err := rtmidi.NewIn(rtmidi.WithLogger(logger))
//
// Handles log lifecycle events only (creation, port open and close, callback
// install and cancel). Nothing is logged per message, so the facade stays off
// the realtime path.
package logging
