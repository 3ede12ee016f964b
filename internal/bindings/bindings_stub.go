//go:build !cgo

package bindings

import "unsafe"

// Stub implementations for non-cgo builds. These allow the package to compile
// but return ErrNotBuilt when called.

func Generation() string { return "" }

func CompiledAPIs() []uint32 { return nil }

func APIDisplayName(uint32) string { return "" }

func InCreate(uint32, string, uint32) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func InFree(unsafe.Pointer) {}

func InCurrentAPI(unsafe.Pointer) uint32 { return APIUnspecified }

func InSetCallback(unsafe.Pointer, uintptr) error { return ErrNotBuilt }

func InCancelCallback(unsafe.Pointer) error { return ErrNotBuilt }

func InIgnoreTypes(unsafe.Pointer, bool, bool, bool) error { return ErrNotBuilt }

func InMessage(unsafe.Pointer, []byte) (float64, int, error) {
	return 0, 0, ErrNotBuilt
}

func OutCreate(uint32, string) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func OutFree(unsafe.Pointer) {}

func OutCurrentAPI(unsafe.Pointer) uint32 { return APIUnspecified }

func OutSendMessage(unsafe.Pointer, []byte) error { return ErrNotBuilt }

func OpenPort(unsafe.Pointer, uint32, string) error { return ErrNotBuilt }

func OpenVirtualPort(unsafe.Pointer, string) error { return ErrNotBuilt }

func ClosePort(unsafe.Pointer) error { return ErrNotBuilt }

func PortCount(unsafe.Pointer) (uint32, error) { return 0, ErrNotBuilt }

func PortName(unsafe.Pointer, uint32) (string, error) { return "", ErrNotBuilt }
