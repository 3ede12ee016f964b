package bindings

import "sync"

// Callback receives one input message copied out of native memory along with
// its delta timestamp in seconds.
type Callback func(timestamp float64, message []byte)

// The registry maps small integer ids to Go closures so that the native
// user-data pointer never has to carry a real Go pointer. Ids are handed to C
// as fake pointers and looked back up when the input thread calls the
// trampoline.
var (
	mu   sync.Mutex
	next uintptr = 1
	reg          = map[uintptr]Callback{}
)

// RegisterCallback stores fn and returns its id. Ids are never reused.
func RegisterCallback(fn Callback) uintptr {
	mu.Lock()
	id := next
	next++
	reg[id] = fn
	mu.Unlock()
	return id
}

// UnregisterCallback releases id. Unknown ids are a no-op so that
// cancellation can race handle teardown.
func UnregisterCallback(id uintptr) {
	mu.Lock()
	delete(reg, id)
	mu.Unlock()
}

// Dispatch invokes the callback registered under id, if any. A missed lookup
// means the registration was cancelled while a message was in flight; the
// message is dropped. The closure runs outside the registry lock.
func Dispatch(id uintptr, timestamp float64, message []byte) {
	mu.Lock()
	fn := reg[id]
	mu.Unlock()
	if fn != nil {
		fn(timestamp, message)
	}
}

// CallbackCount reports the number of live registrations.
func CallbackCount() int {
	mu.Lock()
	n := len(reg)
	mu.Unlock()
	return n
}
