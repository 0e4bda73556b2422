// Package cleanup registers functions to run at process end, i.e.
// closing the log file and disconnecting the MQTT client.
package cleanup

import "sync"

var (
	registered []func()
	mu         sync.Mutex
)

// Register adds fn to the functions run by [Cleanup].
func Register(fn func()) {
	mu.Lock()
	defer mu.Unlock()

	registered = append(registered, fn)
}

// Cleanup runs the registered functions in registration order.
func Cleanup() {
	mu.Lock()
	defer mu.Unlock()

	for _, fn := range registered {
		fn()
	}

	registered = nil
}
