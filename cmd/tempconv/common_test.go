package main

import "testing"

func TestMaybeWithPort(t *testing.T) {
	var tests = []struct {
		addr string
		port int
		want string
	}{
		{"tcp://127.0.0.1", 1883, "tcp://127.0.0.1:1883"},
		{"127.0.0.1:1883", 1883, "127.0.0.1:1883"},
		{"localhost", 1883, "localhost:1883"},
		{"broker.local", -1, "broker.local"},
		{"ssl://broker:8883", 1883, "ssl://broker:8883"},
	}
	for _, tt := range tests {
		got := maybeWithPort(tt.addr, tt.port)
		if got != tt.want {
			t.Errorf("%q: Wanted %q, got %q", tt.addr, tt.want, got)
		}
	}
}
