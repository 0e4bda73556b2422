// Package mock provides a mock MQTT client for testing publishing
// without a broker.
package mock

import (
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// A Message is a published topic/payload pair recorded by [Client].
type Message struct {
	Topic    string
	QoS      byte
	Retained bool
	Payload  []byte
}

// Client implements [mqtt.Client] against in-memory state, recording
// every published message.
type Client struct {
	// PublishErr, if set, is returned from the token of every Publish.
	PublishErr error
	// ConnectErr, if set, is returned from the token of Connect.
	ConnectErr error

	opts      *mqtt.ClientOptions
	connected bool
	messages  []Message
	mu        sync.Mutex
}

// NewClient returns a Client with the given options.
func NewClient(o *mqtt.ClientOptions) *Client {
	return &Client{opts: o}
}

// Messages returns the messages published so far.
func (c *Client) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]Message(nil), c.messages...)
}

func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.connected
}

func (c *Client) IsConnectionOpen() bool {
	return c.IsConnected()
}

func (c *Client) Connect() mqtt.Token {
	if c.ConnectErr != nil {
		return token{c.ConnectErr}
	}

	c.mu.Lock()
	c.connected = true
	c.mu.Unlock()

	if c.opts != nil && c.opts.OnConnect != nil {
		c.opts.OnConnect(c)
	}

	return token{}
}

func (c *Client) Disconnect(_ uint) {
	c.mu.Lock()
	c.connected = false
	c.mu.Unlock()
}

func (c *Client) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	if c.PublishErr != nil {
		return token{c.PublishErr}
	}

	var p []byte
	switch v := payload.(type) {
	case []byte:
		p = v
	case string:
		p = []byte(v)
	}

	c.mu.Lock()
	c.messages = append(c.messages, Message{topic, qos, retained, p})
	c.mu.Unlock()

	return token{}
}

func (c *Client) Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token {
	return token{}
}

func (c *Client) SubscribeMultiple(filters map[string]byte, callback mqtt.MessageHandler) mqtt.Token {
	return token{}
}

func (c *Client) Unsubscribe(topics ...string) mqtt.Token {
	return token{}
}

func (c *Client) AddRoute(topic string, callback mqtt.MessageHandler) {}

func (c *Client) OptionsReader() mqtt.ClientOptionsReader {
	return mqtt.NewOptionsReader(c.opts)
}

type token struct {
	err error
}

func (t token) Wait() bool { return true }

func (t token) WaitTimeout(_ time.Duration) bool { return true }

func (t token) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)

	return ch
}

func (t token) Error() error { return t.err }
