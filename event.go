package tempconv

import (
	"encoding/json"
	"errors"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/lone-faerie/tempconv/config"
	"github.com/lone-faerie/tempconv/log"
)

// An Event describes one successful conversion performed by the shell.
type Event struct {
	Value     float64   `json:"value"`
	Scale     string    `json:"scale"`
	Converted float64   `json:"converted"`
	To        string    `json:"to"`
	Time      time.Time `json:"time"`
}

// A Publisher receives conversion events. Publishing is best-effort,
// the shell reports a failed publish and keeps running.
type Publisher interface {
	Publish(e Event) error
	Close()
}

// ErrPublishTimeout is returned when the broker does not acknowledge a
// conversion event within the configured write timeout.
var ErrPublishTimeout = errors.New("publish timed out")

type mqttPublisher struct {
	client   mqtt.Client
	topic    string
	qos      byte
	retained bool
	timeout  time.Duration
}

// NewPublisher connects to the broker described by cfg and returns a
// Publisher for conversion events.
func NewPublisher(cfg *config.MQTTConfig) (Publisher, error) {
	p := newPublisher(mqtt.NewClient(cfg.ClientOptions()), cfg)

	t := p.client.Connect()
	t.Wait()

	if err := t.Error(); err != nil {
		return nil, err
	}

	log.Info("Connected to broker", "broker", cfg.Broker)

	return p, nil
}

func newPublisher(client mqtt.Client, cfg *config.MQTTConfig) *mqttPublisher {
	return &mqttPublisher{
		client:   client,
		topic:    cfg.Topic,
		qos:      cfg.QoS,
		retained: cfg.Retained,
		timeout:  cfg.WriteTimeout,
	}
}

func (p *mqttPublisher) Publish(e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}

	t := p.client.Publish(p.topic, p.qos, p.retained, payload)
	if p.timeout > 0 {
		if !t.WaitTimeout(p.timeout) {
			return ErrPublishTimeout
		}
	} else {
		t.Wait()
	}

	return t.Error()
}

func (p *mqttPublisher) Close() {
	p.client.Disconnect(500)
}
