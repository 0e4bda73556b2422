package config

import (
	"crypto/tls"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/lone-faerie/tempconv/log"
)

// MQTTConfig is the configuration for publishing conversion events
// to an MQTT broker. Publishing is disabled while Broker is blank.
//
// See [mqtt.ClientOptions]
type MQTTConfig struct {
	// Broker is the URI of the broker. The format should be scheme://host:port
	// where "scheme" is one of "tcp", "ssl", or "ws", "host" is the ip-address
	// (or hostname) and "port" is the port on which the broker is accepting
	// connections.
	Broker string `yaml:"broker"`
	// ClientID is the (optional) client ID used when connecting to the broker.
	ClientID string `yaml:"client_id,omitempty"`
	// Username is the username used when connecting to the broker.
	Username string `yaml:"username"`
	// Password is the password used when connecting to the broker.
	Password string `yaml:"password"`
	// Topic is the topic conversion events are published to.
	Topic string `yaml:"topic"`
	// QoS is the Quality of Service used for conversion events. The
	// acceptable values are 0 (at most once, default), 1 (at least
	// once), and 2 (exactly once).
	QoS byte `yaml:"qos,omitempty"`
	// Retained indicates if the latest conversion event should be
	// retained at the broker. The default value is false.
	Retained bool `yaml:"retained"`
	// KeepAlive is the duration that the client should wait before pinging
	// the broker. This allows the client to know the connection hasn't been
	// lost.
	KeepAlive time.Duration `yaml:"keep_alive,omitempty"`
	// ConnectTimeout is the duration that the client will wait when attempting
	// to open a connection to the broker before timing out. A duration of 0
	// means the client will never time out.
	ConnectTimeout time.Duration `yaml:"connect_timeout,omitempty"`
	// WriteTimeout is the duration that the client will block for when
	// publishing an event before unblocking with a timeout error. A duration
	// of 0 means the client will never time out.
	WriteTimeout time.Duration `yaml:"write_timeout,omitempty"`
	// CertFile is the path to the PEM-encoded TLS certificate. If blank
	// (default) then TLS is not used between the client and the broker.
	CertFile string `yaml:"cert_file,omitempty"`
	// KeyFile is the path to the PEM-encoded TLS private key. If blank
	// (default) then TLS is not used between the client and the broker.
	KeyFile string `yaml:"key_file,omitempty"`
	// LogLevel is the log level to provide to the backing MQTT client
	// package. See [mqtt.Logger]
	LogLevel log.Level `yaml:"log_level,omitempty"`

	tlsCert *tls.Certificate
}

// DefaultMQTT is the event publishing configuration used when no
// config file provides one. With none of the environment variables
// set, the expanded broker is blank and publishing stays disabled.
var DefaultMQTT = MQTTConfig{
	Broker:         "$TEMPCONV_BROKER_ADDRESS",
	Username:       "$TEMPCONV_BROKER_USERNAME",
	Password:       "$TEMPCONV_BROKER_PASSWORD",
	Topic:          "tempconv/conversion",
	ConnectTimeout: 10 * time.Second,
	WriteTimeout:   5 * time.Second,
	LogLevel:       log.LevelDisabled,
}

// Enabled reports whether conversion events should be published.
func (cfg *MQTTConfig) Enabled() bool {
	return cfg.Broker != ""
}

// ClientOptions returns cfg formatted as [mqtt.ClientOptions] to
// provide to the backing MQTT client when calling [mqtt.NewClient].
func (cfg *MQTTConfig) ClientOptions() *mqtt.ClientOptions {
	o := mqtt.NewClientOptions()
	o.AddBroker(cfg.Broker)
	o.SetClientID(cfg.ClientID)
	o.SetUsername(cfg.Username).SetPassword(cfg.Password)

	if cfg.KeepAlive > 0 {
		o.SetKeepAlive(cfg.KeepAlive)
	}

	if cfg.ConnectTimeout > 0 {
		o.SetConnectTimeout(cfg.ConnectTimeout)
	}

	if cfg.WriteTimeout > 0 {
		o.SetWriteTimeout(cfg.WriteTimeout)
	}

	if cfg.CertFile != "" && cfg.KeyFile != "" {
		o.SetTLSConfig(&tls.Config{
			GetCertificate: cfg.getCertificate,
		})
	}

	cfg.setClientLoggers()

	return o
}

// setClientLoggers routes the paho client's package-level loggers
// through the default logger at the configured level.
func (cfg *MQTTConfig) setClientLoggers() {
	if cfg.LogLevel >= log.LevelDisabled {
		return
	}

	if cfg.LogLevel <= log.LevelError {
		mqtt.CRITICAL = log.ErrorLogger()
		mqtt.ERROR = log.ErrorLogger()
	}

	if cfg.LogLevel <= log.LevelWarn {
		mqtt.WARN = log.WarnLogger()
	}

	if cfg.LogLevel <= log.LevelDebug {
		mqtt.DEBUG = log.DebugLogger()
	}
}

func (cfg *MQTTConfig) getCertificate(_ *tls.ClientHelloInfo) (*tls.Certificate, error) {
	if cfg.tlsCert == nil {
		cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
		if err != nil {
			return nil, err
		}

		cfg.tlsCert = &cert
	}

	return cfg.tlsCert, nil
}

// IsZero indicates whether cfg is the default value.
func (cfg MQTTConfig) IsZero() bool {
	return cfg == DefaultMQTT
}
