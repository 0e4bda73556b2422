package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lone-faerie/tempconv/config"
	"github.com/lone-faerie/tempconv/log"
)

func TestDefault(t *testing.T) {
	t.Setenv("TEMPCONV_BROKER_ADDRESS", "")
	t.Setenv("TEMPCONV_BROKER_USERNAME", "")
	t.Setenv("TEMPCONV_BROKER_PASSWORD", "")

	cfg := config.Default()

	if want, got := log.LevelInfo, cfg.Log.Level; got != want {
		t.Errorf("Level: want %v, got %v", want, got)
	}
	if want, got := "temperature_converter.log", cfg.Log.File; got != want {
		t.Errorf("File: want %q, got %q", want, got)
	}
	if want, got := "tempconv/conversion", cfg.MQTT.Topic; got != want {
		t.Errorf("Topic: want %q, got %q", want, got)
	}
	if cfg.MQTT.Enabled() {
		t.Error("Publishing enabled without a broker")
	}
}

func TestRead(t *testing.T) {
	t.Setenv("TEST_BROKER", "tcp://10.0.0.2:1883")

	const doc = `
log:
  level: warn
  file: /tmp/tempconv.log
  format: json
mqtt:
  broker: $TEST_BROKER
  username: temp
  topic: home/conversions
  qos: 1
`

	cfg, err := config.Read(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}

	if want, got := log.LevelWarn, cfg.Log.Level; got != want {
		t.Errorf("Level: want %v, got %v", want, got)
	}
	if want, got := "/tmp/tempconv.log", cfg.Log.File; got != want {
		t.Errorf("File: want %q, got %q", want, got)
	}
	if want, got := "json", cfg.Log.Format; got != want {
		t.Errorf("Format: want %q, got %q", want, got)
	}
	if want, got := "tcp://10.0.0.2:1883", cfg.MQTT.Broker; got != want {
		t.Errorf("Broker: want %q, got %q", want, got)
	}
	if want, got := "home/conversions", cfg.MQTT.Topic; got != want {
		t.Errorf("Topic: want %q, got %q", want, got)
	}
	if want, got := byte(1), cfg.MQTT.QoS; got != want {
		t.Errorf("QoS: want %d, got %d", want, got)
	}
	if !cfg.MQTT.Enabled() {
		t.Error("Publishing disabled with a broker configured")
	}
}

func TestReadEmpty(t *testing.T) {
	t.Setenv("TEMPCONV_BROKER_ADDRESS", "")

	cfg, err := config.Read(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if want, got := log.LevelInfo, cfg.Log.Level; got != want {
		t.Errorf("Level: want %v, got %v", want, got)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Setenv("TEMPCONV_BROKER_ADDRESS", "")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if want, got := "temperature_converter.log", cfg.Log.File; got != want {
		t.Errorf("File: want %q, got %q", want, got)
	}
}

func TestExpand(t *testing.T) {
	t.Setenv("TEST_VALUE", "hello")

	if want, got := "hello", config.Expand("$TEST_VALUE"); got != want {
		t.Errorf("Wanted %q, got %q", want, got)
	}
	if want, got := "hello", config.Expand("${TEST_VALUE}"); got != want {
		t.Errorf("Wanted %q, got %q", want, got)
	}
	// Unreadable secrets fall back to blank.
	if want, got := "", config.Expand("!secret tempconv_test_missing"); got != want {
		t.Errorf("Wanted %q, got %q", want, got)
	}
}

func TestWriteRead(t *testing.T) {
	t.Setenv("TEMPCONV_BROKER_ADDRESS", "")
	t.Setenv("TEMPCONV_BROKER_USERNAME", "")
	t.Setenv("TEMPCONV_BROKER_PASSWORD", "")

	cfg := config.Default()
	cfg.Log.Level = log.LevelError

	var buf bytes.Buffer
	if err := cfg.Write(&buf); err != nil {
		t.Fatal(err)
	}

	got, err := config.Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.Log != cfg.Log {
		t.Errorf("Log: want %+v, got %+v", cfg.Log, got.Log)
	}
	if got.MQTT.Topic != cfg.MQTT.Topic {
		t.Errorf("Topic: want %q, got %q", cfg.MQTT.Topic, got.MQTT.Topic)
	}
}

func TestWatch(t *testing.T) {
	t.Setenv("TEMPCONV_BROKER_ADDRESS", "")

	path := filepath.Join(t.TempDir(), "tempconv.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: info\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan *config.Config, 1)

	stop, err := config.Watch(path, func(cfg *config.Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	defer stop()

	if err := os.WriteFile(path, []byte("log:\n  level: error\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if want, got := log.LevelError, cfg.Log.Level; got != want {
			t.Errorf("Level: want %v, got %v", want, got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for reload")
	}
}
