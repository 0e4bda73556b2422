package main

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lone-faerie/tempconv/config"
	"github.com/lone-faerie/tempconv/internal/cleanup"
	"github.com/lone-faerie/tempconv/log"
)

const fullDocsFooter = `Full documentation is available at:
https://pkg.go.dev/github.com/lone-faerie/tempconv`

// ExitError is an error that should cause the program to exit with
// the given code.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func findConfig() {
	const defaultConfigFile = "tempconv.yaml"

	if len(ConfigPath) > 0 {
		return
	}

	if env, ok := os.LookupEnv("TEMPCONV_CONFIG_PATH"); ok {
		ConfigPath = strings.Split(env, ",")
		return
	}

	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		ConfigPath = []string{filepath.Join(xdg, defaultConfigFile)}
		return
	}

	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	ConfigPath = []string{filepath.Join(home, ".config", defaultConfigFile)}
}

func maybeWithPort(addr string, port int) string {
	var hasPort bool

	if last := addr[len(addr)-1]; '0' <= last && last <= '9' {
		for _, c := range addr {
			switch {
			case c == ':':
				hasPort = true
			case '0' <= c && c <= '9':
				hasPort = hasPort && true
			default:
				hasPort = false
			}
		}
	}

	if hasPort || port < 0 {
		return addr
	}

	return addr + ":" + strconv.Itoa(port)
}

func flagsToConfig(cfg *config.Config, cmd *cobra.Command) {
	flags := cmd.Flags()

	if flags.Changed("log") {
		cfg.Log.Level = log.Level(LogLevel)
	}

	if LogFile != "" {
		cfg.Log.File = LogFile
	}

	if Broker != "" {
		cfg.MQTT.Broker = maybeWithPort(Broker, Port)
	}

	if Username != "" {
		cfg.MQTT.Username = Username
	}

	if Password != "" {
		cfg.MQTT.Password = Password
	}

	if Topic != "" {
		cfg.MQTT.Topic = Topic
	}
}

// setLogHandler installs the handler described by cfg.Log. Events are
// appended to the log file and mirrored to stdout.
func setLogHandler(cfg *config.Config) {
	var w io.Writer

	switch strings.ToLower(cfg.Log.File) {
	case "discard":
		log.SetHandler(log.DiscardHandler)
		return
	case "", "stdout":
		w = os.Stdout
	default:
		f, err := os.OpenFile(cfg.Log.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			log.Error("Unable to open log file, deferring to stdout", err, "file", cfg.Log.File)
			w = os.Stdout
			break
		}

		cleanup.Register(func() { f.Close() })

		w = io.MultiWriter(os.Stdout, f)
	}

	log.SetLogLevel(cfg.Log.Level)

	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		log.SetJSONHandler(w)
	default:
		log.SetTextHandler(w)
	}
}
