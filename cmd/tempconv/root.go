// The tempconv command starts an interactive menu for converting
// temperatures between Celsius and Fahrenheit.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lone-faerie/tempconv"
	"github.com/lone-faerie/tempconv/config"
	"github.com/lone-faerie/tempconv/internal/build"
	"github.com/lone-faerie/tempconv/internal/cleanup"
	"github.com/lone-faerie/tempconv/log"
)

// Flags for [RootCommand]
var (
	ConfigPath []string      // Path(s) to config file (default is first of $TEMPCONV_CONFIG_PATH, $XDG_CONFIG_HOME/tempconv.yaml, $HOME/.config/tempconv.yaml)
	LogLevel   log.LevelFlag // Log level
	LogFile    string        // Log file
	Broker     string        // MQTT broker address
	Port       int           // MQTT broker port
	Username   string        // MQTT client username
	Password   string        // MQTT client password
	Topic      string        // Topic conversion events are published to
)

var cfg *config.Config

// RootCommand is the [cobra.Command] that starts the interactive
// conversion menu.
var RootCommand = &cobra.Command{
	Use:   "tempconv [--config <path>]... [flags]",
	Short: "Interactive Celsius/Fahrenheit temperature converter",
	Long: `Run an interactive menu for converting temperatures between Celsius and Fahrenheit.

Inputs are validated against the physical bounds of each scale (-273.15°C to 1000°C, -459.67°F to 1832°F) before converting. Every conversion and every rejected input is logged to the configured log file and mirrored to stdout.

Tempconv can load configuration from a YAML file. If no config file is specified, the default path will be determined by the first defined value of $TEMPCONV_CONFIG_PATH, $XDG_CONFIG_HOME/tempconv.yaml, or $HOME/.config/tempconv.yaml. If none of these files exist, the default configuration will be used, which looks for the following environment variables:

	- broker:   $TEMPCONV_BROKER_ADDRESS
	- username: $TEMPCONV_BROKER_USERNAME
	- password: $TEMPCONV_BROKER_PASSWORD

If a broker is configured, every successful conversion is also published to the broker as a JSON event. All of the flags, if specified, will override the equivalent values in the config. The format of --broker should be scheme://host:port where "scheme" is one of "tcp", "ssl", or "ws", "host" is the ip-address (or hostname) and "port" is the port on which the broker is accepting connections. If "port" is not defined, it will use the value of --port (default 1883).`,
	Example: `  tempconv
  tempconv --config config.yaml
  tempconv --broker 127.0.0.1:1883 --username tempconv --password p@55w0rd`,
	Version:      build.Version(),
	Args:         cobra.NoArgs,
	PreRunE:      setup,
	RunE:         run,
	SilenceUsage: true,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		cleanup.Cleanup()
	},
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},

	DisableFlagsInUseLine: true,
}

func init() {
	RootCommand.Flags().SortFlags = false
	RootCommand.Flags().StringSliceVarP(&ConfigPath, "config", "c", nil, "Path(s) to config file")
	RootCommand.Flags().VarP(&LogLevel, "log", "l", "Log level")
	RootCommand.Flags().StringVar(&LogFile, "log-file", "", "Log file, \"stdout\" or \"discard\"")
	RootCommand.Flags().StringVarP(&Broker, "broker", "b", "", "MQTT broker address")
	RootCommand.Flags().IntVarP(&Port, "port", "p", 1883, "MQTT broker port")
	RootCommand.Flags().StringVar(&Username, "username", "", "MQTT client username")
	RootCommand.Flags().StringVar(&Password, "password", "", "MQTT client password")
	RootCommand.Flags().StringVarP(&Topic, "topic", "t", "", "Topic conversion events are published to")

	RootCommand.MarkFlagFilename("config", "yaml", "yml")

	RootCommand.SetHelpTemplate(RootCommand.HelpTemplate() + "\n" + fullDocsFooter + "\n")
}

// setup loads the config, applies flag overrides, and installs the
// log handler. Any failure here is fatal to startup and exits with
// status 1.
func setup(cmd *cobra.Command, _ []string) (err error) {
	log.With("logger", "tempconv")
	findConfig()

	cfg, err = config.Load(ConfigPath...)
	if err != nil {
		log.Error("Critical error loading config", err, "path", ConfigPath)
		return &ExitError{err, 1}
	}

	flagsToConfig(cfg, cmd)
	setLogHandler(cfg)
	log.Info("Config loaded")

	return nil
}

func run(cmd *cobra.Command, _ []string) error {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-interrupt
		log.Warn("Interrupted by user")
		fmt.Fprintln(cmd.OutOrStdout(), "\nOperation cancelled.")
		cleanup.Cleanup()
		os.Exit(0)
	}()

	var opts []tempconv.ShellOption

	if cfg.MQTT.Enabled() {
		pub, err := tempconv.NewPublisher(&cfg.MQTT)
		if err != nil {
			log.Error("Critical error connecting to broker", err, "broker", cfg.MQTT.Broker)
			return &ExitError{err, 1}
		}

		cleanup.Register(pub.Close)
		opts = append(opts, tempconv.WithPublisher(pub))
	}

	watchConfig()

	shell := tempconv.NewShell(cmd.InOrStdin(), cmd.OutOrStdout(), opts...)
	log.Info("Session started")

	if err := shell.Run(); err != nil {
		return &ExitError{err, 1}
	}

	return nil
}

// watchConfig re-applies the log level when the config file changes
// while the session runs. Missing files are not watched.
func watchConfig() {
	if len(ConfigPath) == 0 {
		return
	}

	path := ConfigPath[0]
	if _, err := os.Stat(path); err != nil {
		return
	}

	stop, err := config.Watch(path, func(c *config.Config) {
		log.SetLogLevel(c.Log.Level)
	})
	if err != nil {
		log.Warn("Config watching unavailable", "cause", err)
		return
	}

	cleanup.Register(func() { stop() })
}

func main() {
	if c, err := RootCommand.ExecuteC(); err != nil {
		if exit, ok := err.(*ExitError); ok {
			os.Exit(exit.Code)
		}

		c.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
