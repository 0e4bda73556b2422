// Package tempconv implements an interactive console utility for
// converting temperatures between Celsius and Fahrenheit.
//
// The conversion primitives and physical-bound validation live in this
// package and are pure functions. [Shell] drives the interactive menu
// loop over an injected reader and writer, so the whole console
// protocol is testable without a terminal. When an MQTT broker is
// configured, each successful conversion is also published as a JSON
// [Event].
//
// Configuration is loaded from a YAML file. If no config file is
// specified, the default path will be determined by the first defined
// value of $TEMPCONV_CONFIG_PATH, $XDG_CONFIG_HOME/tempconv.yaml, or
// $HOME/.config/tempconv.yaml. If none of these files exist, the
// default configuration will be used, which looks for the following
// environment variables:
//
//   - broker:   $TEMPCONV_BROKER_ADDRESS
//   - username: $TEMPCONV_BROKER_USERNAME
//   - password: $TEMPCONV_BROKER_PASSWORD
//
// Full documentation is available at:
// https://pkg.go.dev/github.com/lone-faerie/tempconv
package tempconv
