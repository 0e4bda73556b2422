package main

import (
	"github.com/spf13/cobra"

	"github.com/lone-faerie/tempconv/config"
	"github.com/lone-faerie/tempconv/log"
)

// NewCmdConfig returns the [cobra.Command] that prints the effective
// configuration, after file loading, expansion, and flag overrides,
// as yaml.
//
// Usage:
//
//	tempconv config [flags]
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log.SetHandler(log.DiscardHandler)
			findConfig()

			cfg, err := config.Load(ConfigPath...)
			if err != nil {
				return err
			}

			flagsToConfig(cfg, cmd)

			return cfg.Write(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringSliceVarP(&ConfigPath, "config", "c", nil, "Path(s) to config file")
	cmd.Flags().VarP(&LogLevel, "log", "l", "Log level")
	cmd.Flags().StringVarP(&Broker, "broker", "b", "", "MQTT broker address")
	cmd.Flags().IntVarP(&Port, "port", "p", 1883, "MQTT broker port")

	cmd.MarkFlagFilename("config", "yaml", "yml")

	return cmd
}

func init() {
	RootCommand.AddCommand(NewCmdConfig())
}
