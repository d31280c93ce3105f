package main

import (
	"github.com/BurntSushi/xdg"
	"github.com/alecthomas/repr"
	"github.com/fatih/color"
	"github.com/fd0/idfparse/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var configFile string
var configPaths = xdg.Paths{}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file to read at startup (default is $XDG_CONFIG_HOME/idfparse.toml)")
}

const configFileName = "idfparse.toml"

var cfg = config.Default()

// initConfig looks for the configuration file.
func initConfig() {
	if configFile != "" {
		return
	}

	var err error
	configFile, err = configPaths.ConfigFile(configFileName)
	if err != nil {
		D("%v\n", err)
		configFile = ""
		return
	}

	V("config file is %q\n", configFile)
}

func parseConfig(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		V("load config file %q\n", configFile)

		c, err := config.ParseFile(configFile)
		if err != nil {
			return errors.WithMessage(err, "parse config file failed")
		}

		cfg = c

		if err = presetFlags(cfg); err != nil {
			return err
		}
	}

	if noColor || !cfg.Color {
		color.NoColor = true
	}

	D("config: %s\n", repr.String(cfg))

	if writeTables {
		V("the grammar is compiled in, no parser tables are written\n")
	}

	return nil
}

// settingFlag names the config file setting which presets a flag.
type settingFlag struct {
	setting string
	flag    *pflag.Flag
}

var settingFlags []settingFlag

// presetFlag registers flag to take its default from the named setting.
func presetFlag(setting string, flag *pflag.Flag) {
	settingFlags = append(settingFlags, settingFlag{setting: setting, flag: flag})
}

// presetFlags copies the settings from cfg into the registered flags. Flags
// given on the command line take precedence.
func presetFlags(cfg config.Config) error {
	values, err := config.Values(cfg)
	if err != nil {
		return err
	}

	for _, sf := range settingFlags {
		if sf.flag.Changed {
			continue
		}

		v, ok := values[sf.setting]
		if !ok {
			return errors.Errorf("flag --%s bound to unknown setting %q", sf.flag.Name, sf.setting)
		}

		if err := sf.flag.Value.Set(v); err != nil {
			return errors.WithMessage(err, sf.setting)
		}
	}

	return nil
}
