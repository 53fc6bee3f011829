package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config carries every setting of the crossfill binary. Settings resolve
// from flags, then CROSSFILL_* environment variables, then an optional
// config file.
type Config struct {
	StructurePath string
	WordsPath     string
	WordsDBPath   string
	BundlePath    string
	OutputPath    string
	Debug         bool
	Shell         bool
}

func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("crossfill", pflag.ContinueOnError)
	fs.String("structure", "", "path to the grid structure file")
	fs.String("words", "", "path to the word list file")
	fs.String("words-db", "", "path to a sqlite word database (words table)")
	fs.String("bundle", "", "path to a yaml puzzle bundle")
	fs.String("output", "", "write a png of the solution to this path")
	fs.Bool("debug", false, "debug logging")
	fs.Bool("shell", false, "start the interactive shell")
	fs.String("config", "", "path to a config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}
	v.SetEnvPrefix("crossfill")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if cf := v.GetString("config"); cf != "" {
		v.SetConfigFile(cf)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	c.StructurePath = v.GetString("structure")
	c.WordsPath = v.GetString("words")
	c.WordsDBPath = v.GetString("words-db")
	c.BundlePath = v.GetString("bundle")
	c.OutputPath = v.GetString("output")
	c.Debug = v.GetBool("debug")
	c.Shell = v.GetBool("shell")
	return nil
}
