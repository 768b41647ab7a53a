// Command site renders the portfolio page and serves or exports it.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"addr":      "addr",
	"dev":       "dev",
	"content":   "content",
	"images":    "images",
	"wasm":      "wasm",
	"log-level": "log_level",
	"site-url":  "site_url",
}

// app is the state shared by the commands once flags are parsed.
type app struct {
	cfgFile string
	cfg     Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "site",
		Short:         "Render, serve and export the portfolio page",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (yaml, toml or json)")
	pf.String("content", "", "content YAML file (default: built-in content)")
	pf.String("images", "images", "image directory served at /images")
	pf.String("wasm", "dist", "directory holding site.wasm and wasm_exec.js")
	pf.String("log-level", "info", "log level")
	pf.String("site-url", "", "public URL used for canonical and Open Graph links")

	root.AddCommand(newServeCmd(a), newExportCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	v, err := newViper(a.cfgFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.LogLevel, cfg.Dev)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	return nil
}

// bindFlags binds the flags of flagKeys present on fs. Unset flags leave
// env and file values in place.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag %s", name)
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
