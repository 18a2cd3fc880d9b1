// Package viper holds the viper instance of every command, bound to its flags and to the environment.
package viper

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, eg: `LAMBDA_STREAM_PAGE_SIZE` for `--page-size`.
const EnvPrefix = "LAMBDA_STREAM"

var (
	DemoViper = viper.New()
	ListViper = viper.New()
	URLViper  = viper.New()
)

// BindPFlags binds flags and their environment variables to v.
// Flag defaults are not registered as viper defaults, so IsSet only
// reports a changed flag or a set environment variable.
func BindPFlags(v *viper.Viper, flags *pflag.FlagSet) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	_ = v.BindPFlags(flags)
	v.AutomaticEnv()
}
