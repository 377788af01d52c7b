package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// envPrefix scopes environment overrides, e.g. NATVISGEN_OUTPUT.
const envPrefix = "NATVISGEN"

// newConfig binds the command's flags and the NATVISGEN_* environment.
// Explicitly set flags win over the environment, which wins over defaults.
func newConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return v, nil
}

// newLogger builds the CLI logger on stderr. Warnings only by default,
// --verbose lowers the level to debug and --quiet disables logging.
func newLogger(v *viper.Viper) (*zap.Logger, error) {
	if v.GetBool("quiet") {
		return zap.NewNop(), nil
	}

	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if v.GetBool("verbose") {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
