package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time.
var Version = "v0.1.0-dev"

// config holds the settings shared by all sub-commands.
type config struct {
	HiDPI  float64 `mapstructure:"hidpi"`
	Native bool    `mapstructure:"native"`
	Trace  string  `mapstructure:"trace"`
	Format string  `mapstructure:"format"`
}

// Output formats
const (
	formatText = "text"
	formatYAML = "yaml"
)

var errFormat = errors.New("unknown output format")

// app is the state of one invocation of the command.
type app struct {
	v       *viper.Viper
	cfgFile string
	conf    config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:           "guistyle",
		Short:         "guistyle parses, cascades and inspects CSS for GUI trees.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initializeConfig(cmd)
		},
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./guistyle.yaml)")
	flags.Float64("hidpi", 1.0, "HiDPI factor for pixel values")
	flags.Bool("native", true, "prepend the native stylesheet")
	flags.String("trace", "", "trace level (error, info, debug); empty switches tracing off")
	flags.StringP("format", "f", formatText, "output format (text, yaml)")
	for _, key := range []string{"hidpi", "native", "trace", "format"} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}
	root.AddCommand(a.cssCmd(), a.cascadeCmd(), a.keysCmd())
	return root
}

// initializeConfig reads in the config file and ENV variables if set.
func (a *app) initializeConfig(cmd *cobra.Command) error {
	v := a.v
	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("guistyle")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("GUISTYLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	if err := v.Unmarshal(&a.conf); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if a.conf.Format != formatText && a.conf.Format != formatYAML {
		return fmt.Errorf("%w: %q", errFormat, a.conf.Format)
	}
	if a.conf.HiDPI <= 0 {
		return fmt.Errorf("hidpi factor must be positive, is %g", a.conf.HiDPI)
	}
	if a.conf.Trace != "" {
		tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
		t := tracing.Select("guistyle")
		t.SetTraceLevel(tracing.TraceLevelFromString(a.conf.Trace))
		t.SetOutput(cmd.ErrOrStderr())
	}
	return nil
}

// readInput reads the file named by args, or stdin for no argument or "-".
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return "<stdin>", string(b), err
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return args[0], "", fmt.Errorf("reading input: %w", err)
	}
	return args[0], string(b), nil
}

func reportErrors[E error](cmd *cobra.Command, name string, errs []E) {
	for _, err := range errs {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s:%v\n", name, err)
	}
}
