package entity

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for parser configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	ClockName        string
	ResetName        string
	HighActiveSuffix string
	LowActiveSuffix  string
	Label            string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:            f,
		ClockName:        DefaultClockName,
		ResetName:        DefaultResetName,
		HighActiveSuffix: DefaultHighActiveSuffix,
		LowActiveSuffix:  DefaultLowActiveSuffix,
	}
}

// Config holds the port classification settings.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewParser] to create a [Parser].
type Config struct {
	Flags            Flags
	ClockName        string
	ResetName        string
	HighActiveSuffix string
	LowActiveSuffix  string
	Label            string
}

// NewConfig returns a new [Config] with default flag names and values.
func NewConfig() *Config {
	f := Flags{
		ClockName:        "clock-name",
		ResetName:        "reset-name",
		HighActiveSuffix: "high-suffix",
		LowActiveSuffix:  "low-suffix",
		Label:            "label",
	}

	return f.NewConfig()
}

// RegisterFlags adds parser flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.ClockName, c.Flags.ClockName, c.ClockName,
		"exact name of the clock port")
	flags.StringVar(&c.ResetName, c.Flags.ResetName, c.ResetName,
		"exact name of the reset port")
	flags.StringVar(&c.HighActiveSuffix, c.Flags.HighActiveSuffix, c.HighActiveSuffix,
		"name part marking an active-high signal")
	flags.StringVar(&c.LowActiveSuffix, c.Flags.LowActiveSuffix, c.LowActiveSuffix,
		"name part marking an active-low signal")
	flags.StringVar(&c.Label, c.Flags.Label, c.Label,
		"label attached to the entity")
}

// RegisterCompletions registers shell completions for parser flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{
		c.Flags.ClockName,
		c.Flags.ResetName,
		c.Flags.HighActiveSuffix,
		c.Flags.LowActiveSuffix,
		c.Flags.Label,
	} {
		err := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// NewParser creates a [Parser] using this [Config].
func (c *Config) NewParser(logger *slog.Logger) *Parser {
	return NewParser(
		WithClockName(c.ClockName),
		WithResetName(c.ResetName),
		WithHighActiveSuffix(c.HighActiveSuffix),
		WithLowActiveSuffix(c.LowActiveSuffix),
		WithLabel(c.Label),
		WithLogger(logger),
	)
}
