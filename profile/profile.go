package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrProfile indicates a profile could not be started or written.
var ErrProfile = errors.New("profile")

// Flags holds CLI flag names for profiling, allowing callers to customize
// flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	CPUProfile     string
	HeapProfile    string
	AllocsProfile  string
	MemProfileRate string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{Flags: f, MemProfileRate: runtime.MemProfileRate}
}

// Config holds profile output paths. An empty path disables that profile.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewProfiler] to create a [Profiler].
type Config struct {
	Flags          Flags
	CPUProfile     string
	HeapProfile    string
	AllocsProfile  string
	MemProfileRate int
}

// NewConfig returns a new [Config] with default flag names and all profiles
// disabled.
func NewConfig() *Config {
	f := Flags{
		CPUProfile:     "cpu-profile",
		HeapProfile:    "heap-profile",
		AllocsProfile:  "allocs-profile",
		MemProfileRate: "mem-profile-rate",
	}

	return f.NewConfig()
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPUProfile, c.Flags.CPUProfile, c.CPUProfile, "write CPU profile to file")
	flags.StringVar(&c.HeapProfile, c.Flags.HeapProfile, c.HeapProfile, "write heap profile to file")
	flags.StringVar(&c.AllocsProfile, c.Flags.AllocsProfile, c.AllocsProfile, "write allocs profile to file")
	flags.IntVar(&c.MemProfileRate, c.Flags.MemProfileRate, c.MemProfileRate,
		"memory profile rate (bytes per sample)")
}

// RegisterCompletions registers shell completions for profiling flags on
// cmd. Path flags keep the default file completion.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.MemProfileRate,
		func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		})
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.MemProfileRate, err)
	}

	return nil
}

// NewProfiler creates a [Profiler] using this [Config].
func (c *Config) NewProfiler() *Profiler {
	return &Profiler{cfg: *c}
}

// Profiler runs one profiling session around a command.
//
// Create instances with [Config.NewProfiler].
type Profiler struct {
	cpu *os.File
	cfg Config
}

// Start applies the memory profile rate and starts CPU profiling if
// enabled.
func (p *Profiler) Start() error {
	if p.cfg.MemProfileRate > 0 && p.cfg.MemProfileRate != runtime.MemProfileRate {
		runtime.MemProfileRate = p.cfg.MemProfileRate
	}

	if p.cfg.CPUProfile == "" {
		return nil
	}

	f, err := os.Create(p.cfg.CPUProfile) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("%w: cpu: %w", ErrProfile, err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		//nolint:errcheck // The start error is more relevant.
		f.Close()

		return fmt.Errorf("%w: cpu: %w", ErrProfile, err)
	}

	p.cpu = f

	return nil
}

// Stop ends CPU profiling and writes the heap and allocs profiles. It is
// safe to call Stop without a successful [Profiler.Start].
func (p *Profiler) Stop() error {
	var errs []error

	if p.cpu != nil {
		pprof.StopCPUProfile()

		err := p.cpu.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: cpu: %w", ErrProfile, err))
		}

		p.cpu = nil
	}

	for name, path := range map[string]string{
		"heap":   p.cfg.HeapProfile,
		"allocs": p.cfg.AllocsProfile,
	} {
		if path == "" {
			continue
		}

		err := writeProfile(name, path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrProfile, name, err))
		}
	}

	return errors.Join(errs...)
}

func writeProfile(name, path string) error {
	prof := pprof.Lookup(name)
	if prof == nil {
		return fmt.Errorf("unknown profile %q", name)
	}

	f, err := os.Create(path) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return err
	}

	err = prof.WriteTo(f, 0)
	if err != nil {
		//nolint:errcheck // The write error is more relevant.
		f.Close()

		return err
	}

	return f.Close()
}
