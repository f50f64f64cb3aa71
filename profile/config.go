package profile

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for profiling configuration.
type Flags struct {
	CPUProfile           string
	HeapProfile          string
	MutexProfile         string
	MutexProfileFraction string
}

// Config holds profiling flag values. Empty paths disable a profile.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags].
type Config struct {
	Flags                Flags
	CPUProfile           string
	HeapProfile          string
	MutexProfile         string
	MutexProfileFraction int
}

// NewConfig returns a [Config] with default flag names and all profiles
// disabled.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			CPUProfile:           "cpu-profile",
			HeapProfile:          "heap-profile",
			MutexProfile:         "mutex-profile",
			MutexProfileFraction: "mutex-profile-fraction",
		},
	}
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPUProfile, c.Flags.CPUProfile, "", "write a CPU profile of the run to file")
	flags.StringVar(&c.HeapProfile, c.Flags.HeapProfile, "", "write a heap profile to file after the run")
	flags.StringVar(&c.MutexProfile, c.Flags.MutexProfile, "", "write a mutex contention profile to file after the run")
	flags.IntVar(&c.MutexProfileFraction, c.Flags.MutexProfileFraction, 1,
		"mutex profile fraction (1/N sampling), used with --"+c.Flags.MutexProfile)
}

// RegisterCompletions registers shell completions for profile flags on cmd.
// Path flags keep the default file completion.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.MutexProfileFraction,
		cobra.FixedCompletions(nil, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.MutexProfileFraction, err)
	}

	return nil
}

// NewProfiler creates a [Profiler] using this [Config].
func (c *Config) NewProfiler() *Profiler {
	return &Profiler{cfg: *c}
}
