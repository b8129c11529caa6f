// Package profile writes CPU, heap and allocs profiles of a command run.
//
// Register the flags on the root command and wrap execution with the
// profiler:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	p := cfg.NewProfiler()
//
//	err := p.Start()
//	// run the command
//	err = p.Stop()
//
// Profiling a large VHDL file then looks like:
//
//	vec symbol --cpu-profile cpu.prof -o top.png top.vhd
package profile
