// Package profile records runtime profiles of a lint run.
//
// CPU profiling covers the run from [Profiler.Start] to [Profiler.Stop];
// heap and mutex profiles are snapshots written by [Profiler.Stop]. Mutex
// profiling shows contention between concurrent lint workers.
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.Flags())
//
//	p := cfg.NewProfiler()
//	err := p.Start()
//	defer p.Stop()
package profile
