package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// ErrProfile indicates a profile could not be started or written.
var ErrProfile = errors.New("profile")

// Profiler controls one profiling session.
//
// Create instances with [Config.NewProfiler].
type Profiler struct {
	cpuFile  *os.File
	cfg      Config
	mutexOld int
	started  bool
}

// Start enables mutex sampling and starts CPU profiling as configured.
func (p *Profiler) Start() error {
	if p.started {
		return nil
	}

	if p.cfg.MutexProfile != "" {
		p.mutexOld = runtime.SetMutexProfileFraction(p.cfg.MutexProfileFraction)
	}

	if p.cfg.CPUProfile != "" {
		f, err := os.Create(p.cfg.CPUProfile) //nolint:gosec // Profile path from CLI flag is expected.
		if err != nil {
			return fmt.Errorf("%w: cpu: %w", ErrProfile, err)
		}

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return errors.Join(fmt.Errorf("%w: cpu: %w", ErrProfile, err), f.Close())
		}

		p.cpuFile = f
	}

	p.started = true

	return nil
}

// Stop ends CPU profiling and writes the snapshot profiles. Calling Stop
// without a successful Start is a no-op.
func (p *Profiler) Stop() error {
	if !p.started {
		return nil
	}

	p.started = false

	var errs []error

	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		err := p.cpuFile.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: cpu: %w", ErrProfile, err))
		}

		p.cpuFile = nil
	}

	if p.cfg.HeapProfile != "" {
		runtime.GC()

		errs = append(errs, writeProfile("heap", p.cfg.HeapProfile))
	}

	if p.cfg.MutexProfile != "" {
		errs = append(errs, writeProfile("mutex", p.cfg.MutexProfile))
		runtime.SetMutexProfileFraction(p.mutexOld)
	}

	return errors.Join(errs...)
}

func writeProfile(name, path string) error {
	f, err := os.Create(path) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrProfile, name, err)
	}

	err = pprof.Lookup(name).WriteTo(f, 0)
	if err != nil {
		return errors.Join(fmt.Errorf("%w: %s: %w", ErrProfile, name, err), f.Close())
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrProfile, name, err)
	}

	return nil
}
