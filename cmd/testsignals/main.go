// SPDX-License-Identifier: EPL-2.0

// Command testsignals renders sine, square and band-limited sawtooth test
// signals to mono 16-bit WAV files.
//
// Defaults come from AUDUNITS_* environment variables:
//
//	testsignals -wave saw -note 57 -rate 48000 -duration 2 -out renders
//	testsignals -wave all -freq 1000 -gain -6
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync"
	"syscall"

	"github.com/ik5/audunits"
	"github.com/ik5/audunits/dispatch"
	"github.com/ik5/audunits/formats/wav"
	"github.com/ik5/audunits/internal/config"
	"github.com/ik5/audunits/stream"
	"github.com/ik5/audunits/units"
)

var allWaveforms = []audunits.Waveform{audunits.Sine, audunits.Square, audunits.Saw}

type options struct {
	waveforms []audunits.Waveform
	frequency units.Frequency
	rate      units.Frequency
	duration  units.Seconds
	gain      units.DecibelsFullScale
	outDir    string
}

func parseFlags(args []string, cfg config.Config) (options, error) {
	fs := flag.NewFlagSet("testsignals", flag.ContinueOnError)

	wave := fs.String("wave", cfg.Waveform, "waveform: sine, square, saw or all")
	freq := fs.Float64("freq", cfg.Frequency, "frequency in Hz")
	note := fs.Float64("note", cfg.Note, "MIDI note number, overrides -freq when 0 or above")
	rate := fs.Float64("rate", cfg.SampleRate, "sample rate in Hz")
	duration := fs.Float64("duration", cfg.Duration, "length in seconds")
	gain := fs.Float64("gain", cfg.GainDBFS, "level in dBFS")
	out := fs.String("out", cfg.OutDir, "output directory")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts := options{
		duration: units.Seconds(*duration),
		gain:     units.DBFS(*gain),
		outDir:   *out,
	}

	if *wave == "all" {
		opts.waveforms = allWaveforms
	} else {
		w, err := audunits.ParseWaveform(*wave)
		if err != nil {
			return options{}, err
		}
		opts.waveforms = []audunits.Waveform{w}
	}

	if *rate <= 0 {
		return options{}, fmt.Errorf("-rate must be above 0 Hz, got %v", *rate)
	}
	opts.rate = units.Hz(*rate)

	if *duration <= 0 {
		return options{}, fmt.Errorf("-duration must be positive, got %v", *duration)
	}

	if *note >= 0 {
		if *note > 127 {
			return options{}, fmt.Errorf("-note must be at most 127, got %v", *note)
		}
		opts.frequency = units.NewMidiNoteNumber(*note).Hz()
	} else {
		if *freq <= 0 {
			return options{}, fmt.Errorf("-freq must be above 0 Hz, got %v", *freq)
		}
		opts.frequency = units.Hz(*freq)
	}

	return opts, nil
}

// fileName is "<waveform>_<frequency>Hz.wav" with the frequency rounded to
// millihertz.
func fileName(w audunits.Waveform, f units.Frequency) string {
	hz := strconv.FormatFloat(math.Round(f.Value()*1000)/1000, 'f', -1, 64)
	return fmt.Sprintf("%s_%sHz.wav", w, hz)
}

func applyGain(samples []float32, gain units.DecibelsFullScale) ([]float32, error) {
	if gain.Equal(units.DBFS(0)) {
		return samples, nil
	}

	return stream.Collect(stream.WithGain(stream.FromSamples(samples), gain))
}

func renderOne(w audunits.Waveform, opts options) (string, error) {
	samples, err := audunits.Generate(w, opts.frequency, opts.rate, opts.duration)
	if err != nil {
		return "", err
	}

	samples, err = applyGain(samples, opts.gain)
	if err != nil {
		return "", fmt.Errorf("applying gain: %w", err)
	}

	path := filepath.Join(opts.outDir, fileName(w, opts.frequency))
	if err := wav.WriteToFile(path, samples, opts.rate); err != nil {
		return "", err
	}

	return path, nil
}

// render writes every requested waveform concurrently. Results are
// collected on a dispatch loop, which owns paths and errs.
func render(ctx context.Context, opts options) ([]string, error) {
	loopCtx, stop := context.WithCancel(ctx)
	defer stop()

	loop := dispatch.NewLoop(len(opts.waveforms))
	go loop.Run(loopCtx)

	var (
		paths []string
		errs  []error
		wg    sync.WaitGroup
	)

	for _, w := range opts.waveforms {
		wg.Add(1)
		go func() {
			defer wg.Done()

			path, err := renderOne(w, opts)
			dispatch.CallOnMessageThreadIfNotNull(loop, func() {
				if err != nil {
					errs = append(errs, fmt.Errorf("%v: %w", w, err))
					return
				}
				log.Printf("wrote %s (%v at %v, %v)", path, opts.frequency, opts.rate, opts.gain)
				paths = append(paths, path)
			})
		}()
	}

	wg.Wait()

	// callbacks run in order, so this one runs last
	flushed := make(chan struct{})
	if !loop.CallAsync(func() { close(flushed) }) {
		return nil, ctx.Err()
	}

	select {
	case <-flushed:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return paths, errors.Join(errs...)
}

func main() {
	cfg := config.Load()

	opts, err := parseFlags(os.Args[1:], cfg)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("invalid arguments: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	paths, err := render(ctx, opts)
	if err != nil {
		log.Fatalf("rendering failed: %v", err)
	}

	log.Printf("rendered %d file(s) to %s", len(paths), opts.outDir)
}
