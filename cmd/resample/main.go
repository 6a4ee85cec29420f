// SPDX-License-Identifier: EPL-2.0

// Command resample converts an audio file (wav, aiff, mp3 or ogg) to a
// mono 16-bit WAV file at a new sample rate.
//
//	resample [-rate 16000] [-channel 1] input.mp3 output.wav
//
// Without -channel all channels are averaged. The default rate comes from
// AUDUNITS_RESAMPLE_RATE.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ik5/audunits/audio"
	"github.com/ik5/audunits/fileio"
	"github.com/ik5/audunits/formats/wav"
	"github.com/ik5/audunits/internal/config"
	"github.com/ik5/audunits/units"
)

type options struct {
	in, out string
	rate    units.Frequency
	channel int // negative mixes all channels
}

func parseFlags(args []string, cfg config.Config) (options, error) {
	fs := flag.NewFlagSet("resample", flag.ContinueOnError)
	rate := fs.Float64("rate", cfg.ResampleRate, "output sample rate in Hz")
	channel := fs.Int("channel", -1, "keep only this channel instead of mixing")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if fs.NArg() != 2 {
		return options{}, errors.New("usage: resample [flags] <input> <output.wav>")
	}

	if *rate <= 0 {
		return options{}, fmt.Errorf("-rate must be above 0 Hz, got %v", *rate)
	}

	return options{
		in:      fs.Arg(0),
		out:     fs.Arg(1),
		rate:    units.Hz(*rate),
		channel: *channel,
	}, nil
}

// convert runs input -> channel selection or mix -> resampler -> WAV.
func convert(opts options) (int, error) {
	src, err := fileio.NewReader().Open(opts.in)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	var mono audio.Source = audio.NewMonoMixer(src)
	if opts.channel >= 0 {
		mono, err = audio.NewChannelSelector(src, opts.channel)
		if err != nil {
			return 0, err
		}
	}

	resampled, err := audio.NewResampler(mono, opts.rate)
	if err != nil {
		return 0, err
	}

	channels, err := audio.ReadAll(resampled, 0)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", opts.in, err)
	}

	if err := wav.WriteToFile(opts.out, channels[0], opts.rate); err != nil {
		return 0, err
	}

	return len(channels[0]), nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], config.Load())
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	n, err := convert(opts)
	if err != nil {
		log.Fatalf("resampling %s: %v", opts.in, err)
	}

	log.Printf("wrote %d samples at %v to %s", n, opts.rate, wav.SanitizeFilename(opts.out))
}
