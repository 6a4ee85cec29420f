// SPDX-License-Identifier: EPL-2.0

// Package config reads command defaults from AUDUNITS_* environment
// variables. Flags override these values.
package config

import (
	"os"
	"strconv"
)

// Config holds the defaults for the command line tools.
type Config struct {
	// Test signal rendering
	Waveform   string
	Frequency  float64 // Hz, ignored when Note is set
	Note       float64 // MIDI note number, negative when unset
	SampleRate float64 // Hz
	Duration   float64 // seconds
	GainDBFS   float64
	OutDir     string

	// Resampling
	ResampleRate float64 // Hz
}

// Load reads the environment, falling back to defaults for unset or
// malformed values.
func Load() Config {
	return Config{
		Waveform:   envStr("AUDUNITS_WAVE", "sine"),
		Frequency:  envFloat("AUDUNITS_FREQ", 440),
		Note:       envFloat("AUDUNITS_NOTE", -1),
		SampleRate: envFloat("AUDUNITS_RATE", 48000),
		Duration:   envFloat("AUDUNITS_DURATION", 1),
		GainDBFS:   envFloat("AUDUNITS_GAIN_DBFS", 0),
		OutDir:     envStr("AUDUNITS_OUT_DIR", "testsignals"),

		ResampleRate: envFloat("AUDUNITS_RESAMPLE_RATE", 8000),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
