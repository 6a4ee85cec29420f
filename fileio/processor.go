// SPDX-License-Identifier: EPL-2.0

package fileio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ik5/audunits/audio"
	"github.com/ik5/audunits/formats/wav"
	"github.com/ik5/audunits/units"
)

const processChannels = 1

// ProcessSpec describes the stream a Processor is prepared for.
type ProcessSpec struct {
	SampleRate       units.Frequency
	MaximumBlockSize int
	NumChannels      int
}

// Processor is an offline mono effect.
type Processor interface {
	Prepare(spec ProcessSpec)
	// Process replaces block with its processed version.
	Process(block []float32)
}

// Spec configures a ProcessorFileIOTest.
type Spec[P Processor] struct {
	// InputAudioFile is taken relative to InputDir unless absolute.
	InputAudioFile string
	// Name is inserted into the output file name.
	Name string
	// PreProcess runs after Prepare and before Process, for example to set
	// parameters.
	PreProcess func(P)
	InputDir   string
	// OutputDir defaults to the directory of the input file.
	OutputDir string
	// SampleRate resamples the input before processing when above 0 Hz.
	SampleRate units.Frequency
}

// ProcessorFileIOTest runs a Processor over the first channel of a file and
// writes the result as WAV.
type ProcessorFileIOTest[P Processor] struct {
	spec         Spec[P]
	newProcessor func() P
	reader       *Reader
}

func NewProcessorFileIOTest[P Processor](newProcessor func() P, spec Spec[P]) *ProcessorFileIOTest[P] {
	return &ProcessorFileIOTest[P]{
		spec:         spec,
		newProcessor: newProcessor,
		reader:       NewReader(),
	}
}

// Run reads the input, processes it and writes OutputPath. It returns the
// processor so callers can inspect it.
func (t *ProcessorFileIOTest[P]) Run() (P, error) {
	var processor P

	if t.spec.InputAudioFile == "" {
		return processor, ErrNoInputFile
	}

	if err := t.read(); err != nil {
		return processor, err
	}

	processor = t.newProcessor()
	processor.Prepare(ProcessSpec{
		SampleRate:       t.SampleRate(),
		MaximumBlockSize: t.OutputSamplesCount(),
		NumChannels:      processChannels,
	})

	if t.spec.PreProcess != nil {
		t.spec.PreProcess(processor)
	}

	block := append([]float32(nil), t.reader.Channel(0)...)
	processor.Process(block)

	if err := wav.WriteToFile(t.OutputPath(), block, t.SampleRate()); err != nil {
		return processor, fmt.Errorf("writing %s output: %w", t.spec.Name, err)
	}

	return processor, nil
}

func (t *ProcessorFileIOTest[P]) read() error {
	if !t.spec.SampleRate.Greater(units.Hz(0)) {
		return t.reader.LoadFile(t.InputPath())
	}

	src, err := t.reader.Open(t.InputPath())
	if err != nil {
		return err
	}
	defer src.Close()

	first, err := audio.NewChannelSelector(src, 0)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	resampled, err := audio.NewResampler(first, t.spec.SampleRate)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return t.reader.load(resampled)
}

// SampleRate of the processed signal, valid after Run.
func (t *ProcessorFileIOTest[P]) SampleRate() units.Frequency {
	return t.reader.SampleRate()
}

// OutputSamplesCount is the length of the processed block, valid after Run.
func (t *ProcessorFileIOTest[P]) OutputSamplesCount() int {
	return t.reader.LengthInSamples()
}

func (t *ProcessorFileIOTest[P]) InputPath() string {
	if filepath.IsAbs(t.spec.InputAudioFile) {
		return t.spec.InputAudioFile
	}
	return filepath.Join(t.spec.InputDir, t.spec.InputAudioFile)
}

// OutputPath is "<input without .wav>_<Name>Output.wav" inside the output
// directory.
func (t *ProcessorFileIOTest[P]) OutputPath() string {
	dir := t.spec.OutputDir
	if dir == "" {
		dir = filepath.Dir(t.InputPath())
	}

	base := strings.TrimSuffix(filepath.Base(t.spec.InputAudioFile), ".wav")
	return filepath.Join(dir, base+"_"+t.spec.Name+"Output.wav")
}
