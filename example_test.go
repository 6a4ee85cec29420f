// SPDX-License-Identifier: EPL-2.0

package audunits_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/audunits"
	"github.com/ik5/audunits/fileio"
	"github.com/ik5/audunits/units"
)

func Example() {
	dir, err := os.MkdirTemp("", "audunits")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	note := units.NewMidiNoteNumber(57)
	path := filepath.Join(dir, "saw")

	if err := audunits.WriteTestSignal(path, audunits.Saw, note.Hz(), units.KHz(48), 0.25); err != nil {
		fmt.Println(err)
		return
	}

	r := fileio.NewReader()
	if err := r.LoadFile(path + ".wav"); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(note.Hz(), r.SampleRate(), r.LengthInSamples())
	// Output: 220.000 Hz 48000.000 Hz 12000
}

func ExampleParseWaveform() {
	w, err := audunits.ParseWaveform("Square")
	fmt.Println(w, err)
	// Output: square <nil>
}
