// SPDX-License-Identifier: EPL-2.0

package sf2

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Options control what Build writes into the INFO list and how samples are
// prepared.
type Options struct {
	// BankName overrides the name decoded from the bank.
	BankName string `yaml:"bank_name"`
	// Engine is the isng target, "EMU8000" by default.
	Engine       string `yaml:"engine"`
	Software     string `yaml:"software"`
	VersionMajor uint16 `yaml:"version_major"`
	VersionMinor uint16 `yaml:"version_minor"`
	// SampleRate resamples every sample to this rate when positive.
	SampleRate int `yaml:"sample_rate"`

	Log logrus.FieldLogger `yaml:"-"`
}

func DefaultOptions() Options {
	return Options{
		Engine:       "EMU8000",
		Software:     "sgxd2sf2",
		VersionMajor: 2,
		VersionMinor: 1,
	}
}

// LoadOptions reads YAML options. Keys missing from r keep their
// DefaultOptions value; an empty document yields the defaults.
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("sf2: options: %w", err)
	}

	if opts.SampleRate < 0 {
		return Options{}, fmt.Errorf("sf2: options: negative sample_rate %d", opts.SampleRate)
	}

	return opts, nil
}

func (o Options) logger() logrus.FieldLogger {
	if o.Log != nil {
		return o.Log
	}

	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
