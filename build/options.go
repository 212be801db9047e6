package build

import "blinkc/generate"

// Options re-exports the generator options as the public compilation options
// of the pipeline.
type Options = generate.Options

// DefaultOptions returns the options used when no project configuration
// overrides them.
func DefaultOptions() *Options {
	return &Options{
		PrettyPrint: true,
	}
}
