package common

// Version is the current compiler version as a string.  It is stamped into
// every emitted IR module's metadata.
const Version string = "0.1.0"

// ConfigFileName is the name for project configuration files.
const ConfigFileName string = "blink.toml"

// Recognized source file extensions, one per dialect: rules, choice
// functions, and entity data.
const (
	RuleFileExt   string = ".brl"
	ChoiceFileExt string = ".bcl"
	DataFileExt   string = ".bdl"
)
