package build

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"

	"blinkc/generate"
	"blinkc/ir"
	"blinkc/sem"
	"blinkc/syntax"
)

// Compile runs the full front-end pipeline on one source string: lex, parse,
// analyze, generate.  Any semantic error blocks generation; all accumulated
// errors are folded into the returned error, one per line.
func Compile(source string, opts *Options) (*ir.Module, error) {
	return CompileWithPath(source, "", opts, nil)
}

// CompileWithPath compiles like Compile but records the source path, which
// feeds the source map and the dialect tag when opts.IncludeSourceMap is set.
func CompileWithPath(source, sourcePath string, opts *Options, extraSources []*ir.SourceFile) (*ir.Module, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	typed, semErrs, err := Check(source)
	if err != nil {
		return nil, err
	}

	if len(semErrs) > 0 {
		return nil, flattenErrors(semErrs)
	}

	return generate.New().Generate(typed, opts, source, sourcePath, extraSources)
}

// Check runs the pipeline up to semantic analysis.  Lex and parse failures
// come back as err; a successful parse always yields a typed module, with
// semantic errors accumulated alongside it.
func Check(source string) (*sem.TypedModule, []sem.Error, error) {
	tokens, err := syntax.Tokenize(source)
	if err != nil {
		return nil, nil, err
	}

	mod, err := syntax.Parse(tokens)
	if err != nil {
		return nil, nil, err
	}

	typed, semErrs := sem.Analyze(mod)
	return typed, semErrs, nil
}

// CompileToJSON compiles one source string and serializes the IR module,
// indented or compact per opts.PrettyPrint.
func CompileToJSON(source string, opts *Options) ([]byte, error) {
	return CompileToJSONWithSources(source, "", opts, nil)
}

// CompileToJSONWithSources is CompileToJSON with a source path and auxiliary
// source-map files.
func CompileToJSONWithSources(source, sourcePath string, opts *Options, extraSources []*ir.SourceFile) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	module, err := CompileWithPath(source, sourcePath, opts, extraSources)
	if err != nil {
		return nil, err
	}

	if opts.PrettyPrint {
		return json.MarshalIndent(module, "", "  ")
	}

	return json.Marshal(module)
}

// LoadExtraSources reads auxiliary source files (choice functions, entity
// data) destined for the IR source map, tagging each with the dialect its
// extension indicates.
func LoadExtraSources(paths []string) ([]*ir.SourceFile, error) {
	var files []*ir.SourceFile
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		files = append(files, &ir.SourceFile{
			Path:     path,
			Content:  string(content),
			Language: generate.LanguageOf(path),
		})
	}

	return files, nil
}

// flattenErrors folds accumulated semantic errors into one error whose
// message lists every error on its own line.
func flattenErrors(errs []sem.Error) error {
	var result *multierror.Error
	for _, e := range errs {
		result = multierror.Append(result, e)
	}

	result.ErrorFormat = func(errs []error) string {
		lines := make([]string, len(errs))
		for i, e := range errs {
			lines[i] = e.Error()
		}

		return strings.Join(lines, "\n")
	}

	return result
}
