package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"blinkc/build"
	"blinkc/common"
	"blinkc/project"
	"blinkc/report"
	"blinkc/syntax"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		report.PrintErrorMessage("Error", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "blinkc",
		Short:         "Compiler for the Blink rule language",
		Version:       common.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCompileCommand())
	root.AddCommand(newCheckCommand())
	root.AddCommand(newTokensCommand())
	root.AddCommand(newASTCommand())

	return root
}

func newCompileCommand() *cobra.Command {
	var (
		outputPath string
		moduleName string
		includes   []string
		pretty     bool
		sourceMap  bool
	)

	cmd := &cobra.Command{
		Use:   "compile <file>",
		Short: "Compile a source file to IR JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sourcePath := args[0]
			source, err := os.ReadFile(sourcePath)
			if err != nil {
				return err
			}

			// Project configuration supplies the defaults; explicit flags win.
			cfg, err := project.LoadConfig(filepath.Dir(sourcePath))
			if err != nil {
				return err
			}

			opts := cfg.Options
			if cmd.Flags().Changed("name") {
				opts.ModuleName = moduleName
			}
			if cmd.Flags().Changed("pretty") {
				opts.PrettyPrint = pretty
			}
			if cmd.Flags().Changed("source-map") {
				opts.IncludeSourceMap = sourceMap
			}
			// Included files only surface through the source map.
			if len(includes) > 0 {
				opts.IncludeSourceMap = true
			}
			if opts.ModuleName == "" {
				opts.ModuleName = strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
			}

			extraSources, err := build.LoadExtraSources(includes)
			if err != nil {
				return err
			}

			data, err := build.CompileToJSONWithSources(string(source), sourcePath, opts, extraSources)
			if err != nil {
				return err
			}

			if outputPath == "" {
				fmt.Println(string(data))
				return nil
			}

			if err := os.WriteFile(outputPath, data, 0o644); err != nil {
				return err
			}

			report.PrintInfoMessage("Compiled", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "path to write the IR JSON to (default stdout)")
	cmd.Flags().StringVar(&moduleName, "name", "", "module name stamped into the IR")
	cmd.Flags().StringSliceVar(&includes, "include", nil, "additional BCL/BDL files to embed in the source map")
	cmd.Flags().BoolVar(&pretty, "pretty", true, "indent the emitted JSON")
	cmd.Flags().BoolVar(&sourceMap, "source-map", false, "embed the compiled sources into the IR")

	return cmd
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Parse and analyze a source file without generating IR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			_, semErrs, err := build.Check(string(source))
			if err != nil {
				return err
			}

			for _, e := range semErrs {
				report.PrintErrorMessage("Error", e)
			}

			if len(semErrs) > 0 {
				return fmt.Errorf("%d error(s) found", len(semErrs))
			}

			report.PrintInfoMessage("Ok", "no errors found")
			return nil
		},
	}
}

func newTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			tokens, err := syntax.Tokenize(string(source))
			if err != nil {
				return err
			}

			for _, tok := range tokens {
				fmt.Printf("%-10s %q\n", tok.Span, tok.Value)
			}

			return nil
		},
	}
}

func newASTCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ast <file>",
		Short: "Dump the parsed AST of a source file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			tokens, err := syntax.Tokenize(string(source))
			if err != nil {
				return err
			}

			mod, err := syntax.Parse(tokens)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(mod, "", "  ")
			if err != nil {
				return err
			}

			fmt.Println(string(data))
			return nil
		},
	}
}
