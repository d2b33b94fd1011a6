// Package driver is the thin orchestrator behind "come build": it strings
// together lex -> parse -> codegen to produce a .c file, then shells out to
// a host C compiler to turn that file into a binary. It deliberately knows
// nothing about multi-file module graphs, import discovery, or object
// caching (SPEC_FULL.md §6) -- those remain an external build system's job.
package driver

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/comelang/come-go/internal/codegen"
	"github.com/comelang/come-go/internal/config"
	"github.com/comelang/come-go/internal/errors"
	"github.com/comelang/come-go/internal/lexer"
	"github.com/comelang/come-go/internal/parser"
)

// Result reports the paths produced by a Build or GenC invocation.
type Result struct {
	CPath      string
	BinaryPath string
}

// Options controls a single translation/build run.
type Options struct {
	// OutputPath overrides the default derived from InputPath.
	OutputPath string
	// LineDirectives forces #line emission on or off, overriding come.yaml.
	LineDirectives *bool
	Verbose        bool
}

// GenC runs the lex -> parse -> codegen pipeline on InputPath and writes the
// resulting C source next to it (or to Options.OutputPath), without
// invoking a host compiler. This backs "come genc".
func GenC(inputPath string, opts Options) (*Result, error) {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", inputPath, err)
	}

	cfg, err := config.Load(inputPath)
	if err != nil {
		return nil, fmt.Errorf("load come.yaml: %w", err)
	}

	p := parser.New(lexer.New(string(source)))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		lines := make([]int, len(errs))
		messages := make([]string, len(errs))
		for i, e := range errs {
			lines[i] = e.Line
			messages[i] = e.Message
		}
		compilerErrors := errors.FromParseErrors(lines, messages, string(source), inputPath)
		fmt.Fprint(os.Stderr, errors.FormatErrors(compilerErrors, true))
		return nil, fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	lineDirectives := cfg.WantsLineDirectives()
	if opts.LineDirectives != nil {
		lineDirectives = *opts.LineDirectives
	}

	out, err := codegen.Generate(program, codegen.Options{LineDirectives: lineDirectives})
	if err != nil {
		return nil, fmt.Errorf("codegen: %w", err)
	}

	cPath := opts.OutputPath
	if cPath == "" {
		cPath = deriveOutputPath(inputPath, ".c")
	}
	if err := os.WriteFile(cPath, []byte(out), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", cPath, err)
	}
	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "wrote %s\n", cPath)
	}

	return &Result{CPath: cPath}, nil
}

// Build runs GenC and then shells out to the configured host C compiler to
// produce a binary, linking against come.yaml's runtime_lib when one is
// configured. This backs "come build".
func Build(inputPath string, opts Options) (*Result, error) {
	cfg, err := config.Load(inputPath)
	if err != nil {
		return nil, fmt.Errorf("load come.yaml: %w", err)
	}

	genOpts := opts
	genOpts.OutputPath = "" // build always derives the intermediate .c path; OutputPath names the binary
	res, err := GenC(inputPath, genOpts)
	if err != nil {
		return nil, err
	}

	binPath := binaryOutputPath(inputPath, opts.OutputPath)
	res.BinaryPath = binPath

	args := []string{res.CPath, "-o", binPath}
	if cfg.RuntimeInclude != "" {
		args = append(args, "-I"+cfg.RuntimeInclude)
	}
	if cfg.RuntimeLib != "" {
		args = append(args, cfg.RuntimeLib)
	}

	cc := cfg.CCCommand()
	cmd := exec.Command(cc, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "%s %s\n", cc, strings.Join(args, " "))
	}
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s failed: %w", cc, err)
	}

	return res, nil
}

func deriveOutputPath(inputPath, newExt string) string {
	ext := filepath.Ext(inputPath)
	if ext == "" {
		return inputPath + newExt
	}
	return strings.TrimSuffix(inputPath, ext) + newExt
}

func binaryOutputPath(inputPath, override string) string {
	if override != "" {
		return strings.TrimSuffix(override, filepath.Ext(override))
	}
	base := deriveOutputPath(inputPath, "")
	if base == inputPath {
		base += ".out"
	}
	return base
}
