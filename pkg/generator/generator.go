package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultCLI runs the OpenAPI generator through npx
const DefaultCLI = "npx @openapitools/openapi-generator-cli"

// DefaultTarget is the generator producing the front-end client SDK
const DefaultTarget = "typescript-axios"

// Config describes how to invoke the generator
type Config struct {
	CLI    string // Executable and leading arguments, split on whitespace
	Target string // Generator name passed with -g

	// Standard streams for the subprocess, default to the parent's
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Generator runs the external OpenAPI generator
type Generator struct {
	command []string
	target  string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	logger  zerolog.Logger
}

// Result represents a finished generation
type Result struct {
	InputSpec string
	OutputDir string
	Duration  time.Duration
}

// New creates a generator, applying defaults for empty fields
func New(cfg Config, logger zerolog.Logger) *Generator {
	cli := cfg.CLI
	if strings.TrimSpace(cli) == "" {
		cli = DefaultCLI
	}
	target := cfg.Target
	if target == "" {
		target = DefaultTarget
	}

	g := &Generator{
		command: strings.Fields(cli),
		target:  target,
		stdin:   cfg.Stdin,
		stdout:  cfg.Stdout,
		stderr:  cfg.Stderr,
		logger:  logger,
	}
	if g.stdin == nil {
		g.stdin = os.Stdin
	}
	if g.stdout == nil {
		g.stdout = os.Stdout
	}
	if g.stderr == nil {
		g.stderr = os.Stderr
	}
	return g
}

// Args returns the full command line for a generation
func (g *Generator) Args(inputSpec, outputDir string) []string {
	args := make([]string, 0, len(g.command)+7)
	args = append(args, g.command...)
	args = append(args,
		"generate",
		"-i", inputSpec,
		"-g", g.target,
		"-o", outputDir,
	)
	return args
}

// Generate runs the generator against inputSpec, writing into outputDir. It
// blocks until the subprocess exits; its console output goes straight to the
// configured streams.
func (g *Generator) Generate(ctx context.Context, inputSpec, outputDir string) (*Result, error) {
	start := time.Now()

	specPath, err := filepath.Abs(inputSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve contract path %s: %w", inputSpec, err)
	}
	outPath, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory %s: %w", outputDir, err)
	}

	// Fail before launching so the operator sees which file is missing
	if info, err := os.Stat(specPath); err != nil {
		return nil, fmt.Errorf("%w: %s (run update-contract first)", ErrContractMissing, specPath)
	} else if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrContractMissing, specPath)
	}

	args := g.Args(specPath, outPath)

	log := g.logger.With().
		Str("input_spec", specPath).
		Str("output_dir", outPath).
		Str("generator", g.target).
		Logger()

	log.Info().Msg("generating client SDK")
	log.Debug().Strs("command", args).Msg("launching generator")

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = g.stdin
	cmd.Stdout = g.stdout
	cmd.Stderr = g.stderr
	cmd.Env = os.Environ()

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("generation cancelled: %w", ctx.Err())
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ExitError{Code: exitErr.ExitCode(), Err: err}
		}

		return nil, fmt.Errorf("%w (%s): %w", ErrLaunchFailed, args[0], err)
	}

	result := &Result{
		InputSpec: specPath,
		OutputDir: outPath,
		Duration:  time.Since(start),
	}

	log.Info().Dur("duration", result.Duration).Msg("client SDK generated successfully")

	return result, nil
}
