// Package toolchain invokes the external collaborators: the npm-based
// project bootstrapper and the dependency installer. Their output is
// treated as a precondition for the synthesis engine, not something this
// package validates beyond "the manifest file exists".
package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/vitegen-labs/vitegen/internal/manifest"
)

// TemplateID is the fixed template identifier passed to the bootstrapper.
const TemplateID = "react"

// ErrBootstrap indicates the external bootstrapper failed or did not
// produce the expected project skeleton.
var ErrBootstrap = errors.New("bootstrap failed")

// Output captures one external command invocation.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes npm commands. Stdout and Stderr can be set for testing;
// they default to os.Stdout/os.Stderr. NpmBin overrides PATH lookup.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	NpmBin string
}

// DependencySet lists the packages the generated project requires. With
// installation deferred, the set is only declared for the caller to install.
type DependencySet struct {
	Runtime []string
	Dev     []string
}

// Dependencies returns the fixed dependency set of the template.
func Dependencies() DependencySet {
	return DependencySet{
		Runtime: []string{"react-router-dom"},
		Dev:     []string{"eslint", "prettier", "vitest"},
	}
}

// BootstrapArgs returns the npm argument vector that scaffolds the initial
// project skeleton for name.
func BootstrapArgs(name string) []string {
	return []string{"create", "vite@latest", name, "--", "--template", TemplateID}
}

// InstallArgs returns the npm argument vector that installs the declared
// dependency set into an existing project.
func InstallArgs(deps DependencySet) [][]string {
	cmds := [][]string{{"install"}}
	if len(deps.Runtime) > 0 {
		cmds = append(cmds, append([]string{"install"}, deps.Runtime...))
	}
	if len(deps.Dev) > 0 {
		cmds = append(cmds, append([]string{"install", "--save-dev"}, deps.Dev...))
	}
	return cmds
}

// Bootstrap runs the external project bootstrapper in parentDir and checks
// its postcondition: a directory named after the project containing a
// manifest file.
func (r *Runner) Bootstrap(ctx context.Context, parentDir, name string) (*Output, error) {
	out, err := r.run(ctx, parentDir, BootstrapArgs(name)...)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrBootstrap, err)
	}
	if out.ExitCode != 0 {
		return out, fmt.Errorf("%w: bootstrapper exited with code %d", ErrBootstrap, out.ExitCode)
	}

	manifestPath := filepath.Join(parentDir, name, manifest.FileName)
	if _, err := os.Stat(manifestPath); err != nil {
		return out, fmt.Errorf("%w: bootstrapper did not produce %s", ErrBootstrap, manifestPath)
	}
	return out, nil
}

// Install runs the dependency installer inside the project directory.
func (r *Runner) Install(ctx context.Context, projectDir string) (*Output, error) {
	var last *Output
	for _, args := range InstallArgs(Dependencies()) {
		out, err := r.run(ctx, projectDir, args...)
		if err != nil {
			return out, err
		}
		if out.ExitCode != 0 {
			return out, fmt.Errorf("npm %v exited with code %d", args, out.ExitCode)
		}
		last = out
	}
	return last, nil
}

// run executes npm with the given args, streaming output to the configured
// writers while also capturing it.
func (r *Runner) run(ctx context.Context, dir string, args ...string) (*Output, error) {
	npmBin := r.NpmBin
	if npmBin == "" {
		var err error
		npmBin, err = exec.LookPath("npm")
		if err != nil {
			return nil, fmt.Errorf("npm is required on PATH: %w", err)
		}
	}

	cmd := exec.CommandContext(ctx, npmBin, args...)
	cmd.Dir = dir

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err := cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing npm %v: %w", args, err)
	}

	output.ExitCode = 0
	return output, nil
}
