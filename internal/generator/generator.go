// Package generator drives a full scaffolding run: bootstrap, dependency
// declaration, file synthesis, environment emission, and the manifest
// script merge, in a fixed order. Each step carries an explicit best-effort
// flag; best-effort failures are downgraded to warnings instead of aborting
// the run.
package generator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vitegen-labs/vitegen/internal/manifest"
	"github.com/vitegen-labs/vitegen/internal/output"
	"github.com/vitegen-labs/vitegen/internal/scaffold"
	"github.com/vitegen-labs/vitegen/internal/toolchain"
)

// ErrInvalidName indicates the project name is missing or contains
// characters that are unsafe in a directory name.
var ErrInvalidName = errors.New("invalid project name")

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// ValidateName rejects empty names and names that could escape the target
// directory or confuse a shell. Validation happens before any filesystem
// mutation.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q must match [a-z0-9][a-z0-9._-]*", ErrInvalidName, name)
	}
	return nil
}

// Status of one executed step.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusWarning   Status = "warning"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

// StepResult records one step's outcome for the final report.
type StepResult struct {
	Name   string
	Status Status
	Note   string
	Err    error
}

// step is one unit of the fixed run sequence. BestEffort steps log their
// failure as a warning and let the run continue.
type step struct {
	name       string
	bestEffort bool
	run        func(ctx context.Context) (note string, err error)
}

// Run is a single scaffolding invocation against one target directory.
// Concurrent runs against the same directory are undefined; the generator
// assumes one invocation at a time.
type Run struct {
	ProjectName string
	ParentDir   string
	ProjectDir  string
	SkipInstall bool

	Runner *toolchain.Runner

	data    scaffold.Data
	Results []StepResult
}

// New prepares a run for projectName rooted under parentDir.
func New(projectName, parentDir string, skipInstall bool, runner *toolchain.Runner) (*Run, error) {
	if err := ValidateName(projectName); err != nil {
		return nil, err
	}
	if runner == nil {
		runner = &toolchain.Runner{}
	}
	return &Run{
		ProjectName: projectName,
		ParentDir:   parentDir,
		ProjectDir:  filepath.Join(parentDir, projectName),
		SkipInstall: skipInstall,
		Runner:      runner,
		data:        scaffold.NewData(projectName),
	}, nil
}

// Execute runs the step sequence. The first fatal failure terminates the
// run and is returned; already-written files are not rolled back. The
// per-step outcomes are available in Results either way.
func (r *Run) Execute(ctx context.Context) error {
	for _, s := range r.steps() {
		if err := ctx.Err(); err != nil {
			r.Results = append(r.Results, StepResult{Name: s.name, Status: StatusSkipped, Err: err})
			return fmt.Errorf("run cancelled before step %s: %w", s.name, err)
		}

		output.Debug("running step", "step", s.name)
		note, err := s.run(ctx)
		if err != nil {
			if s.bestEffort {
				output.Warn("best-effort step failed", "step", s.name, "err", err)
				r.Results = append(r.Results, StepResult{Name: s.name, Status: StatusWarning, Note: note, Err: err})
				continue
			}
			r.Results = append(r.Results, StepResult{Name: s.name, Status: StatusFailed, Err: err})
			return fmt.Errorf("step %s: %w", s.name, err)
		}
		r.Results = append(r.Results, StepResult{Name: s.name, Status: StatusCompleted, Note: note})
	}
	return nil
}

// steps returns the fixed, non-reorderable sequence. Later steps depend on
// files created by earlier ones via the filesystem only.
func (r *Run) steps() []step {
	return []step{
		{name: "bootstrap project", run: r.bootstrap},
		{name: "install dependencies", run: r.installDeps},
		{name: "synthesize files", run: r.synthesize},
		{name: "remove default assets", bestEffort: true, run: r.cleanup},
		{name: "write environment files", run: r.emitEnv},
		{name: "merge manifest scripts", run: r.mergeScripts},
		{name: "validate manifest", bestEffort: true, run: r.validateManifest},
	}
}

func (r *Run) bootstrap(ctx context.Context) (string, error) {
	_, err := r.Runner.Bootstrap(ctx, r.ParentDir, r.ProjectName)
	if err != nil {
		return "", err
	}
	return "template " + toolchain.TemplateID, nil
}

func (r *Run) installDeps(ctx context.Context) (string, error) {
	deps := toolchain.Dependencies()
	if r.SkipInstall {
		all := append(append([]string{}, deps.Runtime...), deps.Dev...)
		return "deferred: npm install " + strings.Join(all, " "), nil
	}
	if _, err := r.Runner.Install(ctx, r.ProjectDir); err != nil {
		return "", err
	}
	return fmt.Sprintf("%d runtime, %d dev", len(deps.Runtime), len(deps.Dev)), nil
}

func (r *Run) synthesize(context.Context) (string, error) {
	result, err := scaffold.Synthesize(r.ProjectDir, scaffold.Catalog(), r.data)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d files", len(result.Written)), nil
}

func (r *Run) cleanup(context.Context) (string, error) {
	result, err := scaffold.Apply(r.ProjectDir, scaffold.Cleanups(), r.data)
	if err != nil {
		return "", err
	}
	if len(result.Deleted) == 0 {
		return "nothing to remove", nil
	}
	return strings.Join(result.Deleted, ", "), nil
}

func (r *Run) emitEnv(context.Context) (string, error) {
	written, err := scaffold.EmitEnvFiles(r.ProjectDir)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d files", len(written)), nil
}

func (r *Run) mergeScripts(context.Context) (string, error) {
	added, err := manifest.MergeFile(filepath.Join(r.ProjectDir, manifest.FileName), manifest.DesiredScripts())
	if err != nil {
		return "", err
	}
	if len(added) == 0 {
		return "all scripts already present", nil
	}
	return "added " + strings.Join(added, ", "), nil
}

func (r *Run) validateManifest(context.Context) (string, error) {
	doc, err := manifest.Load(filepath.Join(r.ProjectDir, manifest.FileName))
	if err != nil {
		return "", err
	}
	result, err := manifest.Validate(doc)
	if err != nil {
		return "", err
	}
	if !result.Valid {
		var msgs []string
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			msgs = append(msgs, msg)
		}
		return "", fmt.Errorf("manifest has issues: %s", strings.Join(msgs, "; "))
	}
	return "ok", nil
}
