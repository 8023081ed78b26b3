// Package setup runs the developer-environment bootstrap: prerequisite
// checks, the generator install check, dependency sync and project
// generation, in that order.
package setup

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"premake-setup/internal/config"
	"premake-setup/internal/installer"
	"premake-setup/internal/logger"
	"premake-setup/internal/prompt"
)

// ErrMissingPrerequisite is returned when a required executable is not on PATH.
var ErrMissingPrerequisite = errors.New("missing prerequisite")

// Installer is the part of installer.Installer the orchestrator needs.
type Installer interface {
	Present() bool
	PromptInstall(ctx context.Context, p prompt.Prompter) (installer.Status, error)
	Layout() installer.Layout
	Path(rel string) string
	InstalledVersion() string
}

// Options controls one setup run.
type Options struct {
	Root                 string // Absolute project root; child processes run here
	Target               string // Generator action, e.g. vs2022
	Prerequisites        []string
	Sync                 []config.Step
	GenerateFatal        bool
	ContinueAfterInstall bool

	// LookPath resolves prerequisites. Defaults to exec.LookPath.
	LookPath func(file string) (string, error)
}

// OptionsFromConfig builds Options from a loaded config and a target already
// resolved against the platform default.
func OptionsFromConfig(cfg config.Config, root, target string) Options {
	return Options{
		Root:                 root,
		Target:               target,
		Prerequisites:        cfg.Prerequisites,
		Sync:                 cfg.Sync,
		GenerateFatal:        cfg.GenerateFatal,
		ContinueAfterInstall: cfg.ContinueAfterInstall,
	}
}

// StepResult is the outcome of one child process.
type StepResult struct {
	Name     string
	Command  string
	Args     []string
	ExitCode int
	Err      error
}

// Result summarizes a run. Steps lists every child process started, in order.
type Result struct {
	Status installer.Status
	Steps  []StepResult
}

// Orchestrator sequences a setup run.
type Orchestrator struct {
	opts     Options
	inst     Installer
	runner   Runner
	prompter prompt.Prompter
}

// New returns an Orchestrator. A nil LookPath in opts means exec.LookPath.
func New(opts Options, inst Installer, runner Runner, p prompt.Prompter) *Orchestrator {
	if opts.LookPath == nil {
		opts.LookPath = exec.LookPath
	}
	return &Orchestrator{opts: opts, inst: inst, runner: runner, prompter: p}
}

// Run executes the setup sequence. It returns early, without starting any
// child process, when a prerequisite is missing or the generator is absent
// and was not installed in this run (unless ContinueAfterInstall is set).
func (o *Orchestrator) Run(ctx context.Context) (Result, error) {
	var res Result

	if err := o.checkPrerequisites(); err != nil {
		return res, err
	}

	status, err := o.ensureGenerator(ctx)
	res.Status = status
	if err != nil {
		return res, err
	}
	switch status {
	case installer.DeclinedByUser:
		logger.Warn("[WARN] Premake not installed.\n")
		return res, nil
	case installer.InstalledRerunRequired:
		if !o.opts.ContinueAfterInstall {
			logger.Info("[INFO] Premake installed. Run premake-setup again to sync dependencies and generate project files.\n")
			return res, nil
		}
	}

	for _, step := range o.opts.Sync {
		sr, err := o.runStep(ctx, step)
		res.Steps = append(res.Steps, sr)
		if err != nil {
			return res, err
		}
	}

	l := o.inst.Layout()
	logger.Success("Generating %s project files.", o.opts.Target)
	generate := config.Step{
		Name:    "generate",
		Command: o.inst.Path(l.ExePath),
		Args:    []string{o.opts.Target},
		Fatal:   o.opts.GenerateFatal,
	}
	sr, err := o.runStep(ctx, generate)
	res.Steps = append(res.Steps, sr)
	return res, err
}

func (o *Orchestrator) checkPrerequisites() error {
	var missing []string
	for _, name := range o.opts.Prerequisites {
		if _, err := o.opts.LookPath(name); err != nil {
			logger.Debug("[DEBUG] Prerequisite %s not found: %v\n", name, err)
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s not found on PATH", ErrMissingPrerequisite, strings.Join(missing, ", "))
	}
	return nil
}

func (o *Orchestrator) ensureGenerator(ctx context.Context) (installer.Status, error) {
	l := o.inst.Layout()
	if o.inst.Present() {
		logger.Success("Premake located at %s", l.LocalDir)
		if v := o.inst.InstalledVersion(); v != "" && v != l.Version {
			logger.Warn("[WARN] Installed premake %s differs from configured %s; run `premake-setup install --force` to update\n", v, l.Version)
		}
		return installer.AlreadyPresent, nil
	}

	logger.Alert("You don't have Premake installed!")
	return o.inst.PromptInstall(ctx, o.prompter)
}

// runStep runs one command. Its error is returned only for fatal steps;
// a failed non-fatal step is logged and recorded in the StepResult.
func (o *Orchestrator) runStep(ctx context.Context, step config.Step) (StepResult, error) {
	sr := StepResult{Name: step.Name, Command: step.Command, Args: step.Args}
	if err := ctx.Err(); err != nil {
		sr.ExitCode, sr.Err = -1, err
		return sr, err
	}

	logger.Info("[INFO] Running %s: %s %s\n", step.Name, step.Command, strings.Join(step.Args, " "))
	sr.ExitCode, sr.Err = o.runner.Run(ctx, o.opts.Root, step.Command, step.Args...)
	if sr.Err == nil {
		return sr, nil
	}

	if step.Fatal {
		return sr, fmt.Errorf("%s failed (exit code %d): %w", step.Name, sr.ExitCode, sr.Err)
	}
	logger.Warn("[WARN] %s failed (exit code %d): %v; continuing\n", step.Name, sr.ExitCode, sr.Err)
	return sr, nil
}
