package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitegen-labs/vitegen/internal/branding"
	"github.com/vitegen-labs/vitegen/internal/config"
	"github.com/vitegen-labs/vitegen/internal/generator"
	"github.com/vitegen-labs/vitegen/internal/output"
	"github.com/vitegen-labs/vitegen/internal/toolchain"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagSkipInstall bool
	flagVerbose     bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <project-name>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a React + Vite frontend project: it runs the Vite
bootstrapper, lays an opinionated overlay of pages, routes, services, and
configuration on top, and merges the standard automation scripts into
package.json without touching entries you have customized.

Re-running against an existing project resets the generated baseline files
and the environment files, but never overwrites package.json scripts you
changed or added.`,
	Example: "  " + branding.CLIName() + " shop\n  " + branding.CLIName() + " my-app --skip-install",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runGenerate,

	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetupLogging(flagVerbose)
		config.Load()
	},
}

func init() {
	rootCmd.Flags().BoolVar(&flagSkipInstall, "skip-install", false,
		"Declare the dependency set but leave 'npm install' to the caller")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"Enable debug logging")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_ = cmd.Usage()
		return fmt.Errorf("%w: project name is required", generator.ErrInvalidName)
	}
	name := args[0]

	skipInstall := flagSkipInstall
	if !cmd.Flags().Changed("skip-install") && config.GetBool(config.KeySkipInstall) {
		skipInstall = true
	}

	run, err := generator.New(name, ".", skipInstall, &toolchain.Runner{})
	if err != nil {
		return err
	}

	output.Println(output.StyleSummary.Render(
		fmt.Sprintf("Scaffolding %s (template %s)", output.StyleNoun.Render(name), toolchain.TemplateID)))

	runErr := run.Execute(cmd.Context())
	printRunReport(run)

	if runErr != nil {
		return runErr
	}

	output.Println("")
	output.Println(output.StyleSummary.Render("Done. Next steps:"))
	output.Println("  cd " + name)
	if skipInstall {
		output.Println("  npm install")
	}
	output.Println("  npm run dev")
	return nil
}

// printRunReport prints one line per executed step, warnings included, so a
// failed run still shows which steps completed first.
func printRunReport(run *generator.Run) {
	for _, res := range run.Results {
		var line string
		switch res.Status {
		case generator.StatusCompleted:
			line = output.StepLine(output.MarkOK, "ok", res.Name, res.Note)
		case generator.StatusWarning:
			note := res.Note
			if res.Err != nil {
				note = res.Err.Error()
			}
			line = output.StepLine(output.MarkWarn, "warn", res.Name, note)
		case generator.StatusFailed:
			line = output.StepLine(output.MarkFail, "fail", res.Name, res.Err.Error())
		case generator.StatusSkipped:
			line = output.StepLine(output.MarkSkip, "dim", res.Name, "skipped")
		}
		output.Println(line)
	}
}

// Execute runs the root command with build info injected via ldflags and
// returns the process exit code.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		output.Error(err.Error())
		return ExitCodeFor(err)
	}
	return ExitSuccess
}
