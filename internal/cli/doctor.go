package cli

import (
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitegen-labs/vitegen/internal/output"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the required external tools are available",
	Long: `Check that the external collaborators (node, npm, and optionally docker)
are on PATH and report their versions. Purely informational: a missing tool
is reported, not fixed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		checks := []struct {
			name     string
			required bool
		}{
			{"node", true},
			{"npm", true},
			{"docker", false},
		}

		allRequired := true
		for _, check := range checks {
			path, err := exec.LookPath(check.name)
			if err != nil {
				if check.required {
					allRequired = false
					output.Println(output.StepLine(output.MarkFail, "fail", check.name, "not found on PATH"))
				} else {
					output.Println(output.StepLine(output.MarkWarn, "warn", check.name, "not found (only needed for the container build)"))
				}
				continue
			}

			note := path
			if ver, verErr := toolVersion(cmd, check.name); verErr == nil && ver != "" {
				note = ver + "  " + output.StyleDim.Render(path)
			}
			output.Println(output.StepLine(output.MarkOK, "ok", check.name, note))
		}

		if !allRequired {
			output.Println("")
			output.Println("Install Node.js (which provides npm) before scaffolding a project.")
		}
		return nil
	},
}

func toolVersion(cmd *cobra.Command, tool string) (string, error) {
	out, err := exec.CommandContext(cmd.Context(), tool, "--version").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
