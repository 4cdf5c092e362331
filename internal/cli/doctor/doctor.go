package doctor

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/cli/styles"
	"github.com/Chandra-Moulii/project-planner/internal/database"
	"github.com/Chandra-Moulii/project-planner/internal/models"
)

// DoctorCmd returns the doctor command
func DoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the stored planner data",
		Long: `Check every board against the structural rules (task counts, task
states, column names) and report the storage state.

Exits with code 4 when a problem is found.`,
		Args: cobra.NoArgs,
		RunE: runDoctor,
	}
}

type reportJSON struct {
	DataPath      string            `json:"data_path"`
	SchemaVersion string            `json:"schema_version,omitempty"`
	Keys          []string          `json:"keys"`
	Boards        int               `json:"boards"`
	Tasks         int               `json:"tasks"`
	Violations    []models.Violation `json:"violations"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	kv := cliInstance.App.KV()
	keys, err := kv.Keys(ctx)
	if err != nil {
		return formatter.Fail(fmt.Errorf("%w: failed to list keys: %w", models.ErrPersistence, err))
	}

	snap := cliInstance.App.Snapshot()
	report := reportJSON{
		DataPath:   cliInstance.Config.DataPath,
		Keys:       keys,
		Boards:     len(snap.Boards),
		Violations: models.CheckSnapshot(snap),
	}
	if report.Violations == nil {
		report.Violations = []models.Violation{}
	}
	for _, b := range snap.Boards {
		report.Tasks += b.TotalTasks
	}
	if sqlite, ok := kv.(*database.SQLiteStore); ok {
		if v, err := sqlite.SchemaVersion(ctx); err == nil {
			report.SchemaVersion = v
		}
	}

	err = formatter.Success(report, nil, func(w io.Writer) {
		fmt.Fprintf(w, "%s %s\n", styles.LabelStyle.Render("Database:"), report.DataPath)
		if report.SchemaVersion != "" {
			fmt.Fprintf(w, "%s %s\n", styles.LabelStyle.Render("Schema:"), report.SchemaVersion)
		}
		fmt.Fprintf(w, "%s %v\n", styles.LabelStyle.Render("Keys:"), report.Keys)
		fmt.Fprintf(w, "%s %d boards, %d tasks\n", styles.LabelStyle.Render("Data:"), report.Boards, report.Tasks)
		if len(report.Violations) == 0 {
			fmt.Fprintf(w, "%s No problems found\n", styles.SuccessStyle.Render("✓"))
			return
		}
		fmt.Fprintf(w, "%s %d problems found:\n", styles.ErrorStyle.Render("✗"), len(report.Violations))
		for _, v := range report.Violations {
			fmt.Fprintf(w, "  - %s\n", v)
		}
	})
	if err != nil {
		return err
	}
	if n := len(report.Violations); n > 0 {
		return &cli.CommandError{
			Code: cli.ExitDataErr,
			Err:  fmt.Errorf("%w: %d invariant violations", models.ErrPersistence, n),
		}
	}
	return nil
}
