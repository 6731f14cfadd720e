package commands

import (
	"context"
	"os"

	"github.com/d360-io/d360/internal/workflow"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewDemoCommand creates the demo command
func NewDemoCommand() *cobra.Command {
	var (
		title    string
		newTitle string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the folder CRUD workflow",
		Long: `Run the four-step folder workflow against the configured endpoint:
list all folders, create a folder, rename it, then delete it.

The workflow halts on the first failed step.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			if title == "" {
				title = "TestFolder_" + randomSuffix()
			}
			if newTitle == "" {
				newTitle = "UpdatedFolder_" + randomSuffix()
			}

			view := workflow.NewConsoleView(os.Stdout, viper.GetBool("no-color"))
			runner := workflow.NewRunner(client, view)

			return runner.Run(context.Background(), title, newTitle)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "title for the created folder (default TestFolder_<random>)")
	cmd.Flags().StringVar(&newTitle, "new-title", "", "title applied by the rename step (default UpdatedFolder_<random>)")

	return cmd
}

// randomSuffix returns a short unique fragment for generated folder titles.
func randomSuffix() string {
	return uuid.NewString()[:8]
}
