package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// NewFoldersCommand creates the folders command group
func NewFoldersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "folders",
		Aliases: []string{"folder"},
		Short:   "Manage drive folders",
		Long:    "List and manage Document360 drive folders",
	}

	cmd.AddCommand(newFoldersListCommand())
	cmd.AddCommand(newFoldersCreateCommand())
	cmd.AddCommand(newFoldersRenameCommand())
	cmd.AddCommand(newFoldersDeleteCommand())

	return cmd
}

func newFoldersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List folders",
		Long:  "List all drive folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			folders, err := client.Folders().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list folders: %w", err)
			}

			// Output results
			output := viper.GetString("output")
			switch output {
			case "json":
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(folders)
			case "yaml":
				encoder := yaml.NewEncoder(os.Stdout)
				return encoder.Encode(folders)
			default:
				if len(folders) == 0 {
					fmt.Println("No folders found")
					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Title")

				for _, folder := range folders {
					table.Append(folder.ID, folder.Title)
				}

				table.Render()
			}

			return nil
		},
	}
}

func newFoldersCreateCommand() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a folder",
		Long:  "Create a new drive folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			folder, err := client.Folders().Create(ctx, title)
			if err != nil {
				return fmt.Errorf("failed to create folder: %w", err)
			}

			fmt.Printf("Successfully created folder '%s'\n", folder.Title)
			fmt.Printf("  ID: %s\n", folder.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "n", "", "folder title (required)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newFoldersRenameCommand() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "rename FOLDER_ID",
		Short: "Rename a folder",
		Long:  "Change the title of an existing drive folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folderID := args[0]

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			folder, err := client.Folders().Rename(ctx, folderID, title)
			if err != nil {
				return fmt.Errorf("failed to rename folder: %w", err)
			}

			fmt.Printf("Successfully renamed folder '%s'\n", folder.ID)
			fmt.Printf("  Title: %s\n", folder.Title)

			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "n", "", "new folder title (required)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newFoldersDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete FOLDER_ID",
		Short: "Delete a folder",
		Long:  "Delete a drive folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folderID := args[0]

			if !force {
				fmt.Printf("Really delete folder '%s'? (y/N): ", folderID)
				var response string
				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Cancelled")
					return nil
				}
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := client.Folders().Delete(ctx, folderID)
			if err != nil {
				return fmt.Errorf("failed to delete folder: %w", err)
			}

			fmt.Printf("Successfully deleted folder '%s'\n", result.ID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
