package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sprintboard/internal/validation"
)

func newBacklogCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backlog",
		Short: "Manage backlogs and their items",
	}
	cmd.AddCommand(
		newBacklogListCmd(flags),
		newBacklogCreateCmd(flags),
		newBacklogUpdateCmd(flags),
		newBacklogAddItemCmd(flags),
		newBacklogUpdateItemCmd(flags),
		newBacklogDeleteItemCmd(flags),
	)
	return cmd
}

func newBacklogListCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List backlogs with their items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(a *app) error {
				backlogs := a.board.ListBacklogs(cmd.Context())
				var lines []string
				for _, b := range backlogs {
					lines = append(lines, fmt.Sprintf("%d\t%s\t(%d items)", b.ID, b.Name, len(b.Items)))
					for _, item := range b.Items {
						lines = append(lines, fmt.Sprintf("  %d\t%s\t[%s]", item.ID, item.Title, formatAssignees(item.Assignees)))
					}
				}
				return emit(cmd.OutOrStdout(), flags, backlogs, lines...)
			})
		},
	}
}

func newBacklogCreateCmd(flags *globalFlags) *cobra.Command {
	var name, description string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a backlog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(a *app) error {
				backlog, err := a.board.CreateBacklog(cmd.Context(), name, description)
				if err != nil {
					return err
				}
				return emit(cmd.OutOrStdout(), flags, backlog,
					fmt.Sprintf("Created backlog %d: %s", backlog.ID, backlog.Name))
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Backlog name")
	cmd.Flags().StringVar(&description, "description", "", "Backlog description")
	return cmd
}

func newBacklogUpdateCmd(flags *globalFlags) *cobra.Command {
	var name, description string
	cmd := &cobra.Command{
		Use:   "update <backlog-id>",
		Short: "Replace a backlog's name and description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg("backlog-id", args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, flags, func(a *app) error {
				backlog, err := a.board.UpdateBacklog(cmd.Context(), id, name, description)
				if err != nil {
					return err
				}
				return emit(cmd.OutOrStdout(), flags, backlog,
					fmt.Sprintf("Updated backlog %d: %s", backlog.ID, backlog.Name))
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Backlog name")
	cmd.Flags().StringVar(&description, "description", "", "Backlog description")
	return cmd
}

type itemFlags struct {
	title       string
	description string
	assignees   []string
}

func (f *itemFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Item title (required)")
	cmd.Flags().StringVar(&f.description, "description", "", "Item description")
	cmd.Flags().StringSliceVar(&f.assignees, "assignee", nil, "Assigned member; repeat or comma-separate for several")
}

func newBacklogAddItemCmd(flags *globalFlags) *cobra.Command {
	var f itemFlags
	cmd := &cobra.Command{
		Use:   "add-item <backlog-id>",
		Short: "Add an item to a backlog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backlogID, err := parseIDArg("backlog-id", args[0])
			if err != nil {
				return err
			}
			title, err := validation.Required("title", f.title)
			if err != nil {
				return err
			}
			return withApp(cmd, flags, func(a *app) error {
				item, err := a.board.AddItem(cmd.Context(), backlogID, title, f.description, validation.Assignees(f.assignees))
				if err != nil {
					return err
				}
				return emit(cmd.OutOrStdout(), flags, item,
					fmt.Sprintf("Added item %d to backlog %d: %s", item.ID, backlogID, item.Title))
			})
		},
	}
	f.register(cmd)
	return cmd
}

func newBacklogUpdateItemCmd(flags *globalFlags) *cobra.Command {
	var f itemFlags
	cmd := &cobra.Command{
		Use:   "update-item <backlog-id> <item-id>",
		Short: "Replace the fields of a backlog item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			backlogID, err := parseIDArg("backlog-id", args[0])
			if err != nil {
				return err
			}
			itemID, err := parseIDArg("item-id", args[1])
			if err != nil {
				return err
			}
			title, err := validation.Required("title", f.title)
			if err != nil {
				return err
			}
			return withApp(cmd, flags, func(a *app) error {
				item, err := a.board.UpdateItem(cmd.Context(), backlogID, itemID, title, f.description, validation.Assignees(f.assignees))
				if err != nil {
					return err
				}
				return emit(cmd.OutOrStdout(), flags, item,
					fmt.Sprintf("Updated item %d in backlog %d: %s", item.ID, backlogID, item.Title))
			})
		},
	}
	f.register(cmd)
	return cmd
}

func newBacklogDeleteItemCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-item <backlog-id> <item-id>",
		Short: "Delete an item from a backlog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			backlogID, err := parseIDArg("backlog-id", args[0])
			if err != nil {
				return err
			}
			itemID, err := parseIDArg("item-id", args[1])
			if err != nil {
				return err
			}
			return withApp(cmd, flags, func(a *app) error {
				if err := a.board.DeleteItem(cmd.Context(), backlogID, itemID); err != nil {
					return err
				}
				return emit(cmd.OutOrStdout(), flags, map[string]any{"status": "deleted"},
					fmt.Sprintf("Deleted item %d from backlog %d", itemID, backlogID))
			})
		},
	}
}
