package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sprintboard/internal/models"
	"sprintboard/internal/validation"
)

func newSprintCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sprint",
		Short: "Manage sprints and the items pulled into them",
	}
	cmd.AddCommand(
		newSprintListCmd(flags),
		newSprintCreateCmd(flags),
		newSprintUpdateCmd(flags),
		newSprintToggleCmd(flags),
		newSprintTransferCmd(flags),
		newSprintStatusCmd(flags),
		newSprintRemoveItemCmd(flags),
		newSprintSummaryCmd(flags),
	)
	return cmd
}

func describeSprint(s models.Sprint) string {
	state := "inactive"
	if s.IsActive {
		state = "active"
	}
	return fmt.Sprintf("%d\t%s\t%s to %s\t%s\t(%d items)", s.ID, s.Name, s.StartDate, s.EndDate, state, len(s.Items))
}

func newSprintListCmd(flags *globalFlags) *cobra.Command {
	var activeOnly bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sprints with their items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(a *app) error {
				sprints := a.board.ListSprints(cmd.Context())
				if activeOnly {
					sprints = a.board.ActiveSprints(cmd.Context())
				}
				var lines []string
				for _, s := range sprints {
					lines = append(lines, describeSprint(s))
					for _, item := range s.Items {
						lines = append(lines, fmt.Sprintf("  %d\t%s\t%s", item.ID, item.Title, item.Status))
					}
				}
				return emit(cmd.OutOrStdout(), flags, sprints, lines...)
			})
		},
	}
	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only list active sprints")
	return cmd
}

type sprintFlags struct {
	name  string
	start string
	end   string
}

func (f *sprintFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Sprint name (required)")
	cmd.Flags().StringVar(&f.start, "start", "", "Start date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&f.end, "end", "", "End date, YYYY-MM-DD (required)")
}

func (f *sprintFlags) parse() (string, models.Date, models.Date, error) {
	name, err := validation.Required("name", f.name)
	if err != nil {
		return "", models.Date{}, models.Date{}, err
	}
	start, end, err := validation.SprintDates(f.start, f.end)
	if err != nil {
		return "", models.Date{}, models.Date{}, err
	}
	return name, start, end, nil
}

func newSprintCreateCmd(flags *globalFlags) *cobra.Command {
	var f sprintFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an inactive sprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, start, end, err := f.parse()
			if err != nil {
				return err
			}
			return withApp(cmd, flags, func(a *app) error {
				sprint, err := a.board.CreateSprint(cmd.Context(), name, start, end)
				if err != nil {
					return err
				}
				return emit(cmd.OutOrStdout(), flags, sprint,
					fmt.Sprintf("Created sprint %d: %s (%s to %s)", sprint.ID, sprint.Name, sprint.StartDate, sprint.EndDate))
			})
		},
	}
	f.register(cmd)
	return cmd
}

func newSprintUpdateCmd(flags *globalFlags) *cobra.Command {
	var f sprintFlags
	cmd := &cobra.Command{
		Use:   "update <sprint-id>",
		Short: "Rename or reschedule a sprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg("sprint-id", args[0])
			if err != nil {
				return err
			}
			name, start, end, err := f.parse()
			if err != nil {
				return err
			}
			return withApp(cmd, flags, func(a *app) error {
				sprint, err := a.board.UpdateSprint(cmd.Context(), id, name, start, end)
				if err != nil {
					return err
				}
				return emit(cmd.OutOrStdout(), flags, sprint,
					fmt.Sprintf("Updated sprint %d: %s (%s to %s)", sprint.ID, sprint.Name, sprint.StartDate, sprint.EndDate))
			})
		},
	}
	f.register(cmd)
	return cmd
}

func newSprintToggleCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <sprint-id>",
		Short: "Flip a sprint between active and inactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg("sprint-id", args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, flags, func(a *app) error {
				sprint, err := a.board.ToggleActive(cmd.Context(), id)
				if err != nil {
					return err
				}
				state := "inactive"
				if sprint.IsActive {
					state = "active"
				}
				return emit(cmd.OutOrStdout(), flags, sprint,
					fmt.Sprintf("Sprint %d is now %s", sprint.ID, state))
			})
		},
	}
}

func newSprintTransferCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <backlog-id> <item-id> <sprint-id>",
		Short: "Copy a backlog item into a sprint as to_do",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			backlogID, err := parseIDArg("backlog-id", args[0])
			if err != nil {
				return err
			}
			itemID, err := parseIDArg("item-id", args[1])
			if err != nil {
				return err
			}
			sprintID, err := parseIDArg("sprint-id", args[2])
			if err != nil {
				return err
			}
			return withApp(cmd, flags, func(a *app) error {
				item, err := a.board.TransferItem(cmd.Context(), backlogID, itemID, sprintID)
				if err != nil {
					return err
				}
				return emit(cmd.OutOrStdout(), flags, item,
					fmt.Sprintf("Transferred item %d from backlog %d to sprint %d as item %d (%s)",
						itemID, backlogID, sprintID, item.ID, item.Status))
			})
		},
	}
}

func newSprintStatusCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status <sprint-id> <item-id> <to_do|in_progress|done>",
		Short: "Move a sprint item to another column",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sprintID, err := parseIDArg("sprint-id", args[0])
			if err != nil {
				return err
			}
			itemID, err := parseIDArg("item-id", args[1])
			if err != nil {
				return err
			}
			status, err := validation.Status(args[2])
			if err != nil {
				return err
			}
			return withApp(cmd, flags, func(a *app) error {
				item, err := a.board.UpdateItemStatus(cmd.Context(), sprintID, itemID, status)
				if err != nil {
					return err
				}
				return emit(cmd.OutOrStdout(), flags, item,
					fmt.Sprintf("Sprint %d item %d is now %s", sprintID, item.ID, item.Status))
			})
		},
	}
}

func newSprintRemoveItemCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-item <sprint-id> <item-id>",
		Short: "Remove an item from a sprint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sprintID, err := parseIDArg("sprint-id", args[0])
			if err != nil {
				return err
			}
			itemID, err := parseIDArg("item-id", args[1])
			if err != nil {
				return err
			}
			return withApp(cmd, flags, func(a *app) error {
				if err := a.board.RemoveItem(cmd.Context(), sprintID, itemID); err != nil {
					return err
				}
				return emit(cmd.OutOrStdout(), flags, map[string]any{"status": "removed"},
					fmt.Sprintf("Removed item %d from sprint %d", itemID, sprintID))
			})
		},
	}
}

func newSprintSummaryCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <sprint-id>",
		Short: "Count a sprint's items per column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg("sprint-id", args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, flags, func(a *app) error {
				summary, err := a.board.Summary(cmd.Context(), id)
				if err != nil {
					return err
				}
				lines := []string{fmt.Sprintf("%s: %d items, %d%% done", summary.Name, summary.Total, summary.PercentDone)}
				for _, status := range models.Statuses {
					lines = append(lines, fmt.Sprintf("  %s\t%d", status, summary.ByStatus[status]))
				}
				return emit(cmd.OutOrStdout(), flags, summary, lines...)
			})
		},
	}
}
