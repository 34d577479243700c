package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/ledger"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/pipeline"
)

var (
	flagGoalType        string
	flagGoalDesc        string
	flagGoalTarget      string
	flagGoalDeadline    string
	flagGoalMotivation  int
	flagGoalPreparation int

	flagHolidayOff  bool
	flagHolidayFrom string
	flagHolidayTo   string
	flagHolidayNote string
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage aspirations and check their feasibility",
}

var goalAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add an aspiration",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		a := model.Aspiration{
			Type:              model.AspirationType(flagGoalType),
			Title:             args[0],
			Description:       flagGoalDesc,
			MotivationLevel:   flagGoalMotivation,
			PreparednessLevel: flagGoalPreparation,
		}
		if flagGoalTarget != "" {
			n, err := parseAmount(flagGoalTarget)
			if err != nil {
				return err
			}
			a.TargetAmount = n
		}
		deadline, err := parseDate(flagGoalDeadline)
		if err != nil {
			return err
		}
		a.Deadline = deadline

		return withSession(func(s *session) error {
			a, err := s.ledger.AddAspiration(a)
			if err != nil {
				return err
			}
			fmt.Printf("  Added %q (%s)\n", a.Title, shortID(a.ID))
			return nil
		})
	},
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List aspirations with savings feasibility",
	RunE: func(_ *cobra.Command, _ []string) error {
		now := time.Now()
		return withSession(func(s *session) error {
			state := s.ledger.Snapshot()
			goals := append([]model.Aspiration(nil), state.Aspirations...)
			sort.SliceStable(goals, func(i, j int) bool { return goals[i].IsPinned && !goals[j].IsPinned })

			fmt.Println()
			if len(goals) == 0 {
				fmt.Println("  No aspirations yet.")
				return nil
			}

			t := cli.Table{
				Title:   "Aspirations",
				Headers: []string{"ID", "Goal", "Status", "Target", "Deadline", "ETA", "Realistic", "Advice"},
				Left:    3,
			}
			var risks []string
			for _, g := range goals {
				title := g.Title
				if g.IsPinned {
					title = "★ " + title
				}
				row := []string{shortID(g.ID), title, string(g.Status), "-", cli.FormatDate(g.Deadline), "-", "-",
					string(pipeline.Advise(g.MotivationLevel, g.PreparednessLevel))}

				if f, ok := pipeline.Analyze(g, state, cfg.Costs(), now); ok {
					row[3] = cli.FormatAmount(g.TargetAmount)
					row[5] = "never"
					if !f.NeverAchievable {
						row[5] = fmt.Sprintf("%d mo", f.MonthsToAchieve)
					}
					row[6] = "no"
					if f.IsRealistic {
						row[6] = "yes"
					}
					for _, r := range f.Risks {
						risks = append(risks, fmt.Sprintf("%s: %s %s", g.Title, r.Risk, r.Precaution))
					}
				}
				t.Rows = append(t.Rows, row)
			}
			fmt.Print(cli.RenderTable(t))
			for _, r := range risks {
				fmt.Printf("  ! %s\n", r)
			}
			return nil
		})
	},
}

var goalPinCmd = &cobra.Command{
	Use:   "pin ID",
	Short: "Pin or unpin an aspiration",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withGoal(args[0], func(s *session, id string) error {
			pinned, err := s.ledger.TogglePin(id)
			if err != nil {
				return err
			}
			if pinned {
				fmt.Println("  Pinned.")
			} else {
				fmt.Println("  Unpinned.")
			}
			return nil
		})
	},
}

var goalStatusCmd = &cobra.Command{
	Use:   "status ID pending|achieved|cancelled",
	Short: "Change an aspiration's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return withGoal(args[0], func(s *session, id string) error {
			if err := s.ledger.SetAspirationStatus(id, model.AspirationStatus(strings.ToLower(args[1]))); err != nil {
				return err
			}
			fmt.Printf("  Marked %s.\n", args[1])
			return nil
		})
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete an aspiration",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withGoal(args[0], func(s *session, id string) error {
			if err := s.ledger.DeleteAspiration(id); err != nil {
				return err
			}
			fmt.Println("  Deleted.")
			return nil
		})
	},
}

func withGoal(prefix string, fn func(s *session, id string) error) error {
	return withSession(func(s *session) error {
		var ids []string
		for _, a := range s.ledger.Snapshot().Aspirations {
			ids = append(ids, a.ID)
		}
		id, err := resolveID("goal", prefix, ids)
		if err != nil {
			return err
		}
		return fn(s, id)
	})
}

var holidayCmd = &cobra.Command{
	Use:   "holiday",
	Short: "Plan days off around upcoming holidays",
}

var holidayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List holidays in the next twelve months",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withSession(func(s *session) error {
			t := cli.Table{
				Title:   "Upcoming holidays",
				Headers: []string{"ID", "Date", "Holiday", "Off", "From", "To", "Note"},
				Left:    7,
			}
			for _, h := range s.ledger.Snapshot().Holidays {
				off := ""
				if h.IsTakingOff {
					off = "yes"
				}
				t.Rows = append(t.Rows, []string{h.ID, cli.FormatDate(h.Date), h.Name, off, h.StartDate, h.EndDate, h.Note})
			}
			fmt.Println()
			fmt.Print(cli.RenderTable(t))
			return nil
		})
	},
}

var holidaySetCmd = &cobra.Command{
	Use:   "set ID",
	Short: "Annotate a holiday with time-off plans",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			var current model.Holiday
			var ids []string
			for _, h := range s.ledger.Snapshot().Holidays {
				ids = append(ids, h.ID)
			}
			id, err := resolveID("holiday", args[0], ids)
			if err != nil {
				return err
			}
			for _, h := range s.ledger.Snapshot().Holidays {
				if h.ID == id {
					current = h
				}
			}

			n := ledger.HolidayNote{
				IsTakingOff: current.IsTakingOff,
				StartDate:   current.StartDate,
				EndDate:     current.EndDate,
				Note:        current.Note,
			}
			flags := c.Flags()
			if flags.Changed("off") {
				n.IsTakingOff = flagHolidayOff
			}
			if flags.Changed("from") {
				n.StartDate = flagHolidayFrom
			}
			if flags.Changed("to") {
				n.EndDate = flagHolidayTo
			}
			if flags.Changed("note") {
				n.Note = flagHolidayNote
			}
			if err := s.ledger.AnnotateHoliday(id, n); err != nil {
				return err
			}
			fmt.Printf("  Updated %s.\n", current.Name)
			return nil
		})
	},
}

func init() {
	goalAddCmd.Flags().StringVar(&flagGoalType, "type", string(model.Financial), "financial or non-financial")
	goalAddCmd.Flags().StringVar(&flagGoalDesc, "desc", "", "Description")
	goalAddCmd.Flags().StringVar(&flagGoalTarget, "target", "", "Target amount for financial goals")
	goalAddCmd.Flags().StringVar(&flagGoalDeadline, "deadline", "", "Deadline, YYYY-MM-DD")
	goalAddCmd.Flags().IntVar(&flagGoalMotivation, "motivation", 0, "Motivation level, 1-10")
	goalAddCmd.Flags().IntVar(&flagGoalPreparation, "preparedness", 0, "Preparedness level, 1-10")

	holidaySetCmd.Flags().BoolVar(&flagHolidayOff, "off", false, "Take time off for this holiday")
	holidaySetCmd.Flags().StringVar(&flagHolidayFrom, "from", "", "First day off, YYYY-MM-DD")
	holidaySetCmd.Flags().StringVar(&flagHolidayTo, "to", "", "Last day off, YYYY-MM-DD")
	holidaySetCmd.Flags().StringVar(&flagHolidayNote, "note", "", "Free-form note")

	goalCmd.AddCommand(goalAddCmd, goalListCmd, goalPinCmd, goalStatusCmd, goalDeleteCmd)
	holidayCmd.AddCommand(holidayListCmd, holidaySetCmd)
	rootCmd.AddCommand(goalCmd, holidayCmd)
}
