package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/clinicdesk/calendar/pkg/calendar"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

type options struct {
	timezone string
	json     bool
}

func (o *options) location() (*time.Location, error) {
	loc, err := time.LoadLocation(o.timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid --tz %q: %v", o.timezone, err)
	}
	return loc, nil
}

func (o *options) date(value string) (time.Time, error) {
	loc, err := o.location()
	if err != nil {
		return time.Time{}, err
	}
	d, err := model.ParseDate(value, loc)
	if err != nil {
		return time.Time{}, err
	}
	return d.Time, nil
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "calendar",
		Short:         "Calendar date utilities",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVar(&opts.timezone, "tz", "Local", "Time zone days are interpreted in")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "Print JSON instead of text")

	rootCmd.AddCommand(
		newGridCmd(opts),
		newWeekCmd(opts),
		newRangeCmd(opts),
		newSlotsCmd(opts),
		newAgendaCmd(opts),
	)
	return rootCmd
}

func newGridCmd(opts *options) *cobra.Command {
	now := time.Now()
	var year, month int
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the 6x7 grid of a month, weeks starting on Sunday",
		RunE: func(cmd *cobra.Command, args []string) error {
			if month < 1 || month > 12 {
				return fmt.Errorf("--month must be between 1 and 12, got %d", month)
			}
			loc, err := opts.location()
			if err != nil {
				return err
			}

			grid := calendar.MonthGrid(year, time.Month(month), loc)
			if opts.json {
				cells := make([]*string, len(grid))
				for i, cell := range grid {
					if cell != nil {
						s := cell.Format(dateLayout)
						cells[i] = &s
					}
				}
				return printJSON(cmd.OutOrStdout(), cells)
			}
			return printGrid(cmd.OutOrStdout(), year, time.Month(month), grid)
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", now.Year(), "Year")
	cmd.Flags().IntVarP(&month, "month", "m", int(now.Month()), "Month, January is 1")
	return cmd
}

func printGrid(w io.Writer, year int, month time.Month, grid calendar.Grid) error {
	var b strings.Builder
	title := fmt.Sprintf("%s %d", month, year)
	fmt.Fprintf(&b, "%*s\n", (20+len(title))/2, title)
	b.WriteString("Su Mo Tu We Th Fr Sa\n")
	for _, week := range grid.Weeks() {
		cells := make([]string, len(week))
		for i, day := range week {
			cells[i] = "  "
			if day != nil {
				cells[i] = fmt.Sprintf("%2d", day.Day())
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func newWeekCmd(opts *options) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print the Sunday to Saturday week containing a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.date(date)
			if err != nil {
				return err
			}
			week := calendar.WeekDates(t)
			return printDates(cmd.OutOrStdout(), opts.json, week[:])
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", time.Now().Format(dateLayout), "Date in the week")
	return cmd
}

func newRangeCmd(opts *options) *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Print every date from start to end, both inclusive",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := opts.date(start)
			if err != nil {
				return fmt.Errorf("invalid --start: %v", err)
			}
			to, err := opts.date(end)
			if err != nil {
				return fmt.Errorf("invalid --end: %v", err)
			}
			return printDates(cmd.OutOrStdout(), opts.json, calendar.DateRange(from, to))
		},
	}
	cmd.Flags().StringVarP(&start, "start", "s", "", "First date")
	cmd.Flags().StringVarP(&end, "end", "e", "", "Last date")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func printDates(w io.Writer, asJSON bool, dates []time.Time) error {
	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = d.Format(dateLayout)
	}
	if asJSON {
		return printJSON(w, formatted)
	}
	return printLines(w, formatted)
}

func newSlotsCmd(opts *options) *cobra.Command {
	var start, end, interval int
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print the time slot labels of a working day",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				return fmt.Errorf("--interval must be positive, got %d", interval)
			}
			var slots []string
			for slot := range calendar.TimeSlots(start, end, interval) {
				slots = append(slots, slot)
			}
			if opts.json {
				if slots == nil {
					slots = []string{}
				}
				return printJSON(cmd.OutOrStdout(), slots)
			}
			return printLines(cmd.OutOrStdout(), slots)
		},
	}
	cmd.Flags().IntVar(&start, "start", calendar.DefaultStartHour, "First hour")
	cmd.Flags().IntVar(&end, "end", calendar.DefaultEndHour, "Hour the last slot ends before")
	cmd.Flags().IntVarP(&interval, "interval", "i", calendar.DefaultIntervalMinutes, "Slot length in minutes")
	return cmd
}

func printLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
