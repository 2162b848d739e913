package main

import (
	"fmt"
	"io"
	"time"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/clinicdesk/calendar/pkg/calendar"
	"github.com/clinicdesk/calendar/pkg/client"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/spf13/cobra"
)

func newAgendaCmd(opts *options) *cobra.Command {
	var api, date string
	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Print the schedule and note of a day from a running calendar service",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.date(date)
			if err != nil {
				return err
			}
			day := model.DateOf(t)
			c := client.New(api)

			schedule, err := c.DaySchedule(cmd.Context(), day)
			if err != nil {
				return fmt.Errorf("failed to get schedule: %v", err)
			}
			note, err := c.FindNoteByDate(cmd.Context(), day)
			if err != nil && !errdef.IsNotFound(err) {
				return fmt.Errorf("failed to get note: %v", err)
			}

			if opts.json {
				return printJSON(cmd.OutOrStdout(), map[string]any{"schedule": schedule, "note": note.Content})
			}

			loc, err := opts.location()
			if err != nil {
				return err
			}
			return printAgenda(cmd.OutOrStdout(), day, schedule.Hours, note.Content, loc)
		},
	}
	cmd.Flags().StringVar(&api, "api", "http://localhost:8080/api", "Calendar service URL including the base path")
	cmd.Flags().StringVarP(&date, "date", "d", time.Now().Format(dateLayout), "Day to print")
	return cmd
}

func printAgenda(w io.Writer, day model.Date, hours []calendar.HourBucket[model.Event], note string, loc *time.Location) error {
	if _, err := fmt.Fprintln(w, day.Format("Monday, January 2, 2006")); err != nil {
		return err
	}
	for _, hour := range hours {
		for _, e := range hour.Items {
			line := fmt.Sprintf("%8s  %s", e.StartTime.In(loc).Format("3:04 PM"), e.Title)
			if e.Location != "" {
				line += " (" + e.Location + ")"
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	if note != "" {
		if _, err := fmt.Fprintf(w, "\nNote:\n%s\n", note); err != nil {
			return err
		}
	}
	return nil
}
