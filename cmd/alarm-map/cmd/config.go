package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-map/internal/service/alarmmap"
)

var (
	showCmd = &cobra.Command{
		Use:   "show [target]",
		Short: "Print the effective configuration of a target.",
		Long: `Print the effective configuration of a target as YAML.

Without a target the global configuration is shown. For categories and points
of interest the output also lists the properties overridden locally.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "global"
			if len(args) > 0 {
				target = args[0]
			}

			return withService(cmd, func(ctx context.Context, svc *alarmmap.Service) error {
				view, err := svc.Show(ctx, target)
				if err != nil {
					return err
				}

				return printYAML(cmd, view)
			})
		},
	}

	setCmd = &cobra.Command{
		Use:   "set <target> <property> <value>",
		Short: "Override one property of a target.",
		Long: `Override one property of a target.

Properties: range, ringtone, vibrate, message, begin, end, window, schedule,
days and the day names sunday to saturday.

Times are written as HH:MM, windows as HH:MM-HH:MM, and 24:00 is a valid end
time. Days are a comma separated list such as "mon,wed,fri", or "all" and
"none". The schedule of a category or point of interest is "own" or "inherit".

When moving both bounds of a window use the window property; otherwise move
first the bound that makes the window larger.`,
		Args: cobra.ExactArgs(3), //nolint:mnd // Target, property and value.
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, svc *alarmmap.Service) error {
				return svc.Set(ctx, args[0], args[1], args[2])
			})
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset <target> [property]",
		Short: "Reset one or every property of a target.",
		Long: `Reset a property of a target to the inherited value.

For the global configuration the built-in default is restored. Without a
property, or with "all", every property is reset.`,
		Args: cobra.RangeArgs(1, 2), //nolint:mnd // Target and optional property.
		RunE: func(cmd *cobra.Command, args []string) error {
			property := alarmmap.PropertyAll
			if len(args) > 1 {
				property = args[1]
			}

			return withService(cmd, func(ctx context.Context, svc *alarmmap.Service) error {
				return svc.Reset(ctx, args[0], property)
			})
		},
	}
)

// parseID parses a point of interest id given on the command line.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}

	return id, nil
}
