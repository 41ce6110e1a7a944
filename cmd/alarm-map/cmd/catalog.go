package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-map/internal/service/alarmmap"
)

var (
	categoryCmd = &cobra.Command{
		Use:   "category",
		Short: "Manage categories.",
	}

	categoryAddCmd = &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category that inherits everything from the global configuration.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, svc *alarmmap.Service) error {
				id, err := svc.AddCategory(ctx, args[0])
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), id)

				return err
			})
		},
	}

	categoryRemoveCmd = &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove"},
		Short:   "Remove a category without points of interest.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, svc *alarmmap.Service) error {
				return svc.RemoveCategory(ctx, args[0])
			})
		},
	}

	categoryListCmd = &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List categories.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, func(ctx context.Context, svc *alarmmap.Service) error {
				categories, err := svc.ListCategories(ctx)
				if err != nil {
					return err
				}

				return printYAML(cmd, categories)
			})
		},
	}

	poiCmd = &cobra.Command{
		Use:   "poi",
		Short: "Manage points of interest.",
	}

	poiAddCmd = &cobra.Command{
		Use:   "add <name> <category> <latitude> <longitude>",
		Short: "Create a point of interest in a category.",
		Long: `Create a point of interest in a category and print its id.

Put "--" before the arguments when a coordinate is negative, for example
alarm-map poi add -- "Opera House" Sights -33.857 151.215`,
		Args: cobra.ExactArgs(4), //nolint:mnd // Name, category and coordinates.
		RunE: func(cmd *cobra.Command, args []string) error {
			latitude, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid latitude %q: %w", args[2], err)
			}

			longitude, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("invalid longitude %q: %w", args[3], err)
			}

			return withService(cmd, func(ctx context.Context, svc *alarmmap.Service) error {
				id, addErr := svc.AddPOI(ctx, args[0], args[1], latitude, longitude)
				if addErr != nil {
					return addErr
				}

				_, addErr = fmt.Fprintln(cmd.OutOrStdout(), id)

				return addErr
			})
		},
	}

	poiRemoveCmd = &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a point of interest.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withService(cmd, func(ctx context.Context, svc *alarmmap.Service) error {
				return svc.RemovePOI(ctx, id)
			})
		},
	}

	poiListCmd = &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List points of interest.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, func(ctx context.Context, svc *alarmmap.Service) error {
				pois, err := svc.ListPOIs(ctx)
				if err != nil {
					return err
				}

				return printYAML(cmd, pois)
			})
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	categoryCmd.AddCommand(categoryAddCmd, categoryRemoveCmd, categoryListCmd)
	poiCmd.AddCommand(poiAddCmd, poiRemoveCmd, poiListCmd)
}
