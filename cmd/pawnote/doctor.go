package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var errUnhealthy = errors.New("local store is not healthy")

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the legacy single-pet format and finish interrupted deletions",
		Long: `La migración corre sola al abrir el store; este comando muestra qué hizo.
Sin datos viejos o con un pet actual ya elegido no hace nada.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep := c.app.Store.Opened()
			if c.jsonOut {
				return printJSON(cmd.OutOrStdout(), rep)
			}

			out := cmd.OutOrStdout()
			if rep.ResumedCascade != "" {
				fmt.Fprintf(out, "finished interrupted deletion of pet %s\n", rep.ResumedCascade)
			}
			if rep.Migrated {
				id, _ := c.app.Store.Session().PetID()
				fmt.Fprintf(out, "migrated legacy pet %s\n", id)
				return nil
			}
			fmt.Fprintln(out, "nothing to migrate")
			return nil
		},
	}
}

func newDoctorCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Report corrupt collections, orphans and dangling pointers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := c.app.Store.Inspect(cmd.Context())
			if err != nil {
				return err
			}

			if c.jsonOut {
				if err := printJSON(cmd.OutOrStdout(), rep); err != nil {
					return err
				}
			} else {
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "KEY\tSTATE\tRECORDS")
				for _, k := range rep.Collections {
					fmt.Fprintf(tw, "%s\t%s\t%d\n", k.Key, k.State, k.Records)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "current pet: %s (dangling=%t)\n", orNone(rep.CurrentPetID), rep.DanglingPointer)
				fmt.Fprintf(cmd.OutOrStdout(), "orphans: %d\n", rep.Orphans)
				if rep.PendingCascade != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "pending deletion: %s\n", rep.PendingCascade)
				}
				if rep.LegacyPresent {
					fmt.Fprintln(cmd.OutOrStdout(), "legacy single-pet data still present")
				}
			}

			if !rep.Healthy() {
				return errUnhealthy
			}
			return nil
		},
	}
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
