package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pawnote/internal/remote"
)

func newPullCmd(c *cli) *cobra.Command {
	var petID string

	cmd := &cobra.Command{
		Use:   "pull --pet-id <id>",
		Short: "Import a pet and its records from the legacy REST backend",
		Long: `Copia un pet con sus reminders, checklists y visitas desde remote.base_url.
Los ids se conservan; correr pull otra vez actualiza los mismos records.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := remote.New(c.conf.Remote.BaseURL, c.conf.Remote.Timeout, nil)
			if err != nil {
				return err
			}

			res, err := remote.Pull(cmd.Context(), client, c.app.Store, petID)
			if err != nil {
				return err
			}
			if c.jsonOut {
				return printJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pet %s (new=%t): %d reminders, %d checklists, %d vet visits added\n",
				petID, res.PetCreated, res.Reminders, res.Checklists, res.VetVisits)
			return nil
		},
	}
	cmd.Flags().StringVar(&petID, "pet-id", "", "pet id on the backend")
	_ = cmd.MarkFlagRequired("pet-id")
	return cmd
}
