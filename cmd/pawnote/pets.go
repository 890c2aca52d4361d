package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPetsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "pets",
		Short: "List pets; the current one is marked with *",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pets, err := c.app.Store.GetPets(cmd.Context())
			if err != nil {
				return err
			}
			if c.jsonOut {
				return printJSON(cmd.OutOrStdout(), pets)
			}

			current, _ := c.app.Store.Session().PetID()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "\tID\tNAME\tTYPE\tBIRTH DATE")
			for _, p := range pets {
				mark := ""
				if p.ID == current {
					mark = "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", mark, p.ID, p.Name, p.DisplayType(), p.BirthDate)
			}
			return tw.Flush()
		},
	}
}

func newUseCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "use <petID>",
		Short: "Select the current pet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok, err := c.app.Store.GetPet(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("pet %s not found", args[0])
			}
			if err := c.app.Store.SetCurrentPetID(cmd.Context(), p.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "current pet: %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}
}
