package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pawnote/internal/backup"
)

func newExportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write a compressed snapshot of every collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := backup.NewCodec()
			if err != nil {
				return err
			}
			defer codec.Close()

			snap, err := c.app.Store.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			if err := codec.WriteFile(args[0], snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d keys to %s\n", len(snap.Values), args[0])
			return nil
		},
	}
}

func newImportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the local store with a snapshot written by export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := backup.NewCodec()
			if err != nil {
				return err
			}
			defer codec.Close()

			snap, err := codec.ReadFile(args[0])
			if err != nil {
				return err
			}
			if err := c.app.Store.Restore(cmd.Context(), snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "restored %d keys from %s\n", len(snap.Values), args[0])
			return nil
		},
	}
}
