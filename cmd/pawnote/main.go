// Command pawnote administra la base local de Pawnote desde la terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"pawnote/internal/app"
	"pawnote/internal/config"
	"pawnote/internal/platform/logger"
)

// version se pisa con -ldflags "-X main.version=...".
var version = "dev"

type cli struct {
	configPath string
	jsonOut    bool

	conf *config.Config
	app  *app.App
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute cierra el store aunque el comando falle (PostRun no corre en ese caso).
func execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	c := &cli{}
	defer c.close()

	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "pawnote",
		Short: "Pawnote local store tools",
		Long: `pawnote opera sobre la misma base local que usa la API:
migración del formato viejo, diagnóstico, backups y importación desde el backend REST.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.open,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ./pawnote.yaml if present)")
	root.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "output as JSON")

	root.AddCommand(
		newVersionCmd(),
		newMigrateCmd(c),
		newDoctorCmd(c),
		newExportCmd(c),
		newImportCmd(c),
		newPullCmd(c),
		newPetsCmd(c),
		newUseCmd(c),
	)
	return root
}

// open carga config y abre el store. version no necesita store.
func (c *cli) open(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	conf, err := config.Load(c.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	c.conf = conf

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(conf.Log.Level),
		Format: logger.ParseFormat(conf.Log.Format),
		App:    conf.App.Name,
		Output: cmd.ErrOrStderr(),
	})

	a, err := app.New(cmd.Context(), app.Options{Config: conf, Log: log})
	if err != nil {
		return err
	}
	c.app = a
	return nil
}

func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}
