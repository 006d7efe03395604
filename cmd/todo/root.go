package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todoloop/internal/cli"
	"github.com/idilsaglam/todoloop/internal/config"
	"github.com/idilsaglam/todoloop/internal/logging"
	"github.com/idilsaglam/todoloop/internal/session"
	"github.com/idilsaglam/todoloop/internal/store/jsonstore"
	"github.com/idilsaglam/todoloop/internal/ui"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "todo",
		Short: "A tiny interactive todo list",
		Long: `todo keeps a list of todos in ./todos.json.

Run it without arguments and pick options from the menu:
  1 / add      add a todo
  2 / list     show all todos
  3 / remove   remove a todo by id
  4 / quit     save and leave (also: exit)

Settings are read from ./todo.toml when present.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTodo,
	}
}

func runTodo(cmd *cobra.Command, _ []string) error {
	logger := logging.New(cmd.ErrOrStderr(), log.InfoLevel)

	res, err := config.Load(config.FileName)
	if err != nil {
		logger.Error("ignoring config, using defaults", "err", err)
	}
	for _, k := range res.Unknown {
		logger.Warn("unknown config key", "key", k, "file", config.FileName)
	}
	cfg := res.Config

	// Validated by config.Load; fall back silently on the zero value.
	level, _ := logging.ParseLevel(cfg.LogLevel)
	logger.SetLevel(level)
	scheme, _ := session.ParseIDScheme(cfg.IDScheme)
	theme, _ := ui.LookupTheme(cfg.Theme)

	store, err := jsonstore.New(cfg.DataFile)
	if err != nil {
		logger.Error("cannot open store", "err", err)
		return err
	}
	logger.Debug("using data file", "path", store.Path(), "id_scheme", scheme)

	r := cli.NewRunner(store, cmd.InOrStdin(), ui.NewPrinter(cmd.OutOrStdout(), theme), logger, cli.Options{
		IDScheme: scheme,
	})
	if err := r.Run(); err != nil {
		logger.Error("console input failed", "err", err)
		return err
	}
	return nil
}
