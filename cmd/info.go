package cmd

import (
	"github.com/hance08/accrue/internal/app"
	"github.com/hance08/accrue/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, journal database counts and account balances.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: d.app,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.app.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	stats, err := r.app.Service.Account.Stats()
	if err != nil {
		return err
	}

	items := views.SystemInfoItem{
		ConfigPath:   configPath,
		AppDataDir:   getAppDataDirOrUnknown(),
		DatabaseName: cfg.Database.Name,
		SeedDemo:     cfg.Defaults.SeedDemo,
		DaysInYear:   cfg.Interest.DaysInYear,
		Scale:        cfg.Interest.Scale,
		LogLevel:     cfg.Log.Level,
		Stats:        stats,
	}

	if err := views.RenderSystemInfo(items); err != nil {
		return err
	}

	summaries, err := r.app.Service.Account.Summaries()
	if err != nil {
		return err
	}
	return views.RenderAccountSummaries(summaries)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
