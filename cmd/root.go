package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/accrue/internal/app"
	"github.com/hance08/accrue/internal/config"
	"github.com/hance08/accrue/internal/errhandler"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

// deps is filled in by the root's PersistentPreRunE, after flags are parsed.
type deps struct {
	app     *app.App
	cleanup func()
}

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	// a missing .env is fine
	_ = godotenv.Load()

	d := &deps{}
	rootCmd := NewRootCmd(migrations, d)

	err := rootCmd.Execute()
	if d.cleanup != nil {
		d.cleanup()
	}

	if err != nil {
		os.Exit(errhandler.HandleError(err))
	}
}

func NewRootCmd(migrations fs.FS, d *deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "accrue",
		Short: "accrue is a CLI based banking ledger with monthly interest",
		Long: `accrue records deposits and withdrawals per account, keeps a schedule
of interest rules and prints monthly statements with the accrued interest.
Run without a subcommand to open the interactive menu.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}

			application, cleanup, err := app.NewApp(cfg, migrations)
			if err != nil {
				return err
			}
			d.app = application
			d.cleanup = cleanup
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return newMenuRunner(d.app.Service).Run()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().Bool("seed", false, "load the demo account and interest rules on start")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("defaults.seed_demo", rootCmd.PersistentFlags().Lookup("seed"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(NewMenuCmd(d))
	rootCmd.AddCommand(NewReplayCmd(d))
	rootCmd.AddCommand(NewInfoCmd(d))

	return rootCmd
}

func initConfig() error {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("ACCRUE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

// setDefaults registers every key so env overrides work without a file.
func setDefaults() {
	def := config.NewDefault()
	viper.SetDefault("database.name", def.Database.Name)
	viper.SetDefault("defaults.seed_demo", def.Defaults.SeedDemo)
	viper.SetDefault("interest.days_in_year", def.Interest.DaysInYear)
	viper.SetDefault("interest.scale", def.Interest.Scale)
	viper.SetDefault("log.level", def.Log.Level)
	viper.SetDefault("log.development", def.Log.Development)
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
