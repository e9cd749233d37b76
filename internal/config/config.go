package config

import "github.com/hance08/accrue/internal/constants"

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Interest   InterestConfig `mapstructure:"interest"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

// DatabaseConfig names the in-memory journal database.
type DatabaseConfig struct {
	Name string `mapstructure:"name"`
}

type DefaultsConfig struct {
	SeedDemo bool `mapstructure:"seed_demo"`
}

type InterestConfig struct {
	DaysInYear int   `mapstructure:"days_in_year"`
	Scale      int32 `mapstructure:"scale"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Name: "accrue"},
		Defaults: DefaultsConfig{SeedDemo: false},
		Interest: InterestConfig{
			DaysInYear: constants.DefaultDaysInYear,
			Scale:      constants.DefaultScale,
		},
		Log: LogConfig{Level: "warn", Development: false},
	}
}
