package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmigpin/formlayout/ui"
	"github.com/jmigpin/formlayout/util/logutil"
	"github.com/spf13/viper"
)

type Config struct {
	Log    logutil.Config `mapstructure:"log"`
	Layout LayoutConfig   `mapstructure:"layout"`
	Font   FontConfig     `mapstructure:"font"`
}

type LayoutConfig struct {
	ColumnWidth  int `mapstructure:"column_width"`
	RowHeight    int `mapstructure:"row_height"`
	HGap         int `mapstructure:"hgap"`
	VGap         int `mapstructure:"vgap"`
	LabelWidth   int `mapstructure:"label_width"`
	StatusWidth  int `mapstructure:"status_width"`
	CompactWidth int `mapstructure:"compact_width"`
}

type FontConfig struct {
	File string  `mapstructure:"file"` // truetype file, empty for the default font
	Size float64 `mapstructure:"size"`
}

func DefaultConfig() Config {
	env := ui.DefaultLayoutEnv()
	return Config{
		Log: logutil.DefaultConfig(),
		Layout: LayoutConfig{
			ColumnWidth:  env.ColumnWidth,
			RowHeight:    env.RowHeight,
			HGap:         env.HGap,
			VGap:         env.VGap,
			LabelWidth:   env.LabelWidth,
			StatusWidth:  env.StatusWidth,
			CompactWidth: env.CompactWidth,
		},
	}
}

func (c LayoutConfig) Env() ui.LayoutEnv {
	return ui.LayoutEnv{
		ColumnWidth:  c.ColumnWidth,
		RowHeight:    c.RowHeight,
		HGap:         c.HGap,
		VGap:         c.VGap,
		LabelWidth:   c.LabelWidth,
		StatusWidth:  c.StatusWidth,
		CompactWidth: c.CompactWidth,
	}
}

//----------

// Reads the config file (if any) and the FORMLAYOUT_* environment variables over the defaults.
func loadConfig(v *viper.Viper, file string) (Config, error) {
	cfg := DefaultConfig()
	setDefaults(v, cfg)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("formlayout") // any extension viper supports
	}
	v.SetEnvPrefix("FORMLAYOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Keys must be known to viper for the environment variables to be used by Unmarshal.
func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.name", cfg.Log.Name)

	l := cfg.Layout
	v.SetDefault("layout.column_width", l.ColumnWidth)
	v.SetDefault("layout.row_height", l.RowHeight)
	v.SetDefault("layout.hgap", l.HGap)
	v.SetDefault("layout.vgap", l.VGap)
	v.SetDefault("layout.label_width", l.LabelWidth)
	v.SetDefault("layout.status_width", l.StatusWidth)
	v.SetDefault("layout.compact_width", l.CompactWidth)

	v.SetDefault("font.file", cfg.Font.File)
	v.SetDefault("font.size", cfg.Font.Size)
}
