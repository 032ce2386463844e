package core

import (
	"github.com/jmigpin/formlayout/util/fontutil"
	"github.com/jmigpin/formlayout/util/logutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// State shared by the commands, set up before any command runs.
type cliApp struct {
	v          *viper.Viper
	configFile string
	logLevel   string

	cfg Config
	log *zap.Logger
}

func NewRootCmd() *cobra.Command {
	app := &cliApp{v: viper.New(), cfg: DefaultConfig(), log: zap.NewNop()}
	cmd := &cobra.Command{
		Use:          "formlayout",
		Short:        "Lays out form definitions with a logical grid.",
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(app.v, app.configFile)
			if err != nil {
				return err
			}
			if app.logLevel != "" {
				cfg.Log.Level = app.logLevel
			}
			app.cfg = cfg
			app.log = logutil.New(cfg.Log, zapcore.AddSync(cmd.ErrOrStderr()))
			app.log.Debug("config loaded", zap.String("file", app.v.ConfigFileUsed()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = app.log.Sync()
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&app.configFile, "config", "c", "", "config file (default is ./formlayout.yaml)")
	pf.StringVar(&app.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	cmd.AddCommand(newLayoutCmd(app))
	return cmd
}

// Runs the root command, returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}

//----------

// Font given in the flags or in the config, nil for the session default.
func (app *cliApp) fontFace(file string, size float64) (*fontutil.FontFace, error) {
	if file == "" {
		file = app.cfg.Font.File
	}
	if size <= 0 {
		size = app.cfg.Font.Size
	}
	if file == "" {
		if size > 0 {
			return fontutil.DefaultFont().FontFace2(size), nil
		}
		return nil, nil
	}
	return fontutil.LoadTrueTypeFace(file, size)
}
