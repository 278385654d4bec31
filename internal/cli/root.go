// Package cli implements the resio command.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmgilman/go/resio"
)

// Build data
var buildVersion string

var rootConfig RootConfig

type RootConfig struct {
	ConfigFile string
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resio",
		Short: "Read and copy files and bundled resources",
		Long: `Read and copy files and bundled resources.

Sources may be filesystem paths or "classpath:<name>" references, which are
looked up in the resource directories given with --resources (searched in
order, first match wins).`,
		Version:       buildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return SetLogLevel()
		},
	}

	cmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringSlice("resources", nil, "Directories searched for classpath: resources (RESIO_RESOURCES takes an OS path list)")
	cmd.PersistentFlags().StringVarP(&rootConfig.ConfigFile, "config", "c", "", "Configuration file")

	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("resources", cmd.PersistentFlags().Lookup("resources"))

	cmd.AddCommand(
		newCatCommand(),
		newCopyCommand(),
		newTranscodeCommand(),
		newExtractCommand(),
	)
	return cmd
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("Command failed.", "err", err)
		os.Exit(1)
	}
}

func SetLogLevel() error {
	value := strings.ToLower(viper.GetString("log_level"))
	switch value {
	case "info":
		slog.SetLogLoggerLevel(slog.LevelInfo)
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	case "error":
		slog.SetLogLoggerLevel(slog.LevelError)
	default:
		return fmt.Errorf("unknown log level %q", value)
	}
	slog.Debug("Set log level.", "level", value)
	return nil
}

// newIO builds an IO whose classpath is the configured resource directories.
func newIO() *resio.IO {
	opts := []resio.Option{resio.WithLogger(slog.Default())}
	for _, dir := range resourceDirs() {
		slog.Debug("Adding resource directory.", "path", dir)
		opts = append(opts, resio.WithResources(os.DirFS(dir)))
	}
	return resio.New(opts...)
}

// resourceDirs returns the configured resource directories. A plain string,
// as set through RESIO_RESOURCES, is split like PATH so directory names may
// contain spaces.
func resourceDirs() []string {
	if value, ok := viper.Get("resources").(string); ok {
		var dirs []string
		for _, dir := range filepath.SplitList(value) {
			if dir != "" {
				dirs = append(dirs, dir)
			}
		}
		return dirs
	}
	return viper.GetStringSlice("resources")
}

func initConfig() {
	if rootConfig.ConfigFile != "" {
		viper.SetConfigFile(rootConfig.ConfigFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".resio")
	}

	viper.SetEnvPrefix("RESIO")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err == nil {
		slog.Info("Using config file", "path", viper.ConfigFileUsed())
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}
