package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/srctools/pyrewrite-go/service"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pyrewrite",
	Short: "Analyze and rewrite Python source",
	Long: `pyrewrite parses Python source into a syntax tree, applies a
registered set of analysis and transformation rules, and re-emits the
source text with untouched code preserved verbatim.`,
	SilenceUsage: true,
}

// Execute runs the root command. Cobra prints the error and we exit
// non-zero if a RunE returns one.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .pyrewrite.toml in the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("rules", "", "path to a TOML file with declarative rules")
	_ = viper.BindPFlag("rules", rootCmd.PersistentFlags().Lookup("rules"))

	rootCmd.AddCommand(analyzeCmd, refactorCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".pyrewrite")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("PYREWRITE")
	viper.AutomaticEnv()

	// a missing config file is fine; flags and env cover everything
	_ = viper.ReadInConfig()
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func newService() (*service.Service, error) {
	s := service.New(newLogger())
	s.RulesPath = viper.GetString("rules")
	if err := s.Initialize(); err != nil {
		return nil, err
	}
	return s, nil
}

// readSource reads the named file, or stdin when no file (or "-") is
// given.
func readSource(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Report findings for a Python source file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args)
		if err != nil {
			return err
		}

		s, err := newService()
		if err != nil {
			return err
		}
		defer s.Shutdown()

		fmt.Fprintln(cmd.OutOrStdout(), s.AnalyzeCode(cmd.Context(), source))
		return nil
	},
}

var refactorCmd = &cobra.Command{
	Use:   "refactor [file]",
	Short: "Rewrite print calls to logging calls",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args)
		if err != nil {
			return err
		}

		s, err := newService()
		if err != nil {
			return err
		}
		defer s.Shutdown()

		fmt.Fprint(cmd.OutOrStdout(), s.RefactorCode(cmd.Context(), source))
		return nil
	},
}
