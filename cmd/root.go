package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pders01/abref/internal/config"
	"github.com/pders01/abref/internal/logging"
	"github.com/pders01/abref/internal/lookup"
	"github.com/pders01/abref/internal/models"
	"github.com/pders01/abref/internal/render"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile      string
	outputFormat string
	refsPath     string
	verbose      bool
)

// appFs backs both snapshot and config reads
var appFs afero.Fs = afero.NewOsFs()

var rootCmd = &cobra.Command{
	Use:   "abref <snapshot.json> <name_substring> [role]",
	Short: "Print the key of the first snapshot reference whose name matches",
	Long: `abref reads a snapshot document and prints the key of the first reference
under data.refs whose name contains <name_substring>, ignoring case.

When [role] is given, only references with exactly that role qualify.
References are scanned in document order and the scan stops at the first match.
Use "-" as the snapshot path to read from stdin.
Flags must come before the snapshot path.

Exit codes:
  0  match found, key printed
  1  no match, nothing printed
  2  usage error
  3  snapshot is not valid JSON
  4  snapshot could not be read

Examples:
  abref snapshot.json main
  abref snapshot.json v1.2 tag
  cat snapshot.json | abref - "release" head`,
	Args:              requireArgs,
	PersistentPreRunE: initConfig,
	RunE:              runLookup,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

// Execute runs the root command and exits with its status code
func Execute() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	reportError(logging.New(stderr, false), err)
	return exitCode(err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/abref/config.toml)")
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "", "output format: text, json or toon (default from config, else text)")
	rootCmd.Flags().StringVar(&refsPath, "refs-path", "", "path of the reference table in the snapshot (default data.refs)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostics to stderr")

	// Flags go before the snapshot path; queries like "-rc" stay positional
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Msg: err.Error()}
	})
}

func requireArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return &UsageError{}
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	viper.SetFs(appFs)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			configDir := filepath.Join(home, ".config", "abref")
			viper.AddConfigPath(configDir)
		}
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("ABREF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())

	log := newLogger(cmd)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	log.Debugf("Using config file: %s", viper.ConfigFileUsed())

	return nil
}

func runLookup(cmd *cobra.Command, args []string) error {
	query := models.Query{Name: args[1]}
	if len(args) > 2 {
		query.Role = args[2]
	}
	if query.Name == "" {
		return &UsageError{Msg: "name substring must not be empty"}
	}

	format := outputFormat
	if format == "" {
		format = config.GetOutputFormat()
	}
	f, err := render.ParseFormat(format)
	if err != nil {
		return &UsageError{Msg: err.Error()}
	}

	path := refsPath
	if path == "" {
		path = config.GetRefsPath()
	}

	log := newLogger(cmd)
	log.Debugf("Looking up %q (role %q) in %s at %s", query.Name, query.Role, args[0], path)

	ref, err := lookup.FindFile(appFs, args[0], query,
		lookup.WithRefsPath(path),
		lookup.WithStdin(cmd.InOrStdin()),
		lookup.WithLogger(log),
	)
	if err != nil {
		return err
	}

	return render.Write(cmd.OutOrStdout(), f, ref)
}

func newLogger(cmd *cobra.Command) *logging.Logger {
	return logging.New(cmd.ErrOrStderr(), verbose || config.GetVerbose())
}
