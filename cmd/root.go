package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/dcshell/core/config"
	"github.com/josephlewis42/dcshell/core/shell"
	"github.com/josephlewis42/dcshell/core/vos"
)

var (
	cfgPath   string
	verbose   bool
	colorMode string
)

// configPath resolves the configuration file and whether it was named
// explicitly, in which case it must exist.
func configPath(cmd *cobra.Command, env vos.VEnv) (string, bool) {
	if cmd.Flags().Changed("config") {
		return cfgPath, true
	}

	home, _ := env.UserHomeDir()
	_, explicit := env.LookupEnv(config.EnvConfigPath)
	return config.DefaultPath(env.Getenv, home), explicit
}

func loadConfig(cmd *cobra.Command, fsys afero.Fs, env vos.VEnv) (*config.Configuration, error) {
	path, explicit := configPath(cmd, env)
	if explicit {
		return config.Load(fsys, path)
	}
	return config.LoadOrDefault(fsys, path)
}

// newLogger creates the verbose logger, every line is prefixed with an id
// for the run.
func newLogger(cfg *config.Configuration, stderr io.Writer, home string) (*log.Logger, io.Closer, error) {
	if !cfg.Verbose {
		return log.New(io.Discard, "", 0), io.NopCloser(nil), nil
	}

	prefix := fmt.Sprintf("[%s] ", uuid.NewString()[:8])
	fd, err := cfg.OpenLog(home)
	if err != nil {
		return nil, nil, err
	}
	if fd == nil {
		return log.New(stderr, prefix, log.LstdFlags), io.NopCloser(nil), nil
	}
	return log.New(fd, prefix, log.LstdFlags|log.Lmicroseconds), fd, nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dcshell",
	Short: "A minimal interactive shell",
	Long: `Reads one command per line, runs it with optional <, >, >>, 2> and 2>>
redirections and prints its exit status. The PATH and PS1 are read once at
startup.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		env := &vos.OSEnv{}
		home, _ := env.UserHomeDir()

		cfg, err := loadConfig(cmd, afero.NewOsFs(), env)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = verbose
		}
		if cmd.Flags().Changed("color") {
			cfg.Color = colorMode
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, logFile, err := newLogger(cfg, cmd.ErrOrStderr(), home)
		if err != nil {
			return err
		}
		defer logFile.Close()

		vio := vos.NewVIOAdapter(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		opts := shell.Options{
			IO:     vio,
			Env:    env,
			Logger: logger,
			Color: config.Enabled(cfg.Color, func() bool {
				return vos.IsTerminal(vio.Stderr())
			}),
			RecoverParseErrors: !cfg.ParseErrorsFatal,
		}

		if config.Enabled(cfg.LineEditing, func() bool { return vos.IsTerminal(vio.Stdin()) }) {
			reader, err := shell.NewReadlineReader(vio, config.ExpandHome(cfg.HistoryFile, home))
			if err != nil {
				return err
			}
			opts.Reader = reader
		}

		return shell.RunShell(opts)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

// reportError prints err unless the shell already printed its diagnostic.
func reportError(w io.Writer, err error) {
	if errors.Is(err, shell.ErrFatal) {
		return
	}
	fmt.Fprintln(w, "Error:", err)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", fmt.Sprintf("config file (default $%s or ~/%s)", config.EnvConfigPath, config.ConfigurationName))
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace the shell's state machine")
	rootCmd.Flags().StringVar(&colorMode, "color", config.ModeAuto, "highlight diagnostics: always, auto or never")
}
