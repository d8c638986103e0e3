// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for cesar using the
// Cobra library. It defines the root command, its persistent flags, the
// service wiring shared by all subcommands and the main entry point.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/cesarkit/cesar/buildvars"
	"github.com/cesarkit/cesar/internal/config"
	"github.com/cesarkit/cesar/internal/core"
	"github.com/cesarkit/cesar/internal/dictionary"
	"github.com/cesarkit/cesar/internal/files"
	"github.com/cesarkit/cesar/internal/i18n"
	"github.com/cesarkit/cesar/internal/logging"
	"github.com/cesarkit/cesar/internal/tui"
)

const modulePath = "github.com/cesarkit/cesar"

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var cfgFile string
var verbose bool
var showVersionFlag bool
var assumeYes bool

var appConfig config.Config

// runTUI starts the interactive menu. Tests replace it.
var runTUI = func(opts tui.Options) error { return tui.Run(opts) }

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := config.Defaults()
	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, optionalConfigPath)
	// A "file not found" error is expected on first run.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if optionalConfigPath == nil {
			if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
				// the app runs fine on defaults
				logging.Warnf("could not write default config file: %v", writeErr)
			} else {
				logging.Debugf("wrote default config to user config path")
			}
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Empty values in a user file fall back to the defaults.
	if strings.TrimSpace(appConfig.Language) == "" {
		appConfig.Language = defaults["language"].(string)
	}
	if strings.TrimSpace(appConfig.Files.Properties) == "" {
		appConfig.Files.Properties = defaults["files.properties"].(string)
	}
	if assumeYes {
		appConfig.Files.AssumeYes = true
	}

	i18n.Init(appConfig.Language)

	if err := logging.SetLevel(appConfig.Log.Level); err != nil {
		logging.Warnf("%v", err)
	}
	if verbose {
		logging.SetDebug(true)
	}
	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}
		if path == "" {
			return nil, nil
		}
		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// newService builds the operations facade from the loaded configuration.
func newService(cmd *cobra.Command) (*core.Service, error) {
	dict := dictionary.Default()
	if extra := appConfig.Dictionary.ExtraFile; extra != "" {
		words, err := dictionary.LoadWordFile(extra)
		if err != nil {
			return nil, err
		}
		dict = dict.WithWords(words...)
		logging.Debugf("loaded %d extra words from %s", len(words), extra)
	}

	return core.NewService(
		core.WithDictionary(dict),
		core.WithStore(files.NewManager(newConfirmer(cmd))),
		core.WithReporter(&cliReporter{w: cmd.ErrOrStderr()}),
		core.WithPropertiesPath(appConfig.Files.Properties),
	), nil
}

// newConfirmer asks on the terminal when stdin is interactive and declines
// otherwise, unless --yes or files.assume_yes is set.
func newConfirmer(cmd *cobra.Command) files.Confirmer {
	if appConfig.Files.AssumeYes {
		return files.AutoConfirm(true)
	}
	if isTerminal(cmd.InOrStdin()) {
		return files.NewPromptConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr())
	}
	return files.AutoConfirm(false)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// cliReporter prints operation messages, one per line.
type cliReporter struct{ w io.Writer }

func (r *cliReporter) Reportf(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// saveConfig persists cfg to the --config file when one was given, else to
// the user config path.
func saveConfig(cfg config.Config) error {
	if cfgFile != "" {
		return config.WriteConfigFileTo(&cfg, cfgFile)
	}
	return config.WriteConfigFile(&cfg, false)
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cesar",
		Short: "cesar encrypts, decrypts and cracks Caesar-shifted text.",
		Long: `cesar shifts text over a fixed alphabet of upper and lower case
letters, space and common punctuation. Without the key, the crack command
tries every shift and keeps the one whose output reads most like Spanish.

Running without a subcommand will launch the interactive menu.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Fprintln(cmd.OutOrStdout(), compositeVersion())
				os.Exit(0)
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			return runTUI(tui.Options{
				Service:    svc,
				Config:     appConfig,
				SaveConfig: saveConfig,
			})
		},
	}
	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) logging")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Create missing files without asking")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "", `Interface language ("es", "en")`)
	cmd.PersistentFlags().String("log.level", "", `Log level ("debug", "info", "warn", "error")`)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}

	cmd.AddCommand(
		newEncryptCmd(),
		newDecryptCmd(),
		newCrackCmd(),
		newAlphabetCmd(),
		newScoreCmd(),
		versionCmd,
	)

	return cmd
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	var ok bool
	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
			ok = true
		}
	} else {
		ok = true
	}

	if ok && info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record the module as a dependency.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
