package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/TuneLab/enumtab/config"
)

var (
	// Version is compiled into enumtab with the flag
	// go install -ldflags "-X main.Version=$SHA"
	Version string
	// VersionDate is compiled into enumtab with the flag
	// go install -ldflags "-X main.VersionDate=$VERSION_DATE"
	VersionDate string
)

var (
	cfgFile     string
	verboseFlag bool

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "enumtab",
	Short: "Extract enum tables from C++ headers and post-process game data dumps",
	Long: `enumtab turns the enums of a C++ header dump into JSON lookup tables.

Commands:
  extract  - write value→name (and optionally name→value) tables of every enum
  combine  - merge per-module JSON message dictionaries into one file
  wikigen  - render the armor skill list as a wikitable`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetLevel(log.InfoLevel)
		if verboseFlag {
			log.SetLevel(log.DebugLevel)
		}

		if cfgFile == "" {
			cfg = config.Default()
			return nil
		}
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return errors.Wrap(err, "cannot load configuration")
		}
		log.WithField("config", cfgFile).Debug("loaded configuration")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML or YAML config file; flags override its values")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output")

	if Version != "" {
		rootCmd.Version = fmt.Sprintf("%s (%s)", Version, VersionDate)
	}
}

func main() {
	exitIfError(rootCmd.Execute())
}

// exitIfError will print the error message and exit 1 if the passed error is
// non-nil
func exitIfError(err error) {
	if errors.Cause(err) != nil {
		defer os.Exit(1)
		if verboseFlag {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
			return
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
}

// overrideString sets dst to the value of the named flag if it was given on
// the command line.
func overrideString(fs *pflag.FlagSet, name string, dst *string) {
	if !fs.Changed(name) {
		return
	}
	if v, err := fs.GetString(name); err == nil {
		*dst = v
	}
}

func overrideInt(fs *pflag.FlagSet, name string, dst *int) {
	if !fs.Changed(name) {
		return
	}
	if v, err := fs.GetInt(name); err == nil {
		*dst = v
	}
}

// writeGenFile writes a file at path to the filesystem
func writeGenFile(file io.Reader, path string) error {
	err := os.MkdirAll(filepath.Dir(path), 0777)
	if err != nil {
		return err
	}

	outFile, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create file %v", path)
	}

	_, err = io.Copy(outFile, file)
	if err != nil {
		outFile.Close()
		return errors.Wrapf(err, "cannot write to %v", path)
	}
	return outFile.Close()
}
