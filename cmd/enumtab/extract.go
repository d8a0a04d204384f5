package main

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/TuneLab/enumtab/config"
	"github.com/TuneLab/enumtab/enumdef"
	"github.com/TuneLab/enumtab/enumdef/enumparse"
	"github.com/TuneLab/enumtab/textenc"
)

var extractCmd = &cobra.Command{
	Use:   "extract [header]",
	Short: "Write the enum tables of a C++ header as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cfg.Extract
		if len(args) > 0 {
			c.Input = args[0]
		}
		fs := cmd.Flags()
		overrideString(fs, "out", &c.Output)
		overrideString(fs, "forward-out", &c.ForwardOutput)
		overrideString(fs, "scope", &c.Scope)
		overrideString(fs, "encoding", &c.Encoding)
		return runExtract(c)
	},
}

func init() {
	fs := extractCmd.Flags()
	fs.StringP("out", "o", "", "Value→name tables are written here (default enums.json)")
	fs.String("forward-out", "", "Also write name→value tables here")
	fs.String("scope", "", "Namespace tracking: flat or nested (default flat)")
	fs.String("encoding", "", "Text encoding of the header (default utf-8)")
	rootCmd.AddCommand(extractCmd)
}

// runExtract parses the configured header and writes its tables. Nothing is
// written unless the whole header parses.
func runExtract(c config.ExtractConfig) error {
	mode, err := enumparse.ParseScopeMode(c.Scope)
	if err != nil {
		return err
	}

	f, err := os.Open(c.Input)
	if err != nil {
		return errors.Wrapf(err, "cannot open header %v", c.Input)
	}
	defer f.Close()

	r, err := textenc.NewReader(f, c.Encoding)
	if err != nil {
		return err
	}

	logger := log.WithField("input", c.Input)
	ed, err := enumdef.New(r,
		enumparse.WithScopeMode(mode),
		enumparse.WithLogger(logger),
	)
	if err != nil {
		return errors.Wrapf(err, "cannot extract enums from %v", c.Input)
	}

	var rev, fwd bytes.Buffer
	if err := ed.WriteReverse(&rev); err != nil {
		return errors.Wrap(err, "cannot encode enum tables")
	}
	if c.ForwardOutput != "" {
		if err := ed.WriteForward(&fwd); err != nil {
			return errors.Wrap(err, "cannot encode enum tables")
		}
	}

	if err := writeGenFile(&rev, c.Output); err != nil {
		return errors.Wrap(err, "cannot write output")
	}
	if c.ForwardOutput != "" {
		if err := writeGenFile(&fwd, c.ForwardOutput); err != nil {
			return errors.Wrap(err, "cannot write output")
		}
	}

	logger.WithFields(log.Fields{
		"enums":  ed.Len(),
		"output": c.Output,
	}).Info("wrote enum tables")
	return nil
}
