package main

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/TuneLab/enumtab/combine"
	"github.com/TuneLab/enumtab/config"
)

var combineCmd = &cobra.Command{
	Use:   "combine [root]",
	Short: "Merge the JSON message dictionaries under a directory into one file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cfg.Combine
		if len(args) > 0 {
			c.Root = args[0]
		}
		fs := cmd.Flags()
		overrideString(fs, "out", &c.Output)
		overrideString(fs, "suffix", &c.Suffix)
		overrideString(fs, "on-error", &c.OnError)
		return runCombine(c)
	},
}

func init() {
	fs := combineCmd.Flags()
	fs.StringP("out", "o", "", "Combined dictionary is written here (default ./outputs/combined_msgs.json)")
	fs.String("suffix", "", "Only files ending in this suffix are merged (default "+combine.DefaultSuffix+")")
	fs.String("on-error", "", "What to do with an unreadable file: skip or fail (default skip)")
	rootCmd.AddCommand(combineCmd)
}

func runCombine(c config.CombineConfig) error {
	policy, err := combine.ParsePolicy(c.OnError)
	if err != nil {
		return err
	}

	results, err := combine.Walk(c.Root, c.Suffix)
	if err != nil {
		return err
	}
	merged, err := combine.Merge(results,
		combine.WithPolicy(policy),
		combine.WithLogger(log.WithField("root", c.Root)),
	)
	if err != nil {
		return errors.Wrap(err, "cannot combine dictionaries")
	}

	var buf bytes.Buffer
	if err := combine.Write(&buf, merged); err != nil {
		return err
	}
	if err := writeGenFile(&buf, c.Output); err != nil {
		return errors.Wrap(err, "cannot write output")
	}
	log.WithField("output", c.Output).Info("Combined JSON saved")
	return nil
}
