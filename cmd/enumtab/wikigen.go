package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/TuneLab/enumtab/config"
	"github.com/TuneLab/enumtab/wikigen"
)

var wikigenCmd = &cobra.Command{
	Use:   "wikigen",
	Short: "Render the armor skill list as a wikitable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cfg.Wikigen
		fs := cmd.Flags()
		overrideString(fs, "common-data", &c.CommonData)
		overrideString(fs, "common-msg", &c.CommonMsg)
		overrideString(fs, "skill-data", &c.SkillData)
		overrideString(fs, "skill-msg", &c.SkillMsg)
		overrideInt(fs, "language", &c.Language)
		overrideString(fs, "title", &c.Title)
		overrideString(fs, "navigation", &c.Navigation)
		overrideString(fs, "out", &c.Output)
		return runWikigen(c, os.Stdout)
	},
}

func init() {
	fs := wikigenCmd.Flags()
	fs.String("common-data", "", "skillcommondata.user.3.json dump")
	fs.String("common-msg", "", "skillcommon.msg.23 message catalog")
	fs.String("skill-data", "", "skilldata.user.3.json dump")
	fs.String("skill-msg", "", "skill.msg.23 message catalog")
	fs.Int("language", wikigen.DefaultLanguage, "Index of the language in message content lists")
	fs.String("title", wikigen.DefaultTitle, "Table caption")
	fs.String("navigation", wikigen.DefaultNavigation, "Wiki markup placed above the table")
	fs.StringP("out", "o", "", "Write the table here instead of stdout")
	rootCmd.AddCommand(wikigenCmd)
}

func runWikigen(c config.WikigenConfig, stdout io.Writer) error {
	ds, err := wikigen.Load(wikigen.Paths{
		CommonData: c.CommonData,
		CommonMsg:  c.CommonMsg,
		SkillData:  c.SkillData,
		SkillMsg:   c.SkillMsg,
	})
	if err != nil {
		return errors.Wrap(err, "cannot load skill datasets")
	}

	page := &wikigen.Page{
		Navigation: c.Navigation,
		Title:      c.Title,
		Skills:     wikigen.Join(ds, wikigen.WithLanguage(c.Language)),
	}
	if c.Output == "" {
		if err := wikigen.Render(stdout, page); err != nil {
			return err
		}
		// The table is printed as a line of its own, so a blank line
		// follows the closing "|}".
		_, err := fmt.Fprintln(stdout)
		return err
	}

	var buf bytes.Buffer
	if err := wikigen.Render(&buf, page); err != nil {
		return err
	}
	return errors.Wrap(writeGenFile(&buf, c.Output), "cannot write output")
}
