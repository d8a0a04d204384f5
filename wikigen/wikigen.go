// Package wikigen joins the skill datasets of a game data dump with their
// message catalogs and renders the skill list as a MediaWiki table.
//
// Records whose messages are missing from the catalog are dropped without
// complaint; the dumps carry placeholder and unused entries and the table is
// only meant to show what the game shows.
package wikigen

import (
	"bytes"
	"io"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/TuneLab/enumtab/wikigen/templates"
)

const (
	// DefaultLanguage is the content index of English text.
	DefaultLanguage = 1
	// DefaultTitle is the caption of the skill table.
	DefaultTitle = "List of Armor Skills"
	// DefaultNavigation is the navigation template placed above the table.
	DefaultNavigation = "{{NavigationMHWilds}}"
)

// Level is the effect of a skill at one level.
type Level struct {
	Lv   int
	Text string
}

// Skill is one row of the table.
type Skill struct {
	ID      ID
	Name    string
	Explain string
	Levels  []Level
}

func (s *Skill) setLevel(lv int, text string) {
	for i := range s.Levels {
		if s.Levels[i].Lv == lv {
			s.Levels[i].Text = text
			return
		}
	}
	s.Levels = append(s.Levels, Level{Lv: lv, Text: text})
}

// Option configures Join.
type Option func(*joiner)

// WithLanguage sets the content index text is taken from.
func WithLanguage(lang int) Option {
	return func(j *joiner) {
		j.lang = lang
	}
}

// WithLogger sets the entry skipped records are logged to at debug level.
func WithLogger(l *log.Entry) Option {
	return func(j *joiner) {
		if l != nil {
			j.log = l
		}
	}
}

type joiner struct {
	lang int
	log  *log.Entry
}

// Join resolves every record of ds against its catalog and returns the skills
// in the order they first appear in the common dataset, each with its levels
// in the order they first appear in the level dataset.
func Join(ds *Datasets, opts ...Option) []*Skill {
	j := joiner{
		lang: DefaultLanguage,
		log:  log.NewEntry(log.StandardLogger()),
	}
	for _, o := range opts {
		o(&j)
	}

	var skills []*Skill
	byID := make(map[ID]int)

	for _, rec := range ds.Common.Values {
		name, ok := ds.CommonMsg.Text(rec.SkillName, j.lang)
		if !ok {
			j.log.WithField("skill", rec.SkillID).Debug("no message for skill name")
			continue
		}
		explain, ok := ds.CommonMsg.Text(rec.SkillExplain, j.lang)
		if !ok {
			j.log.WithField("skill", rec.SkillID).Debug("no message for skill explanation")
			continue
		}
		if rec.SkillID == NoneID {
			continue
		}

		s := &Skill{ID: rec.SkillID, Name: name, Explain: explain}
		if i, ok := byID[rec.SkillID]; ok {
			skills[i] = s
			continue
		}
		byID[rec.SkillID] = len(skills)
		skills = append(skills, s)
	}

	for _, rec := range ds.Levels.Values {
		if _, ok := ds.SkillMsg.Text(rec.SkillName, j.lang); !ok {
			j.log.WithFields(log.Fields{
				"skill": rec.SkillID,
				"level": rec.SkillLv,
			}).Debug("no message for level name")
			continue
		}
		explain, ok := ds.SkillMsg.Text(rec.SkillExplain, j.lang)
		if !ok {
			j.log.WithFields(log.Fields{
				"skill": rec.SkillID,
				"level": rec.SkillLv,
			}).Debug("no message for level explanation")
			continue
		}
		i, ok := byID[rec.SkillID]
		if !ok {
			continue
		}
		skills[i].setLevel(rec.SkillLv, explain)
	}
	return skills
}

// Page is the executor of the table template.
type Page struct {
	Navigation string
	Title      string
	Skills     []*Skill
}

// OneLine replaces CRLF line breaks with a space.
func OneLine(s string) string {
	return strings.Replace(s, "\r\n", " ", -1)
}

var funcMap = template.FuncMap{
	"OneLine": OneLine,
}

// Render writes p as a wikitable to w.
func Render(w io.Writer, p *Page) error {
	tmpl, err := template.New("skills").Funcs(funcMap).Parse(templates.SkillTable)
	if err != nil {
		return errors.Wrap(err, "cannot create template")
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, p); err != nil {
		return errors.Wrap(err, "template error")
	}
	_, err = out.WriteTo(w)
	return errors.Wrap(err, "cannot write skill table")
}
