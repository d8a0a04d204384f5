package wikigen

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ID is a skill identifier. Dumps write it either as an enum name string or
// as a plain number, so both are accepted and kept as text.
type ID string

// NoneID marks the placeholder record every skill table starts with.
const NoneID ID = "NONE"

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.Errorf("skill id %s is neither a string nor a number", b)
	}
	*id = ID(n.String())
	return nil
}

// CommonRecord is one entry of skillcommondata: a skill and the catalog
// references of its name and explanation.
type CommonRecord struct {
	SkillID      ID     `json:"skill_id"`
	SkillName    string `json:"skill_name"`
	SkillExplain string `json:"skill_explain"`
}

// LevelRecord is one entry of skilldata: the effect of a skill at one level.
type LevelRecord struct {
	SkillID      ID     `json:"skill_id"`
	SkillLv      int    `json:"skill_lv"`
	SkillName    string `json:"skill_name"`
	SkillExplain string `json:"skill_explain"`
}

// CommonData is the structural dataset of skills.
type CommonData struct {
	Values []CommonRecord `json:"values"`
}

// LevelData is the structural dataset of skill levels.
type LevelData struct {
	Values []LevelRecord `json:"values"`
}

// Message is one message catalog entry, holding one text per language.
type Message struct {
	Content []string `json:"content"`
}

// Catalog maps message identifiers to messages.
type Catalog map[string]Message

// Text returns the text of message id in language lang.
func (c Catalog) Text(id string, lang int) (string, bool) {
	m, ok := c[id]
	if !ok || lang < 0 || lang >= len(m.Content) {
		return "", false
	}
	return m.Content[lang], true
}

// Paths names the four files Load reads.
type Paths struct {
	CommonData string
	CommonMsg  string
	SkillData  string
	SkillMsg   string
}

// Datasets holds the four inputs of a skill page.
type Datasets struct {
	Common    CommonData
	CommonMsg Catalog
	Levels    LevelData
	SkillMsg  Catalog
}

// Load reads and decodes the files named by p.
func Load(p Paths) (*Datasets, error) {
	var ds Datasets
	for _, f := range []struct {
		path string
		dst  interface{}
	}{
		{p.CommonData, &ds.Common},
		{p.CommonMsg, &ds.CommonMsg},
		{p.SkillData, &ds.Levels},
		{p.SkillMsg, &ds.SkillMsg},
	} {
		if err := readJSON(f.path, f.dst); err != nil {
			return nil, err
		}
	}
	log.WithFields(log.Fields{
		"skills":         len(ds.Common.Values),
		"levels":         len(ds.Levels.Values),
		"commonMessages": len(ds.CommonMsg),
		"skillMessages":  len(ds.SkillMsg),
	}).Debug("loaded skill datasets")
	return &ds, nil
}

func readJSON(path string, dst interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "cannot read %v", path)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return errors.Wrapf(err, "cannot parse %v", path)
	}
	return nil
}
