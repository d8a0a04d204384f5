package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/TuneLab/enumtab/config"
	"github.com/TuneLab/enumtab/gentesthelper"
)

const header = `
namespace app::HunterDef {
enum class WEAPON_TYPE : int32_t {
  INVALID = -1,
  LONG_SWORD = 0,
  BOW = 13,
};
}
namespace app::ArmorDef {
enum SERIES : int32_t {
  NONE = 0,
};
}
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}
}

func TestRunExtract(t *testing.T) {
	dir := t.TempDir()
	c := config.Default().Extract
	c.Input = filepath.Join(dir, "Enums_Internal.hpp")
	c.Output = filepath.Join(dir, "out", "enums.json")
	c.ForwardOutput = filepath.Join(dir, "out", "enums_forward.json")
	writeFile(t, c.Input, header)

	if err := runExtract(c); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(c.Output)
	if err != nil {
		t.Fatal(err)
	}
	want := `{
    "app.HunterDef.WEAPON_TYPE": {
        "-1": "INVALID",
        "0": "LONG_SWORD",
        "13": "BOW"
    },
    "app.ArmorDef.SERIES": {
        "0": "NONE"
    }
}`
	if string(got) != want {
		t.Fatalf("extract output differs:\n%s", gentesthelper.DiffStrings(string(got), want))
	}

	fwd, err := os.ReadFile(c.ForwardOutput)
	if err != nil {
		t.Fatal(err)
	}
	a, b, di := gentesthelper.DiffJSON(string(fwd),
		`{"app.HunterDef.WEAPON_TYPE": {"INVALID": -1, "LONG_SWORD": 0, "BOW": 13}, "app.ArmorDef.SERIES": {"NONE": 0}}`)
	if a != b {
		t.Fatalf("forward output differs:\n%s", di)
	}
}

func TestRunExtractMalformedWritesNothing(t *testing.T) {
	dir := t.TempDir()
	c := config.Default().Extract
	c.Input = filepath.Join(dir, "bad.hpp")
	c.Output = filepath.Join(dir, "enums.json")
	writeFile(t, c.Input, "namespace A {\nenum B {\n  C = oops,\n};\n}\n")

	err := runExtract(c)
	if err == nil {
		t.Fatal("malformed header extracted without error")
	}
	if !strings.Contains(err.Error(), "line '3'") {
		t.Errorf("error %q does not name line 3", err)
	}
	if _, err := os.Stat(c.Output); !os.IsNotExist(err) {
		t.Fatalf("output file exists after a failed extract: %v", err)
	}
}

func TestRunExtractBadScope(t *testing.T) {
	c := config.Default().Extract
	c.Scope = "sideways"
	if err := runExtract(c); err == nil {
		t.Fatal("unknown scope mode accepted")
	}
}

func TestRunCombine(t *testing.T) {
	dir := t.TempDir()
	c := config.Default().Combine
	c.Root = filepath.Join(dir, "stm")
	c.Output = filepath.Join(dir, "outputs", "combined_msgs.json")
	writeFile(t, filepath.Join(c.Root, "a", "one.msg.23.json"), `{"K": "old", "A": 1}`)
	writeFile(t, filepath.Join(c.Root, "b", "two.msg.23.json"), `{"K": "new"}`)
	writeFile(t, filepath.Join(c.Root, "b", "broken.msg.23.json"), `{`)

	if err := runCombine(c); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(c.Output)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n    \"K\": \"new\",\n    \"A\": 1\n}"
	if string(got) != want {
		t.Fatalf("combine output differs:\n%s", gentesthelper.DiffStrings(string(got), want))
	}

	c.OnError = "fail"
	c.Output = filepath.Join(dir, "strict.json")
	if err := runCombine(c); err == nil {
		t.Fatal("combine with on_error=fail ignored a broken file")
	}
	if _, err := os.Stat(c.Output); !os.IsNotExist(err) {
		t.Fatalf("output file exists after a failed combine: %v", err)
	}
}

func TestRunWikigen(t *testing.T) {
	dir := t.TempDir()
	c := config.Default().Wikigen
	c.CommonData = filepath.Join(dir, "common.json")
	c.CommonMsg = filepath.Join(dir, "common.msg.23")
	c.SkillData = filepath.Join(dir, "skill.json")
	c.SkillMsg = filepath.Join(dir, "skill.msg.23")
	c.Output = ""
	writeFile(t, c.CommonData, `{"values": [{"skill_id": 1, "skill_name": "n", "skill_explain": "e"}]}`)
	writeFile(t, c.CommonMsg, `{"n": {"content": ["", "Guard"]}, "e": {"content": ["", "Less\r\nknockback."]}}`)
	writeFile(t, c.SkillData, `{"values": [{"skill_id": 1, "skill_lv": 1, "skill_name": "n", "skill_explain": "l"}]}`)
	writeFile(t, c.SkillMsg, `{"n": {"content": ["", "Guard"]}, "l": {"content": ["", "Guard +1"]}}`)

	var stdout bytes.Buffer
	if err := runWikigen(c, &stdout); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"{{NavigationMHWilds}}", "| rowspan=\"1\" | Guard", "|Less knockback.", "# Guard +1"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("table does not contain %q:\n%s", want, stdout.String())
		}
	}

	c.Output = filepath.Join(dir, "wiki", "skills.txt")
	if err := runWikigen(c, &stdout); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(c.Output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(got), "|-\n|}\n") {
		t.Fatalf("file output does not end with the table footer:\n%q", got)
	}
	if want := string(got) + "\n"; stdout.String() != want {
		t.Fatalf("stdout output differs from file output plus a blank line:\n%s", gentesthelper.DiffStrings(stdout.String(), want))
	}
}

func TestOverrideFromFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("out", "o", "", "")
	fs.Int("language", 1, "")

	out, lang := "from-config.json", 3
	overrideString(fs, "out", &out)
	overrideInt(fs, "language", &lang)
	if out != "from-config.json" || lang != 3 {
		t.Fatalf("unset flags overrode config: %q, %d", out, lang)
	}

	if err := fs.Parse([]string{"-o", "flag.json", "--language=0"}); err != nil {
		t.Fatal(err)
	}
	overrideString(fs, "out", &out)
	overrideInt(fs, "language", &lang)
	if out != "flag.json" || lang != 0 {
		t.Fatalf("flags did not override config: %q, %d", out, lang)
	}
}
