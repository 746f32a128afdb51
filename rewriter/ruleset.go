package rewriter

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/xishang0128/textfix/common/file"
)

var ErrEmptyRuleset = errors.New("ruleset has no replacements and no emoji")

// Ruleset bundles a replacement table with the cleanup rules built over its emoji set.
type Ruleset struct {
	Table *Table
	Emoji []string
	Rules []CleanupRule
}

// rulesetFile is the on-disk shape. A list keeps the order explicit.
type rulesetFile struct {
	Replacements []Entry  `yaml:"replacements" toml:"replacements"`
	Emoji        []string `yaml:"emoji,omitempty" toml:"emoji,omitempty"`
}

// DefaultRuleset returns the built-in table and cleanup rules.
func DefaultRuleset() *Ruleset {
	return &Ruleset{
		Table: DefaultTable(),
		Emoji: DefaultEmoji(),
		Rules: DefaultCleanup(),
	}
}

// LoadRuleset reads a ruleset from path: TOML for a .toml file, YAML
// otherwise. An omitted emoji list falls back to DefaultEmoji.
func LoadRuleset(path string) (*Ruleset, error) {
	content, err := file.Load(path)
	if err != nil {
		return nil, err
	}
	parse := ParseRuleset
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		parse = ParseRulesetTOML
	}
	rs, err := parse([]byte(content))
	if err != nil {
		return nil, errors.Wrapf(err, "ruleset %s", path)
	}
	return rs, nil
}

// ParseRuleset decodes a YAML ruleset. Unknown fields are rejected.
func ParseRuleset(data []byte) (*Ruleset, error) {
	var rf rulesetFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decode yaml")
	}
	return rf.build()
}

// ParseRulesetTOML decodes a TOML ruleset with the same shape:
//
//	emoji = ["🔐", "📧"]
//
//	[[replacements]]
//	from = "开始登录"
//	to = "Login Start"
func ParseRulesetTOML(data []byte) (*Ruleset, error) {
	var rf rulesetFile
	md, err := toml.Decode(string(data), &rf)
	if err != nil {
		return nil, errors.Wrap(err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Newf("decode toml: unknown field %q", undecoded[0].String())
	}
	return rf.build()
}

func (rf rulesetFile) build() (*Ruleset, error) {
	if len(rf.Replacements) == 0 && len(rf.Emoji) == 0 {
		return nil, ErrEmptyRuleset
	}

	table, err := NewTable(rf.Replacements)
	if err != nil {
		return nil, err
	}
	emoji := rf.Emoji
	if len(emoji) == 0 {
		emoji = DefaultEmoji()
	}
	rules, err := CleanupRules(emoji)
	if err != nil {
		return nil, err
	}
	return &Ruleset{Table: table, Emoji: emoji, Rules: rules}, nil
}

// EncodeYAML renders the ruleset in the format ParseRuleset reads.
func (r *Ruleset) EncodeYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(rulesetFile{Replacements: r.Table.Entries(), Emoji: r.Emoji}); err != nil {
		return nil, errors.Wrap(err, "encode yaml")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encode yaml")
	}
	return buf.Bytes(), nil
}

// EncodeTOML renders the ruleset in the format ParseRulesetTOML reads.
func (r *Ruleset) EncodeTOML() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(rulesetFile{Replacements: r.Table.Entries(), Emoji: r.Emoji}); err != nil {
		return nil, errors.Wrap(err, "encode toml")
	}
	return buf.Bytes(), nil
}
