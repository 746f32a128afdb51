package rewriter

// Entry is one literal replacement: every occurrence of From becomes To.
type Entry struct {
	From string `json:"from" yaml:"from" toml:"from"`
	To   string `json:"to" yaml:"to" toml:"to"`
}

// EntryStat counts how many occurrences of an entry's key were replaced.
type EntryStat struct {
	Entry Entry `json:"entry"`
	Count int   `json:"count"`
}

// RuleStat counts how many call sites a cleanup rule rewrote.
type RuleStat struct {
	Rule  string `json:"rule"`
	Count int    `json:"count"`
}

// Stats summarises both passes over one buffer.
type Stats struct {
	Literal []EntryStat `json:"literal"`
	Emoji   []RuleStat  `json:"emoji"`
	Changed bool        `json:"changed"`
}

// Replacements returns the total number of literal replacements made.
func (s Stats) Replacements() int {
	n := 0
	for _, st := range s.Literal {
		n += st.Count
	}
	return n
}

// EmojiRemoved returns the total number of emoji prefixes removed.
func (s Stats) EmojiRemoved() int {
	n := 0
	for _, st := range s.Emoji {
		n += st.Count
	}
	return n
}

// Result describes what Run did to one file.
type Result struct {
	Path       string `json:"path"`
	Stats      Stats  `json:"stats"`
	Stored     bool   `json:"stored"`
	BackupPath string `json:"backup_path,omitempty"`
	// BackupCreated is false when the backup already existed or was disabled.
	BackupCreated bool `json:"backup_created"`
	// Declined is set when the confirmation hook refused the write.
	Declined bool `json:"declined,omitempty"`
}
