// Package rewriter replaces fixed Chinese literals in a source file with their
// English equivalents and strips decorative emoji from logging calls.
//
// The pipeline is linear: Load, literal pass, cleanup pass, Store. Any error
// aborts the run before Store, leaving the target untouched.
package rewriter

import (
	"time"

	"go.uber.org/zap"

	"github.com/xishang0128/textfix/common/file"
	"github.com/xishang0128/textfix/common/logger"
	"github.com/xishang0128/textfix/compression"
)

// Rewrite runs the literal pass and then the cleanup pass.
func Rewrite(content string, t *Table, rules []CleanupRule) (string, Stats) {
	out, literal := ApplyLiteralReplacements(content, t)
	out, emoji := ApplyEmojiCleanup(out, rules)
	return out, Stats{Literal: literal, Emoji: emoji, Changed: out != content}
}

// ConfirmFunc decides whether a pending write goes ahead.
type ConfirmFunc func(path string, stats Stats) (bool, error)

// Options configure a Rewriter. The zero value rewrites with the default
// ruleset and writes an uncompressed backup.
type Options struct {
	Ruleset *Ruleset
	// Codec encodes the backup. nil means a plain copy.
	Codec compression.Codec
	// Codecs lists the backup formats probed for an existing backup.
	// nil means every built-in codec.
	Codecs   *compression.CodecManager
	NoBackup bool
	DryRun   bool
	Confirm  ConfirmFunc
	Logger   *zap.Logger
}

// Rewriter applies one ruleset to files on disk.
type Rewriter struct {
	rs       *Ruleset
	codec    compression.Codec
	codecs   *compression.CodecManager
	noBackup bool
	dryRun   bool
	confirm  ConfirmFunc
	log      *zap.Logger
}

// New returns a Rewriter for opts, filling in the defaults for nil fields.
func New(opts Options) *Rewriter {
	rs := opts.Ruleset
	if rs == nil {
		rs = DefaultRuleset()
	}
	codec := opts.Codec
	if codec == nil {
		codec = compression.NewNoneCodec()
	}
	codecs := opts.Codecs
	if codecs == nil {
		codecs = compression.NewCodecManager()
	}
	return &Rewriter{
		rs:       rs,
		codec:    codec,
		codecs:   codecs,
		noBackup: opts.NoBackup,
		dryRun:   opts.DryRun,
		confirm:  opts.Confirm,
		log:      logger.OrNop(opts.Logger),
	}
}

// Run loads path, rewrites it and stores the result. Unchanged content is
// never written, and neither is a backup for it.
func (w *Rewriter) Run(path string) (*Result, error) {
	start := time.Now()
	log := w.log.With(zap.String(logger.FieldFile, path))

	content, err := file.Load(path)
	if err != nil {
		return nil, err
	}

	out, stats := Rewrite(content, w.rs.Table, w.rs.Rules)
	res := &Result{Path: path, Stats: stats}
	w.logStats(log, stats)

	if !stats.Changed {
		log.Info("no changes")
		return res, nil
	}
	if w.dryRun {
		log.Info("dry run, nothing written")
		return res, nil
	}

	if w.confirm != nil {
		ok, err := w.confirm(path, stats)
		if err != nil {
			return res, err
		}
		if !ok {
			res.Declined = true
			log.Info("write declined")
			return res, nil
		}
	}

	if !w.noBackup {
		backupPath, created, err := file.Backup(path, []byte(content), w.codec, w.codecs)
		if err != nil {
			return res, err
		}
		res.BackupPath = backupPath
		res.BackupCreated = created
		if !created {
			log.Info("existing backup kept", zap.String(logger.FieldBackup, backupPath))
		} else {
			log.Debug("backup written",
				zap.String(logger.FieldBackup, backupPath),
				zap.String(logger.FieldCodec, w.codec.Type().String()))
		}
	}

	if err := file.Store(path, out); err != nil {
		return res, err
	}
	res.Stored = true

	log.Info("rewritten",
		zap.Int(logger.FieldCount, stats.Replacements()+stats.EmojiRemoved()),
		zap.Int64(logger.FieldDurationMS, time.Since(start).Milliseconds()))
	return res, nil
}

func (w *Rewriter) logStats(log *zap.Logger, stats Stats) {
	if !log.Core().Enabled(zap.DebugLevel) {
		return
	}
	for _, st := range stats.Literal {
		if st.Count == 0 {
			continue
		}
		log.Debug("replaced",
			zap.String(logger.FieldFrom, st.Entry.From),
			zap.String(logger.FieldTo, st.Entry.To),
			zap.Int(logger.FieldCount, st.Count))
	}
	for _, st := range stats.Emoji {
		if st.Count == 0 {
			continue
		}
		log.Debug("emoji removed",
			zap.String(logger.FieldRule, st.Rule),
			zap.Int(logger.FieldCount, st.Count))
	}
}
