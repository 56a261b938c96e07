// Package config loads the hifc job manifest: a TOML file naming the
// source/destination semantics, the XML files to translate between, and the
// process-analysis knobs to run with. Decoding is toml.DecodeFile plus an
// explicit meta.IsDefined presence check for every required key, rather
// than trusting zero values.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"hif/internal/semantics"
)

// Job is the decoded form of a hif.toml manifest.
type Job struct {
	Path string

	Translate TranslateConfig `toml:"translate"`
	Process   ProcessConfig   `toml:"process"`
}

// TranslateConfig names the cross-semantics translation this job runs:
// which Language to read the input XML as, which to standardize into, and
// where to read/write the tree.
type TranslateConfig struct {
	From string `toml:"from"`
	To   string `toml:"to"`
	In   string `toml:"in"`
	Out  string `toml:"out"`
}

// ProcessConfig mirrors procanalysis.AnalyzeOptions in manifest form: clock
// and reset declarations are named by their identifier path rather than a
// NodeID, since a NodeID isn't known until the tree this job reads is
// parsed.
type ProcessConfig struct {
	Clocks     []string `toml:"clocks"`
	Resets     []string `toml:"resets"`
	Concurrent bool     `toml:"concurrent"`
	Split      bool     `toml:"split"`
	CacheDir   string   `toml:"cache_dir"`
}

// knownSemantics maps a manifest's lowercase from/to names onto the
// semantics.Language constructors, so hifc doesn't have to hardcode a
// switch at every call site that needs one.
var knownSemantics = map[string]func() semantics.Language{
	"rtl": func() semantics.Language { return semantics.NewRTL() },
	"tlm": func() semantics.Language { return semantics.NewTLM() },
}

// Load decodes path into a Job, rejecting a manifest missing any of
// [translate].from, [translate].to, [translate].in, [translate].out.
func Load(path string) (*Job, error) {
	var job Job
	meta, err := toml.DecodeFile(path, &job)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("translate") {
		return nil, fmt.Errorf("%s: missing [translate]", path)
	}
	for _, key := range []string{"from", "to", "in", "out"} {
		if !meta.IsDefined("translate", key) || strings.TrimSpace(fieldByKey(job.Translate, key)) == "" {
			return nil, fmt.Errorf("%s: missing [translate].%s", path, key)
		}
	}
	if _, ok := knownSemantics[strings.ToLower(job.Translate.From)]; !ok {
		return nil, fmt.Errorf("%s: [translate].from %q is not a known semantics", path, job.Translate.From)
	}
	if _, ok := knownSemantics[strings.ToLower(job.Translate.To)]; !ok {
		return nil, fmt.Errorf("%s: [translate].to %q is not a known semantics", path, job.Translate.To)
	}
	job.Path = path
	return &job, nil
}

func fieldByKey(t TranslateConfig, key string) string {
	switch key {
	case "from":
		return t.From
	case "to":
		return t.To
	case "in":
		return t.In
	case "out":
		return t.Out
	default:
		return ""
	}
}

// Source resolves [translate].from into a semantics.Language instance.
func (j *Job) Source() (semantics.Language, error) { return j.resolve(j.Translate.From) }

// Destination resolves [translate].to into a semantics.Language instance.
func (j *Job) Destination() (semantics.Language, error) { return j.resolve(j.Translate.To) }

func (j *Job) resolve(name string) (semantics.Language, error) {
	ctor, ok := knownSemantics[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%s: unknown semantics %q", j.Path, name)
	}
	return ctor(), nil
}
