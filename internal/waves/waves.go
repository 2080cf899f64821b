package waves

import (
	"regexp"
	"strings"
)

// Kind classifies an event line against the action vocabulary.
type Kind string

const (
	KindSpawn    Kind = "Spawn"
	KindPath     Kind = "Path"
	KindSequence Kind = "Sequence"
	KindTiming   Kind = "Timing"
	KindUnknown  Kind = "Unknown"
)

// Event is one action line inside a wave.
type Event struct {
	// Ordinal is the event's position within its wave.
	Ordinal int
	// Kind is derived from Content on parse; edits to Content re-derive it
	// on the next parse only.
	Kind Kind
	// Content is the full line text, independently editable.
	Content string
}

// Wave is one named stage with its ordered events.
type Wave struct {
	// Ordinal is the wave's position in the document.
	Ordinal int
	// HeaderLine is the line that opened the wave, verbatim. Synthetic
	// waves carry a generated label instead.
	HeaderLine string
	Events     []*Event
}

// SyntheticHeader labels the wave created for orphan lines that precede any
// real wave header.
const SyntheticHeader = "Wave 1"

// waveStartKeywords open a new wave wherever they appear in a line.
var waveStartKeywords = []string{"AddWave", "CreateTrain", "StartWave"}

// waveHeaderRe matches explicit "Wave <number>" headers.
var waveHeaderRe = regexp.MustCompile(`(?i)^\s*wave\s*:?\s*[0-9]+`)

// kindVocabulary maps action keywords to event kinds, first match wins.
var kindVocabulary = []struct {
	keyword string
	kind    Kind
}{
	{"AddBloon", KindSpawn},
	{"SpawnBloon", KindSpawn},
	{"FollowPath", KindPath},
	{"SetPath", KindPath},
	{"CreateTrain", KindSequence},
	{"AddTrain", KindSequence},
	{"Wait", KindTiming},
	{"Delay", KindTiming},
}

// ClassifyEvent tags a line with the first matching vocabulary keyword.
func ClassifyEvent(line string) Kind {
	for _, entry := range kindVocabulary {
		if strings.Contains(line, entry.keyword) {
			return entry.kind
		}
	}
	return KindUnknown
}

// isWaveStart reports whether a line opens a new wave: it contains a
// wave-creation keyword, matches the "Wave <number>" header pattern, or is
// the very first line of the document and contains both parentheses.
func isWaveStart(line string, firstLine bool) bool {
	for _, kw := range waveStartKeywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	if waveHeaderRe.MatchString(line) {
		return true
	}
	if firstLine && strings.Contains(line, "(") && strings.Contains(line, ")") {
		return true
	}
	return false
}

// Parse runs the two-state machine over the non-blank lines of text.
func Parse(text string) []*Wave {
	var (
		out     []*Wave
		current *Wave
		orphans []string
		first   = true
	)

	flushOrphans := func() {
		if len(orphans) == 0 {
			return
		}
		w := &Wave{Ordinal: len(out), HeaderLine: SyntheticHeader}
		for _, line := range orphans {
			w.Events = append(w.Events, &Event{
				Ordinal: len(w.Events),
				Kind:    ClassifyEvent(line),
				Content: line,
			})
		}
		out = append(out, w)
		orphans = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		start := isWaveStart(line, first)
		first = false

		switch {
		case start && current == nil:
			flushOrphans()
			current = &Wave{Ordinal: len(out), HeaderLine: line}
		case start:
			out = append(out, current)
			current = &Wave{Ordinal: len(out), HeaderLine: line}
		case current != nil:
			current.Events = append(current.Events, &Event{
				Ordinal: len(current.Events),
				Kind:    ClassifyEvent(line),
				Content: line,
			})
		default:
			orphans = append(orphans, line)
		}
	}

	if current != nil {
		out = append(out, current)
	} else {
		flushOrphans()
	}

	return out
}

// Serialize emits each wave's header line followed by its event lines, one
// per line, with no blank separators between waves.
func Serialize(wavesList []*Wave) string {
	var sb strings.Builder
	for _, w := range wavesList {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(w.HeaderLine)
		for _, e := range w.Events {
			sb.WriteByte('\n')
			sb.WriteString(e.Content)
		}
	}
	return sb.String()
}
