package decls

import (
	"regexp"
	"strings"
)

// ValueType is the inferred literal shape of a declaration's value.
type ValueType string

const (
	TypeBoolean ValueType = "boolean"
	TypeNumber  ValueType = "number"
	TypeArray   ValueType = "array"
	TypeObject  ValueType = "object"
	TypeString  ValueType = "string"
)

// Declaration is one parsed name/value assignment.
type Declaration struct {
	// Ordinal is the record's position in parse order and its stable
	// identity for the editing session.
	Ordinal int
	// Name is the left-hand side identifier.
	Name string
	// Value is the raw right-hand side text, trailing ';' and ',' stripped.
	Value string
	// ValueType is inferred from the literal shape of Value.
	ValueType ValueType
	// Category is inferred from Name against the fixed rule list.
	Category string
	// SourceLine is the original line, kept so serialization can reproduce
	// the declaration style.
	SourceLine string
}

// The three line grammars, tried in priority order. The bare form can
// shadow the others on ambiguous lines; first match wins and that order is
// the defined tie-break.
var (
	keywordedRe = regexp.MustCompile(`^\s*(var|const|let)\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*=\s*(.+)$`)
	memberRe    = regexp.MustCompile(`^\s*this\.([A-Za-z_$][A-Za-z0-9_$]*)\s*=\s*(.+)$`)
	bareRe      = regexp.MustCompile(`^\s*([A-Za-z_$][A-Za-z0-9_$]*)\s*=\s*(.+)$`)

	numberRe = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)
)

// Parse processes decoded payload text line by line. Blank lines, comment
// lines, and lines matching no grammar are skipped without error.
func Parse(text string) []*Declaration {
	var records []*Declaration

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#") {
			continue
		}

		name, value, ok := matchLine(line)
		if !ok {
			continue
		}

		records = append(records, &Declaration{
			Ordinal:    len(records),
			Name:       name,
			Value:      value,
			ValueType:  InferType(value),
			Category:   InferCategory(name),
			SourceLine: line,
		})
	}

	return records
}

func matchLine(line string) (name, value string, ok bool) {
	if m := keywordedRe.FindStringSubmatch(line); m != nil {
		return m[2], trimValue(m[3]), true
	}
	if m := memberRe.FindStringSubmatch(line); m != nil {
		return m[1], trimValue(m[2]), true
	}
	if m := bareRe.FindStringSubmatch(line); m != nil {
		return m[1], trimValue(m[2]), true
	}
	return "", "", false
}

func trimValue(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimRight(v, ";,")
	return strings.TrimSpace(v)
}

// InferType classifies a value literal by shape. Checks run in a fixed
// order: boolean, number, array, object, then string as the catch-all.
func InferType(value string) ValueType {
	v := strings.TrimSpace(value)
	switch {
	case strings.EqualFold(v, "true") || strings.EqualFold(v, "false"):
		return TypeBoolean
	case numberRe.MatchString(v):
		return TypeNumber
	case strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]"):
		return TypeArray
	case strings.HasPrefix(v, "{") && strings.HasSuffix(v, "}"):
		return TypeObject
	default:
		return TypeString
	}
}

// categoryRules maps name substrings to categories, first match wins.
var categoryRules = []struct {
	pattern  string
	category string
}{
	{"fps", "Performance"},
	{"quality", "Performance"},
	{"render", "Performance"},
	{"cache", "Performance"},
	{"color", "Visual"},
	{"colour", "Visual"},
	{"theme", "Visual"},
	{"skin", "Visual"},
	{"sprite", "Visual"},
	{"effect", "Visual"},
	{"sound", "Audio"},
	{"music", "Audio"},
	{"volume", "Audio"},
	{"mute", "Audio"},
	{"width", "Layout"},
	{"height", "Layout"},
	{"scale", "Layout"},
	{"pos", "Layout"},
	{"margin", "Layout"},
	{"level", "Game"},
	{"score", "Game"},
	{"life", "Game"},
	{"lives", "Game"},
	{"cash", "Game"},
	{"round", "Game"},
	{"difficulty", "Game"},
	{"speed", "Game"},
	{"debug", "Debug"},
	{"test", "Debug"},
	{"log", "Debug"},
	{"cheat", "Debug"},
	{"dev", "Debug"},
}

// InferCategory buckets a declaration by name. Matching is case-insensitive
// substring search against the ordered rule list; no match yields "General".
func InferCategory(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range categoryRules {
		if strings.Contains(lower, rule.pattern) {
			return rule.category
		}
	}
	return "General"
}

// Serialize emits one line per record in the given order, reconstructing
// each record's declaration style from its source line. A record whose
// source line carries no recognizable marker falls back to the bare
// NAME = VALUE; form rather than failing.
func Serialize(records []*Declaration) string {
	var sb strings.Builder
	for i, d := range records {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(emitLine(d))
	}
	return sb.String()
}

func emitLine(d *Declaration) string {
	switch {
	case strings.Contains(d.SourceLine, "var "):
		return "var " + d.Name + " = " + d.Value + ";"
	case strings.Contains(d.SourceLine, "const "):
		return "const " + d.Name + " = " + d.Value + ";"
	case strings.Contains(d.SourceLine, "let "):
		return "let " + d.Name + " = " + d.Value + ";"
	case strings.Contains(d.SourceLine, "this."):
		return "this." + d.Name + " = " + d.Value + ";"
	default:
		return d.Name + " = " + d.Value + ";"
	}
}
