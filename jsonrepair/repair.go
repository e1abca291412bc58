// Package jsonrepair normalizes near-valid JSON emitted by a generative
// model into strictly parseable JSON. The rules are narrow, ordered pattern
// rewrites that undo previously observed output quirks (markdown fencing,
// trailing commas, truncated braces); this is deliberately not a lenient
// JSON grammar.
package jsonrepair

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	// ```json\n or ```\n at the start of the text
	fenceOpen = regexp.MustCompile("^\\s*```[a-zA-Z]*[ \t]*\n")
	// closing ``` at the end of the text
	fenceClose = regexp.MustCompile("\n?```\\s*$")

	// trailing comma before a closing brace or bracket
	trailingComma = regexp.MustCompile(`,(\s*[}\]])`)

	// missing comma between a numeric value and a following object entry
	missingComma = regexp.MustCompile(`(\d)(\s*\n\s*\{)`)

	// missing closing brace: a bare numeric field on its own line followed
	// by a comma or closing bracket
	missingBrace = regexp.MustCompile(`("[^"\n]+"\s*:\s*-?\d+(?:\.\d+)?)(\s*\n\s*)([,\]])`)

	// second-tier pass: an unterminated object ending in a numeric
	// "weight" field, either truncated at the end of the text or run into
	// the next object entry
	weightAtEnd      = regexp.MustCompile(`("weight"\s*:\s*-?\d+(?:\.\d+)?)\s*$`)
	weightThenObject = regexp.MustCompile(`("weight"\s*:\s*-?\d+(?:\.\d+)?)\s*,?(\s*\n\s*)\{`)
)

// Repair applies the ordered first-tier rewrites. It is idempotent on
// already-valid JSON: the fencing and comma rules only fire on the malformed
// patterns they target.
func Repair(s string) string {
	s = strings.TrimSpace(s)
	s = fenceOpen.ReplaceAllString(s, "")
	s = fenceClose.ReplaceAllString(s, "")
	s = trailingComma.ReplaceAllString(s, "$1")
	s = missingComma.ReplaceAllString(s, "$1,$2")
	s = missingBrace.ReplaceAllString(s, "$1$2}$3")
	return s
}

// repairWeight closes unterminated objects ending in a numeric "weight"
// field. Applied only when the first parse attempt fails.
func repairWeight(s string) string {
	s = weightThenObject.ReplaceAllString(s, "$1},$2{")
	s = weightAtEnd.ReplaceAllString(s, "$1}")
	return s
}

// Unmarshal repairs data and parses it into v. If the first parse fails, one
// additional weight-field repair pass is applied and the parse retried once;
// a second failure propagates the parse error unchanged. This is a
// best-effort utility, not a general JSON recovery engine.
func Unmarshal(data []byte, v any) error {
	repaired := Repair(string(data))
	if err := json.Unmarshal([]byte(repaired), v); err == nil {
		return nil
	}

	second := repairWeight(repaired)
	return json.Unmarshal([]byte(second), v)
}
