package utils

import (
	"regexp"
	"strings"
)

// Best-effort line parser for pasted exam text. It is a convenience
// heuristic, not a grammar: output is previewed to the admin and only
// explicitly confirmed questions get saved.

// ParsedQuestion is one question recognized in the pasted text. IsValid
// means it has a text, at least two options and a resolved correct answer.
type ParsedQuestion struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	IsValid       bool     `json:"is_valid"`
}

var (
	// "1. Question", "2- Question", "3) Question"
	questionRegex = regexp.MustCompile(`^(\d+)[\.\-\)]\s+(.+)`)
	// "A) Option", "b. Option"
	optionRegex = regexp.MustCompile(`^([a-dA-D])[\.\)]\s+(.+)`)
	// "Cevap: A", "Answer: b", "Doğru Cevap: C"
	answerRegex = regexp.MustCompile(`(?i)^(?:Cevap|Answer|Doğru Cevap|Yanıt)[\s:]+([a-dA-D])`)
)

type rawQuestion struct {
	text         string
	options      map[string]string // letter -> option text
	answerLetter string
}

// ParseBulkQuestions splits pasted exam text into questions. Lines that
// match none of the patterns are ignored; multiline question texts are not
// supported and need a manual fix in the preview.
func ParseBulkQuestions(text string) []ParsedQuestion {
	var raws []rawQuestion
	var current *rawQuestion

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := questionRegex.FindStringSubmatch(line); m != nil {
			if current != nil {
				raws = append(raws, *current)
			}
			current = &rawQuestion{text: m[2], options: make(map[string]string)}
			continue
		}

		if current == nil {
			continue
		}

		if m := optionRegex.FindStringSubmatch(line); m != nil {
			current.options[strings.ToUpper(m[1])] = m[2]
			continue
		}

		if m := answerRegex.FindStringSubmatch(line); m != nil {
			current.answerLetter = strings.ToUpper(m[1])
		}
	}
	if current != nil {
		raws = append(raws, *current)
	}

	parsed := make([]ParsedQuestion, 0, len(raws))
	for _, raw := range raws {
		// Options keep the conventional A..D order
		var options []string
		for _, letter := range []string{"A", "B", "C", "D"} {
			if opt, ok := raw.options[letter]; ok {
				options = append(options, opt)
			}
		}

		// The schema stores the correct answer as option text, so the
		// detected letter has to resolve against the parsed options
		correct := raw.options[raw.answerLetter]

		parsed = append(parsed, ParsedQuestion{
			Text:          raw.text,
			Options:       options,
			CorrectAnswer: correct,
			IsValid:       raw.text != "" && len(options) >= 2 && correct != "",
		})
	}

	return parsed
}
