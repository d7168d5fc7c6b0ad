package quiz

import (
	"encoding/json"
	"regexp"
)

// arrayRegex matches the first top-level JSON array of objects inside prose.
var arrayRegex = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)

// ParseQuestions parses the endpoint response text into questions. It tries
// a direct parse first, then the first JSON array substring, and falls back
// to an empty slice rather than failing. Non-array payloads are coerced to
// empty.
func ParseQuestions(text string) []Question {
	var questions []Question
	if err := json.Unmarshal([]byte(text), &questions); err == nil {
		if questions == nil {
			return []Question{}
		}
		return questions
	}

	match := arrayRegex.FindString(text)
	if match == "" {
		return []Question{}
	}

	questions = nil
	if err := json.Unmarshal([]byte(match), &questions); err != nil {
		return []Question{}
	}
	return questions
}
