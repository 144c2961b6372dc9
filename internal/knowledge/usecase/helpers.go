package usecase

import (
	"bytes"
	"encoding/json"
	"strings"

	"ikraph-email-agent/internal/model"
)

// cleanCypher strips markdown fences, including a leading language tag.
func cleanCypher(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if nl := strings.IndexByte(s, '\n'); nl >= 0 {
			if tag := strings.TrimSpace(s[:nl]); tag == "" || isFenceTag(tag) {
				s = s[nl+1:]
			}
		}
	}
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

func isFenceTag(tag string) bool {
	switch strings.ToLower(tag) {
	case "cypher", "neo4j", "sql":
		return true
	}
	return false
}

// renderRecords renders records as indented JSON for the summary prompt.
func renderRecords(records []model.PathRecord) (string, error) {
	if records == nil {
		records = []model.PathRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
