// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package note

import "strings"

// Parse splits a rendered note body back into its sections, keyed by
// header text. Section bodies keep their interior newlines (the URL block
// may span several lines) but lose surrounding blank lines. Content before
// the first header is ignored.
func Parse(content string) map[string]string {
	sections := make(map[string]string)
	current := ""
	var bodyLines []string

	flush := func() {
		if current == "" {
			bodyLines = nil
			return
		}
		sections[current] = strings.Trim(strings.Join(bodyLines, "\n"), "\n")
		bodyLines = nil
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "# ") {
			flush()
			current = strings.TrimSpace(strings.TrimPrefix(line, "# "))
			continue
		}
		bodyLines = append(bodyLines, line)
	}
	flush()

	return sections
}
