package core

import "strings"

// Search returns the records whose description contains query,
// compared case-insensitively. No match is an empty, non-error result.
func Search(records []Transaction, query string) []Transaction {
	q := strings.ToLower(query)
	var out []Transaction
	for _, t := range records {
		if strings.Contains(strings.ToLower(t.Description), q) {
			out = append(out, t)
		}
	}
	return out
}
