package kernel

import "strings"

var tokenSeparators = strings.NewReplacer(" ", "_", "-", "_")

// NormalizeToken folds an external enum spelling ("Return to Store",
// "return-to-store", " RETURN_TO_STORE ") into its snake_case form.
// It is the single normalization boundary for every closed enumeration.
func NormalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = tokenSeparators.Replace(s)
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return s
}
