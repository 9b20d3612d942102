package transcript

import "strings"

// SourceSuffix marks the draft holding a source's raw text, leaving room for
// derived artifacts under the same document key.
const SourceSuffix = "--src"

// NormalizeKey derives a document key from a file name: lower-cased, cut at
// the first '.', spaces replaced with '-'. Callers must not pass "".
func NormalizeKey(fileName string) string {
	key := strings.ToLower(fileName)
	if i := strings.IndexByte(key, '.'); i >= 0 {
		key = key[:i]
	}
	return strings.ReplaceAll(key, " ", "-")
}

// DraftKey is the storage key for the raw source text of fileName.
func DraftKey(fileName string) string {
	return NormalizeKey(fileName) + SourceSuffix
}
