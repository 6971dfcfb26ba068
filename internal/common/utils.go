package common

import (
	"crypto/sha256"
	"fmt"
	"path/filepath"
	"strings"
)

// contentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

var supportedExtensions = map[string]bool{
	".json": true,
	".html": true,
	".htm":  true,
}

// ValidateInputs cleans and deduplicates input paths and returns
// (valid paths, rejected paths). HTTP(S) URLs pass through untouched;
// file paths must carry a supported extension.
func ValidateInputs(paths []string) ([]string, []string) {
	valid := make([]string, 0, len(paths))
	var invalid []string
	seen := make(map[string]bool, len(paths))

	for _, raw := range paths {
		cleaned := strings.TrimSpace(raw)
		if cleaned == "" {
			invalid = append(invalid, raw)
			continue
		}

		if !strings.HasPrefix(cleaned, "http://") && !strings.HasPrefix(cleaned, "https://") {
			cleaned = filepath.Clean(cleaned)
			if !supportedExtensions[strings.ToLower(filepath.Ext(cleaned))] {
				invalid = append(invalid, raw)
				continue
			}
		}

		if seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		valid = append(valid, cleaned)
	}

	return valid, invalid
}
