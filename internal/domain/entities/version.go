package entities

import (
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// CanonicalVersion ensures version has the 'v' prefix semver expects.
func CanonicalVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// NormalizeVersion trims whitespace and a leading 'v' so every source reports
// versions the same way ("1.2.3", never "v1.2.3").
func NormalizeVersion(version string) string {
	return strings.TrimPrefix(strings.TrimSpace(version), "v")
}

// IsSemver reports whether version, with or without a 'v' prefix, is valid semver.
func IsSemver(version string) bool {
	return semver.IsValid(CanonicalVersion(version))
}

// SortVersionsDescending sorts version strings newest first. Pairs that are not
// both valid semver fall back to string comparison.
func SortVersionsDescending(versions []string) {
	sort.Slice(versions, func(i, j int) bool {
		v1 := CanonicalVersion(versions[i])
		v2 := CanonicalVersion(versions[j])

		if semver.IsValid(v1) && semver.IsValid(v2) {
			return semver.Compare(v1, v2) > 0
		}

		return versions[i] > versions[j]
	})
}

// ParseVersionFile extracts the version from a plain version file: the first
// line that is neither blank nor a '#' comment.
func ParseVersionFile(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			return line
		}
	}
	return ""
}
