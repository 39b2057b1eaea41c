// Package filter decides which changed paths are safe to stage. Classification
// is a pure function over the path string; the planner turns a full status
// listing into a staging plan plus an exclusion report.
package filter

import "strings"

// Classification is the category assigned to a candidate path.
type Classification int

const (
	// Normal paths are staged.
	Normal Classification = iota
	// Security paths look like secrets or private keys.
	Security
	// DependencyFolder paths live under a package-manager or toolchain folder.
	DependencyFolder
	// BuildArtifact paths are compiler or editor noise.
	BuildArtifact
)

func (c Classification) String() string {
	switch c {
	case Security:
		return "security"
	case DependencyFolder:
		return "dependency folder"
	case BuildArtifact:
		return "build artifact"
	default:
		return "normal"
	}
}

// Reason is the human explanation shown in the exclusion report.
func (c Classification) Reason() string {
	switch c {
	case Security:
		return "looks like a secret or credential file"
	case DependencyFolder:
		return "inside a dependency folder"
	case BuildArtifact:
		return "build or editor artifact"
	default:
		return "safe to stage"
	}
}

// Overrides are the user's explicit opt-ins. A matching rule whose override is
// set reclassifies the path as Normal.
type Overrides struct {
	AllowEnv               bool
	AllowDependencyFolders bool
	AllowBuildArtifacts    bool
}

// Pattern tables. Matching is case-sensitive and operates on whole path
// components so that e.g. "targeted.txt" never matches the "target" folder.
var (
	secretNames = []string{".npmrc", ".pypirc", "credentials", "secrets.yml", "secrets.yaml"}

	sshKeyNames = []string{"id_rsa", "id_dsa", "id_ecdsa", "id_ed25519"}

	dependencyFolders = []string{
		"node_modules", "venv", ".venv", "vendor", "bower_components",
		"jspm_packages", "target", "Pods", ".gradle", "build", "dist",
	}

	artifactSuffixes = []string{
		".pyc", ".o", ".class", ".so", ".dll", ".log", ".tmp",
		".cache", ".bak", ".swp", ".swo", ".swn",
	}

	artifactNames = []string{".DS_Store", "Thumbs.db", "desktop.ini", "__pycache__"}
)

// rule pairs a predicate with the classification it yields and the override
// that downgrades a match to Normal. Rules are evaluated in order; the first
// match wins, which fixes the tie-break Security > DependencyFolder >
// BuildArtifact.
type rule struct {
	matches    func(components []string, base string) bool
	class      Classification
	overridden func(Overrides) bool
}

var rules = []rule{
	{matchesSecret, Security, func(o Overrides) bool { return o.AllowEnv }},
	{matchesDependencyFolder, DependencyFolder, func(o Overrides) bool { return o.AllowDependencyFolders }},
	{matchesArtifact, BuildArtifact, func(o Overrides) bool { return o.AllowBuildArtifacts }},
}

// Classify assigns a classification to a slash-separated path as git reports
// it. It is total: unmatched paths are Normal.
func Classify(path string, o Overrides) Classification {
	components := splitPath(path)
	if len(components) == 0 {
		return Normal
	}
	base := components[len(components)-1]

	for _, r := range rules {
		if r.matches(components, base) {
			if r.overridden(o) {
				return Normal
			}
			return r.class
		}
	}
	return Normal
}

func splitPath(path string) []string {
	var components []string
	for _, c := range strings.Split(path, "/") {
		if c != "" {
			components = append(components, c)
		}
	}
	return components
}

func matchesSecret(_ []string, base string) bool {
	if base == ".env" || strings.HasPrefix(base, ".env.") {
		return true
	}
	for _, name := range secretNames {
		if base == name {
			return true
		}
	}
	for _, name := range sshKeyNames {
		if base == name {
			return true
		}
	}
	return false
}

func matchesDependencyFolder(components []string, _ string) bool {
	for _, c := range components {
		for _, folder := range dependencyFolders {
			if c == folder {
				return true
			}
		}
	}
	return false
}

func matchesArtifact(_ []string, base string) bool {
	for _, name := range artifactNames {
		if base == name {
			return true
		}
	}
	for _, suffix := range artifactSuffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return false
}
