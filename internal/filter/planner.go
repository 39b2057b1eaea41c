package filter

// Decision records the outcome for a single path.
type Decision struct {
	Path   string
	Class  Classification
	Staged bool
	Reason string
}

// ExclusionSummary groups excluded paths by classification. Paths keep the
// order they were first seen in, which is the order the report prints them.
type ExclusionSummary struct {
	groups map[Classification][]string
}

// Group is one classification's worth of exclusions, for reporting.
type Group struct {
	Class Classification
	Paths []string
}

func (s *ExclusionSummary) add(class Classification, path string) {
	if s.groups == nil {
		s.groups = make(map[Classification][]string)
	}
	s.groups[class] = append(s.groups[class], path)
}

// Paths returns the excluded paths for one classification, in first-seen order.
func (s *ExclusionSummary) Paths(class Classification) []string {
	if s == nil {
		return nil
	}
	return s.groups[class]
}

// Groups returns the non-empty groups in severity order.
func (s *ExclusionSummary) Groups() []Group {
	if s == nil {
		return nil
	}
	var out []Group
	for _, class := range []Classification{Security, DependencyFolder, BuildArtifact} {
		if paths := s.groups[class]; len(paths) > 0 {
			out = append(out, Group{Class: class, Paths: paths})
		}
	}
	return out
}

// Empty reports whether nothing was excluded.
func (s *ExclusionSummary) Empty() bool {
	return s == nil || len(s.groups) == 0
}

// StagingPlan is the planner's output: every decision in input order plus the
// grouped exclusion summary.
type StagingPlan struct {
	Decisions  []Decision
	Exclusions ExclusionSummary
}

// Plan classifies every path and marks it staged iff it is Normal. It never
// touches the filesystem or git; the orchestrator carries out the plan.
func Plan(paths []string, o Overrides) StagingPlan {
	plan := StagingPlan{}
	for _, path := range paths {
		class := Classify(path, o)
		d := Decision{
			Path:   path,
			Class:  class,
			Staged: class == Normal,
			Reason: class.Reason(),
		}
		plan.Decisions = append(plan.Decisions, d)
		if !d.Staged {
			plan.Exclusions.add(class, path)
		}
	}
	return plan
}

// ToStage returns the paths to stage, in input order.
func (p StagingPlan) ToStage() []string {
	var out []string
	for _, d := range p.Decisions {
		if d.Staged {
			out = append(out, d.Path)
		}
	}
	return out
}

// Excluded returns every excluded path, in input order.
func (p StagingPlan) Excluded() []string {
	var out []string
	for _, d := range p.Decisions {
		if !d.Staged {
			out = append(out, d.Path)
		}
	}
	return out
}
