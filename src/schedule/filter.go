package schedule

// Filter is up to three equality predicates over the normalized entries.
// Empty fields impose no constraint.
type Filter struct {
	ClassroomName string
	TeacherName   string
	SubjectName   string
}

func (f Filter) IsEmpty() bool {
	return f.ClassroomName == "" && f.TeacherName == "" && f.SubjectName == ""
}

func (f Filter) matches(entry *Entry) bool {
	if f.ClassroomName != "" && entry.ClassroomName != f.ClassroomName {
		return false
	}
	if f.TeacherName != "" && entry.TeacherName != f.TeacherName {
		return false
	}
	if f.SubjectName != "" && entry.SubjectName != f.SubjectName {
		return false
	}
	return true
}

// Apply returns a fresh slice of the entries satisfying every active
// predicate, keeping the input order. The input is never mutated.
func (f Filter) Apply(entries []Entry) []Entry {
	result := make([]Entry, 0, len(entries))
	for i := range entries {
		if f.matches(&entries[i]) {
			result = append(result, entries[i])
		}
	}
	return result
}
