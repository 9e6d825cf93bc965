package schedule

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SubjectLoad is one row of the per-classroom load summary.
type SubjectLoad struct {
	SubjectName string
	Count       int
}

// SubjectLoads tallies how many times each subject occurs in the classroom's
// entries. Rows come out sorted by subject name, ascending.
func SubjectLoads(entries []Entry, className string) []SubjectLoad {
	counts := map[string]int{}
	for i := range entries {
		if entries[i].ClassroomName != className || entries[i].SubjectName == "" {
			continue
		}
		counts[entries[i].SubjectName]++
	}
	return LoadsFromCounts(counts)
}

// LoadsFromCounts shapes a subject-count mapping (local or the server-side
// aggregate) into display order. Subject names carry diacritics, so ordering
// goes through a collator instead of byte comparison.
func LoadsFromCounts(counts map[string]int) []SubjectLoad {
	loads := make([]SubjectLoad, 0, len(counts))
	for subject, count := range counts {
		loads = append(loads, SubjectLoad{SubjectName: subject, Count: count})
	}
	collator := collate.New(language.Und, collate.IgnoreCase)
	sort.Slice(loads, func(i, j int) bool {
		return collator.CompareString(loads[i].SubjectName, loads[j].SubjectName) < 0
	})
	return loads
}

// TotalLoad is the sum of all counts, which must equal the number of the
// classroom's entries for the same week.
func TotalLoad(loads []SubjectLoad) int {
	total := 0
	for _, load := range loads {
		total += load.Count
	}
	return total
}
