package utils_test

import (
	"slices"
	"testing"

	"github.com/mgowdara/school_timetable_bot/src/utils"
)

func TestSplitTrimmed(t *testing.T) {
	got := utils.SplitTrimmed(" P1 , P2,, P3 ")
	want := []string{"P1", "P2", "P3"}
	if !slices.Equal(got, want) {
		t.Errorf(`SplitTrimmed = %v, want %v`, got, want)
	}

	if got := utils.SplitTrimmed("  ,, "); len(got) != 0 {
		t.Errorf(`SplitTrimmed of blanks = %v, want empty`, got)
	}
}

func TestJoinNonEmpty(t *testing.T) {
	if got := utils.JoinNonEmpty([]string{"a", "", "b"}, ", "); got != "a, b" {
		t.Errorf(`JoinNonEmpty = %q, want "a, b"`, got)
	}
}
