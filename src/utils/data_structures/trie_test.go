package datastructures_test

import (
	"testing"

	datastructures "github.com/mgowdara/school_timetable_bot/src/utils/data_structures"
)

func TestSearchExact(t *testing.T) {
	trie := datastructures.NewTrieNode[string]()
	trie.Insert("ref", "refdata")
	trie.Insert("grid", "grids")

	if val, ok := trie.SearchExact("ref"); !ok || val != "refdata" {
		t.Errorf(`SearchExact("ref") = %q, %v`, val, ok)
	}
	if _, ok := trie.SearchExact("re"); ok {
		t.Error(`SearchExact("re") matched a non-inserted prefix`)
	}
	if _, ok := trie.SearchExact("refx"); ok {
		t.Error(`SearchExact("refx") matched beyond the stored key`)
	}
}

func TestSearchLongestPrefix(t *testing.T) {
	trie := datastructures.NewTrieNode[string]()
	trie.Insert("confirm", "confirmations")
	trie.Insert("ref", "refdata")

	if val := trie.Search("confirm|token|yes"); val != "confirmations" {
		t.Errorf(`Search = %q, want "confirmations"`, val)
	}
	if val := trie.Search("ref|classroom|add|0"); val != "refdata" {
		t.Errorf(`Search = %q, want "refdata"`, val)
	}
	if val := trie.Search("arch|week.xlsx"); val != "" {
		t.Errorf(`Search on an unregistered prefix = %q, want ""`, val)
	}
}

func TestEmptyKeySurvivesLaterInserts(t *testing.T) {
	trie := datastructures.NewTrieNode[string]()
	trie.Insert("", "idle")
	trie.Insert("classroom_name", "classroom")

	if val, ok := trie.SearchExact(""); !ok || val != "idle" {
		t.Errorf(`SearchExact("") = %q, %v, want "idle", true`, val, ok)
	}
	if val, ok := trie.SearchExact("classroom_name"); !ok || val != "classroom" {
		t.Errorf(`SearchExact("classroom_name") = %q, %v`, val, ok)
	}
}
