package countries

import (
	"strings"
	"testing"
)

func TestDefaultEntries(t *testing.T) {
	entries, err := DefaultEntries()
	if err != nil {
		t.Fatalf("DefaultEntries: %v", err)
	}
	if len(entries) < 100 {
		t.Fatalf("expected a substantial country list, got %d entries", len(entries))
	}
	if entries[0].Name != "United Kingdom" || entries[0].Nationality != "British" {
		t.Fatalf("expected the United Kingdom pinned first, got %+v", entries[0])
	}
}

func TestDefaultEntriesReturnsCopies(t *testing.T) {
	first, err := DefaultEntries()
	if err != nil {
		t.Fatalf("DefaultEntries: %v", err)
	}
	first[0].Name = "mutated"

	second, err := DefaultEntries()
	if err != nil {
		t.Fatalf("DefaultEntries: %v", err)
	}
	if second[0].Name == "mutated" {
		t.Fatal("callers must not be able to mutate the shared list")
	}
}

func TestLoadEntriesParsesAndSkipsComments(t *testing.T) {
	input := strings.NewReader("# comment\nFrance|French\n\nJapan|Japanese\n")

	entries, err := LoadEntries(input)
	if err != nil {
		t.Fatalf("LoadEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].Name != "Japan" || entries[1].Nationality != "Japanese" {
		t.Fatalf("entry mismatch: %+v", entries[1])
	}
}

func TestLoadEntriesFallsBackToNameAsNationality(t *testing.T) {
	entries, err := LoadEntries(strings.NewReader("France\n"))
	if err != nil {
		t.Fatalf("LoadEntries: %v", err)
	}
	if entries[0].Nationality != "France" {
		t.Fatalf("expected name reused as nationality, got %+v", entries[0])
	}
}

func TestLoadEntriesRejectsEmptyList(t *testing.T) {
	if _, err := LoadEntries(strings.NewReader("# only comments\n")); err == nil {
		t.Fatal("expected error for an empty list")
	}
}

func TestNamesAndNationalities(t *testing.T) {
	names, err := Names()
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	nationalities, err := Nationalities()
	if err != nil {
		t.Fatalf("Nationalities: %v", err)
	}
	if len(names) != len(nationalities) {
		t.Fatalf("lists out of step: %d names, %d nationalities", len(names), len(nationalities))
	}
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			t.Fatal("blank country name in list")
		}
	}
}
