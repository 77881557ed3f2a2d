package vocab

import (
	"os"
	"path/filepath"
	"testing"
)

type recordingAdder struct {
	words []string
}

func (r *recordingAdder) AddWord(word string) {
	r.words = append(r.words, word)
}

func writeVocab(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "queries.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing vocab file: %v", err)
	}
	return path
}

func TestLoadPlainLines(t *testing.T) {
	path := writeVocab(t, "cat\ncar\n  cart  \n\ndog\n")

	adder := &recordingAdder{}
	stats, err := NewLoader(path, 0).Load(adder)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []string{"cat", "car", "cart", "dog"}
	if len(adder.words) != len(want) {
		t.Fatalf("loaded %v, want %v", adder.words, want)
	}
	for i, w := range want {
		if adder.words[i] != w {
			t.Errorf("word %d = %q, want %q", i, adder.words[i], w)
		}
	}
	if stats.Inserted != 4 || stats.Skipped != 1 {
		t.Errorf("stats = %+v, want 4 inserted, 1 skipped", stats)
	}
}

func TestLoadCountField(t *testing.T) {
	path := writeVocab(t, "cat,3\ncar\n")

	adder := &recordingAdder{}
	stats, err := NewLoader(path, 0).Load(adder)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if stats.Inserted != 4 {
		t.Errorf("Inserted = %d, want 4", stats.Inserted)
	}
	catCount := 0
	for _, w := range adder.words {
		if w == "cat" {
			catCount++
		}
	}
	if catCount != 3 {
		t.Errorf("\"cat\" inserted %d times, want 3", catCount)
	}
}

func TestLoadKeepsCommaBearingTerms(t *testing.T) {
	// a trailing field that is not a positive integer belongs to the term
	testCases := []struct {
		line string
		want string
	}{
		{"hello, world", "hello, world"},
		{"cat,-2", "cat,-2"},
		{"cat,0", "cat,0"},
		{"1,2,3,abc", "1,2,3,abc"},
	}

	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			path := writeVocab(t, tc.line+"\n")
			adder := &recordingAdder{}
			if _, err := NewLoader(path, 0).Load(adder); err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(adder.words) != 1 || adder.words[0] != tc.want {
				t.Errorf("loaded %v, want [%q]", adder.words, tc.want)
			}
		})
	}
}

func TestLoadEntryCap(t *testing.T) {
	path := writeVocab(t, "a\nb\nc\nd\ne\n")

	adder := &recordingAdder{}
	stats, err := NewLoader(path, 3).Load(adder)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if stats.Lines != 3 || len(adder.words) != 3 {
		t.Errorf("cap ignored: stats %+v, words %v", stats, adder.words)
	}
}

func TestLoadMissingFile(t *testing.T) {
	adder := &recordingAdder{}
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.csv"), 0).Load(adder)
	if err == nil {
		t.Fatal("expected error for missing vocabulary file")
	}
	if len(adder.words) != 0 {
		t.Errorf("adder received words despite error: %v", adder.words)
	}
}
