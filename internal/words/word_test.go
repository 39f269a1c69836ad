package words

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain word", input: "опера", want: "опера"},
		{name: "uppercase", input: "ОПЕРА", want: "опера"},
		{name: "surrounding whitespace", input: "  осень\n", want: "осень"},
		{name: "yo folds to ye", input: "полёт", want: "полет"},
		{name: "uppercase yo folds too", input: "ПОЛЁТ", want: "полет"},
		{name: "internal hyphen stripped", input: "по-лет", want: "полет"},
		{name: "internal space stripped", input: "по лет", want: "полет"},
		{name: "hard sign allowed", input: "съезд", want: "съезд"},
		{name: "too short", input: "слон", wantErr: true},
		{name: "too long", input: "словарь", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "latin letters", input: "opera", wantErr: true},
		{name: "mixed latin o", input: "oпера", wantErr: true},
		{name: "digits", input: "опер4", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Normalize(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrNotAWord) {
					t.Fatalf("Normalize(%q) error = %v, want ErrNotAWord", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) failed: %v", tt.input, err)
			}
			if w.String() != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, w, tt.want)
			}
		})
	}
}

func TestWordCompare(t *testing.T) {
	a := mustWord(t, "облик")
	b := mustWord(t, "опера")

	if a.Compare(b) >= 0 {
		t.Errorf("expected %s < %s", a, b)
	}
	if b.Compare(a) <= 0 {
		t.Errorf("expected %s > %s", b, a)
	}
	if a.Compare(a) != 0 {
		t.Errorf("expected %s == %s", a, a)
	}
}

func TestWordContainsAndCount(t *testing.T) {
	w := mustWord(t, "огонь")

	if !w.Contains('о') || !w.Contains('ь') {
		t.Errorf("%s should contain о and ь", w)
	}
	if w.Contains('а') {
		t.Errorf("%s should not contain а", w)
	}
	if got := w.Count('о'); got != 2 {
		t.Errorf("Count(о) in %s = %d, want 2", w, got)
	}
	if got := w.Count('я'); got != 0 {
		t.Errorf("Count(я) in %s = %d, want 0", w, got)
	}
}

func mustWord(t *testing.T, s string) Word {
	t.Helper()
	w, err := Normalize(s)
	if err != nil {
		t.Fatalf("Normalize(%q) failed: %v", s, err)
	}
	return w
}
