package catalog

import (
	"testing"
)

func filenames(stickers []Sticker) []string {
	names := make([]string, 0, len(stickers))
	for _, sticker := range stickers {
		names = append(names, sticker.Filename)
	}
	return names
}

func equalNames(got []Sticker, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, sticker := range got {
		if sticker.Filename != want[i] {
			return false
		}
	}
	return true
}

func TestFilterScenario(t *testing.T) {
	t.Parallel()

	stickers := testStickers()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "shared prefix", query: "cyber", want: []string{"a.png", "c.png"}},
		{name: "caseless", query: "CAT", want: []string{"a.png"}},
		{name: "no matches", query: "zzz", want: []string{}},
		{name: "empty query returns all", query: "", want: []string{"a.png", "b.png", "c.png"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Filter(stickers, tc.query)
			if !equalNames(got, tc.want) {
				t.Fatalf("Filter(%q) = %v, want %v", tc.query, filenames(got), tc.want)
			}
		})
	}
}

func TestFilterPreservesOrderAndSubset(t *testing.T) {
	t.Parallel()

	stickers := []Sticker{
		{Filename: "1.png", Caption: "red panda"},
		{Filename: "2.png", Caption: "panda bear"},
		{Filename: "3.png", Caption: "crab"},
		{Filename: "4.png", Caption: "giant panda"},
	}

	got := Filter(stickers, "panda")
	if !equalNames(got, []string{"1.png", "2.png", "4.png"}) {
		t.Fatalf("expected catalog order among matches, got %v", filenames(got))
	}

	// Every match must be a member of the input.
	members := make(map[string]bool, len(stickers))
	for _, sticker := range stickers {
		members[sticker.Filename] = true
	}
	for _, sticker := range got {
		if !members[sticker.Filename] {
			t.Fatalf("filter invented sticker %q", sticker.Filename)
		}
	}
}

func TestFilterMonotonicNarrowing(t *testing.T) {
	t.Parallel()

	stickers := testStickers()

	// "cyber d" extends "cyber"; its results must be a subset.
	broad := Filter(stickers, "cyber")
	narrow := Filter(stickers, "cyber d")

	broadSet := make(map[string]bool, len(broad))
	for _, sticker := range broad {
		broadSet[sticker.Filename] = true
	}
	for _, sticker := range narrow {
		if !broadSet[sticker.Filename] {
			t.Fatalf("narrowed result %q missing from broad result", sticker.Filename)
		}
	}
	if !equalNames(narrow, []string{"c.png"}) {
		t.Fatalf("Filter(\"cyber d\") = %v, want [c.png]", filenames(narrow))
	}
}

func TestFilterWhitespaceQueryIsLiteral(t *testing.T) {
	t.Parallel()

	stickers := []Sticker{
		{Filename: "a.png", Caption: "cyber cat"},
		{Filename: "b.png", Caption: "nospaceshere"},
	}

	if got := Filter(stickers, " "); !equalNames(got, []string{"a.png"}) {
		t.Fatalf("expected single-space query to match literally, got %v", filenames(got))
	}
	if got := Filter(stickers, "   "); len(got) != 0 {
		t.Fatalf("expected triple-space query to match nothing, got %v", filenames(got))
	}
}

func TestFilterEmptyCatalog(t *testing.T) {
	t.Parallel()

	if got := Filter(nil, "anything"); len(got) != 0 {
		t.Fatalf("expected empty result on empty catalog, got %v", filenames(got))
	}
}

func TestMatchesUnicodeNormalization(t *testing.T) {
	t.Parallel()

	// "café" with a combining acute accent vs the precomposed form.
	decomposed := "café sticker"
	if !Matches(decomposed, "café") {
		t.Fatal("expected decomposed caption to match precomposed query")
	}
	if !Matches("CAFÉ", "café") {
		t.Fatal("expected uppercase accented caption to match")
	}
}
