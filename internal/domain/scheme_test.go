package domain

import (
	"fmt"
	"testing"
)

func TestSchemeRender_Pipeline(t *testing.T) {
	tests := []struct {
		name   string
		scheme Scheme
		path   string
		index  int
		want   string
	}{
		{
			name:   "identity scheme keeps the name",
			scheme: Scheme{},
			path:   "/photos/IMG_0001.jpg",
			want:   "IMG_0001.jpg",
		},
		{
			name:   "prefix and suffix wrap the base name",
			scheme: Scheme{Prefix: "trip_", Suffix: "_edited"},
			path:   "/photos/beach.jpg",
			want:   "trip_beach_edited.jpg",
		},
		{
			name:   "find replace on the base name only",
			scheme: Scheme{Find: "IMG", Replace: "vacation"},
			path:   "/photos/IMG_0001.jpg",
			want:   "vacation_0001.jpg",
		},
		{
			name:   "empty find is a no-op",
			scheme: Scheme{Replace: "x"},
			path:   "/photos/beach.jpg",
			want:   "beach.jpg",
		},
		{
			name:   "find replace runs before prefix so the prefix is untouched",
			scheme: Scheme{Find: "a", Replace: "o", Prefix: "la_"},
			path:   "/photos/banana.txt",
			want:   "la_bonono.txt",
		},
		{
			name:   "lower case keeps the extension",
			scheme: Scheme{Case: CaseLower},
			path:   "/photos/HOLIDAY.JPG",
			want:   "holiday.JPG",
		},
		{
			name:   "upper case",
			scheme: Scheme{Case: CaseUpper},
			path:   "/photos/beach.jpg",
			want:   "BEACH.jpg",
		},
		{
			name:   "title case preserves the original extension",
			scheme: Scheme{Case: CaseTitle},
			path:   "/photos/my_photo.JPG",
			want:   "My_Photo.JPG",
		},
		{
			name:   "title case lowers connective words in the interior",
			scheme: Scheme{Case: CaseTitle},
			path:   "/docs/day at the beach.txt",
			want:   "Day at the Beach.txt",
		},
		{
			name:   "template replaces the base but keeps the extension",
			scheme: Scheme{NameTemplate: "holiday"},
			path:   "/photos/IMG_0001.jpg",
			want:   "holiday.jpg",
		},
		{
			name:   "template with its own extension overrides the original",
			scheme: Scheme{NameTemplate: "holiday.png"},
			path:   "/photos/IMG_0001.jpg",
			want:   "holiday.png",
		},
		{
			name: "numbering suffix with separator",
			scheme: Scheme{
				NameTemplate: "photo",
				Number:       Numbering{Enabled: true, Padding: 2, Start: 1, Step: 1, Separator: "_"},
			},
			path:  "/photos/IMG_0001.jpg",
			index: 0,
			want:  "photo_01.jpg",
		},
		{
			name: "numbering prefix position",
			scheme: Scheme{
				Number: Numbering{Enabled: true, Padding: 3, Start: 10, Step: 5, Position: NumberPrefix, Separator: "-"},
			},
			path:  "/photos/beach.jpg",
			index: 2,
			want:  "020-beach.jpg",
		},
		{
			name: "every rule composed in pipeline order",
			scheme: Scheme{
				Prefix:  "trip_",
				Find:    "IMG",
				Replace: "shot",
				Case:    CaseLower,
				Number:  Numbering{Enabled: true, Padding: 2, Start: 1, Step: 1, Separator: "_"},
			},
			path:  "/photos/IMG_A.JPG",
			index: 4,
			want:  "trip_shot_a_05.JPG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.scheme.Render(tt.path, tt.index)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSchemeRender_Deterministic(t *testing.T) {
	scheme := Scheme{
		Prefix: "p_",
		Case:   CaseTitle,
		Number: Numbering{Enabled: true, Padding: 3, Start: 7, Step: 3, Separator: "-"},
	}

	first, err := scheme.Render("/photos/some_photo.jpg", 11)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := scheme.Render("/photos/some_photo.jpg", 11)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if again != first {
			t.Fatalf("identical inputs produced %q then %q", first, again)
		}
	}
}

func TestSchemeRender_NumberingSequence(t *testing.T) {
	scheme := Scheme{
		NameTemplate: "img",
		Number:       Numbering{Enabled: true, Padding: 3, Start: 1, Step: 1, Separator: "_"},
	}

	for index := 0; index <= 10; index++ {
		got, err := scheme.Render("/photos/whatever.jpg", index)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		want := fmt.Sprintf("img_%03d.jpg", index+1)
		if got != want {
			t.Errorf("index %d: expected %q, got %q", index, want, got)
		}
	}
}

func TestFormatNumber_WidensBeyondPadding(t *testing.T) {
	tests := []struct {
		n, width int
		want     string
	}{
		{1, 3, "001"},
		{11, 3, "011"},
		{1000, 3, "1000"},
		{7, 0, "7"},
		{5, 1, "5"},
	}

	for _, tt := range tests {
		if got := formatNumber(tt.n, tt.width); got != tt.want {
			t.Errorf("formatNumber(%d, %d): expected %q, got %q", tt.n, tt.width, tt.want, got)
		}
	}
}

func TestSchemeValidate(t *testing.T) {
	tests := []struct {
		name    string
		scheme  Scheme
		wantErr bool
	}{
		{"zero value is valid", Scheme{}, false},
		{"preserve case is valid", Scheme{Case: CasePreserve}, false},
		{"unknown case option", Scheme{Case: "camel"}, true},
		{"negative padding", Scheme{Number: Numbering{Padding: -1}}, true},
		{"negative start", Scheme{Number: Numbering{Start: -1}}, true},
		{"negative step", Scheme{Number: Numbering{Step: -2}}, true},
		{"unknown number position", Scheme{Number: Numbering{Position: "middle"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scheme.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSchemeRender_InvalidSchemeRefused(t *testing.T) {
	scheme := Scheme{Case: "camel"}
	if _, err := scheme.Render("/photos/a.jpg", 0); err == nil {
		t.Fatal("expected error for unrecognized case option")
	}
}

func TestTitleCase_Apostrophe(t *testing.T) {
	if got := titleCase("o'connor family-reunion"); got != "O'Connor Family-Reunion" {
		t.Errorf("got %q", got)
	}
}
