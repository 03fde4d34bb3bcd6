package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestLogicalUnitIDIsStable(t *testing.T) {
	lessonId := uuid.MustParse("3f1a0b7e-92c4-4a1d-8f6e-d2b5c9a01234")

	first := LogicalUnitID("Travel", lessonId, "Booking a Hotel Room")
	second := LogicalUnitID("Travel", lessonId, "Booking a Hotel Room")

	if first != second {
		t.Fatalf("same unit derived two ids: %s vs %s", first, second)
	}
}

func TestLogicalUnitIDNormalizesCategoryAndTitle(t *testing.T) {
	lessonId := uuid.New()

	base := LogicalUnitID("travel", lessonId, "booking a hotel room")

	variants := []struct {
		category string
		title    string
	}{
		{"Travel", "Booking a Hotel Room"},
		{"TRAVEL", "Booking   a   Hotel Room"},
		{"travel", "Booking a Hotel Room!"},
		{"travel", "  booking a hotel room  "},
	}
	for _, v := range variants {
		if got := LogicalUnitID(v.category, lessonId, v.title); got != base {
			t.Errorf("(%q, %q) derived %s, want %s", v.category, v.title, got, base)
		}
	}
}

func TestLogicalUnitIDDistinguishesUnits(t *testing.T) {
	lessonA := uuid.New()
	lessonB := uuid.New()

	tests := []struct {
		name string
		a, b uuid.UUID
	}{
		{
			name: "different lessons",
			a:    LogicalUnitID("travel", lessonA, "At the Airport"),
			b:    LogicalUnitID("travel", lessonB, "At the Airport"),
		},
		{
			name: "different titles",
			a:    LogicalUnitID("travel", lessonA, "At the Airport"),
			b:    LogicalUnitID("travel", lessonA, "At the Hotel"),
		},
		{
			name: "different categories",
			a:    LogicalUnitID("travel", lessonA, "Small Talk"),
			b:    LogicalUnitID("business", lessonA, "Small Talk"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.a == tt.b {
				t.Errorf("distinct units collided on %s", tt.a)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Booking a Hotel Room", "booking-a-hotel-room"},
		{"  At the Airport!  ", "at-the-airport"},
		{"Café & Restaurant", "caf-restaurant"},
		{"already-slugged", "already-slugged"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
