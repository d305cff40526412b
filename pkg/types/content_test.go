package types

import "testing"

func TestAllContentTypesValid(t *testing.T) {
	if len(AllContentTypes) != 6 {
		t.Fatalf("expected 6 content types, got %d", len(AllContentTypes))
	}
	for _, ct := range AllContentTypes {
		if !ct.Valid() {
			t.Fatalf("%q not valid", ct)
		}
		if ct.Description() == "" {
			t.Fatalf("%q has no description", ct)
		}
	}
}

func TestUnknownContentTypeInvalid(t *testing.T) {
	if ContentType("poem").Valid() {
		t.Fatalf("unknown type reported valid")
	}
	if ContentType("").Valid() {
		t.Fatalf("empty type reported valid")
	}
}

func TestLabel(t *testing.T) {
	if got := ContentDefinition.Label(); got != "Definition" {
		t.Fatalf("label=%q", got)
	}
	if got := ContentType("lesson_plan").Label(); got != "Lesson Plan" {
		t.Fatalf("label=%q", got)
	}
}
