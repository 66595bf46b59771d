package handlers

import (
	"reflect"
	"testing"

	"securereq/internal/models"
)

func TestInvalidEventTypesAcceptsKnownEvents(t *testing.T) {
	if got := invalidEventTypes(models.ValidEventTypes); got != nil {
		t.Errorf("registrable events flagged as invalid: %v", got)
	}
	if got := invalidEventTypes([]string{models.EventAnalysisCompleted}); got != nil {
		t.Errorf("single valid event flagged as invalid: %v", got)
	}
}

func TestInvalidEventTypesRejectsUnknownEvents(t *testing.T) {
	got := invalidEventTypes([]string{
		models.EventAnalysisCompleted,
		"project.deleted",
		"story.created",
	})
	want := []string{"project.deleted", "story.created"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("invalid events = %v, want %v", got, want)
	}
}

func TestInvalidEventTypesEmptyList(t *testing.T) {
	if got := invalidEventTypes(nil); got != nil {
		t.Errorf("empty subscription list produced invalid entries: %v", got)
	}
}
