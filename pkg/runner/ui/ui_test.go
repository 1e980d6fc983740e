package ui

import (
	"context"
	"testing"
)

func TestUIRequiresState(t *testing.T) {
	if err := (&UI{}).Do(context.Background()); err == nil {
		t.Fatalf("expected an error without state")
	}
}
