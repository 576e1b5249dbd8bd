package services_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"olist/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	underlying := os.ErrNotExist
	err := services.Wrap(services.ErrNotFound, "clean-orders", "load", "orders", underlying)

	if !errors.Is(err, services.ErrNotFound) {
		t.Fatal("marker not preserved")
	}
	if !errors.Is(err, underlying) {
		t.Fatal("underlying error not preserved")
	}
	msg := err.Error()
	for _, part := range []string{"clean-orders", "load", "orders"} {
		if !strings.Contains(msg, part) {
			t.Fatalf("message %q missing %q", msg, part)
		}
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatal("nil marker should default to ErrTransient")
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestContextFields(t *testing.T) {
	ctx := context.Background()
	if _, ok := services.RunIDFromContext(ctx); ok {
		t.Fatal("unexpected run id on empty context")
	}

	ctx = services.WithRunID(ctx, "run-1")
	ctx = services.WithStage(ctx, "clean-orders")
	ctx = services.WithDataset(ctx, "orders")

	if runID, ok := services.RunIDFromContext(ctx); !ok || runID != "run-1" {
		t.Fatalf("run id = %q ok = %v", runID, ok)
	}
	if stage, ok := services.StageFromContext(ctx); !ok || stage != "clean-orders" {
		t.Fatalf("stage = %q ok = %v", stage, ok)
	}
	if ds, ok := services.DatasetFromContext(ctx); !ok || ds != "orders" {
		t.Fatalf("dataset = %q ok = %v", ds, ok)
	}
}
