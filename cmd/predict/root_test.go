package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"phoneprice/form"
	"phoneprice/ml"
)

func fixtureArgs(args ...string) []string {
	base := []string{
		"--config", filepath.Join("testdata", "missing.yaml"),
		"--model", filepath.Join("..", "..", "ml", "testdata", "model.json"),
		"--scaler", filepath.Join("..", "..", "ml", "testdata", "scaler.json"),
	}
	return append(base, args...)
}

func TestPredictCommandDefaults(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(fixtureArgs())
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := out.String()
	if !strings.HasPrefix(text, "Very High Cost ($801+)\n") {
		t.Fatalf("unexpected output:\n%s", text)
	}
	if !strings.Contains(text, "RAM: 4,000 MB") {
		t.Fatalf("expected summary in output:\n%s", text)
	}
}

func TestPredictCommandJSON(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(fixtureArgs("--json", "--ram", "256"))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var payload struct {
		Category ml.PriceCategory `json:"category"`
	}
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out.String())
	}
	if payload.Category.ID != ml.CategoryLow {
		t.Fatalf("expected low, got %+v", payload.Category)
	}
}

func TestPredictCommandRejectsOutOfRange(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{})
	cmd.SetArgs(fixtureArgs("--battery-power", "100"))
	err := cmd.Execute()
	var verrs form.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPredictCommandMissingArtifacts(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"--config", filepath.Join("testdata", "missing.yaml"),
		"--model", filepath.Join(t.TempDir(), "model.json"),
		"--scaler", filepath.Join(t.TempDir(), "scaler.json"),
	})
	if err := cmd.Execute(); !errors.Is(err, ml.ErrArtifactLoad) {
		t.Fatalf("expected artifact load error, got %v", err)
	}
}
