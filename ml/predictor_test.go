package ml

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stubClassifier struct {
	label int
	err   error
	seen  []ScaledVector
}

func (s *stubClassifier) Predict(features ScaledVector) (int, error) {
	s.seen = append(s.seen, features)
	return s.label, s.err
}

type identityScaler struct{}

func (identityScaler) Transform(vector FeatureVector) ScaledVector {
	return ScaledVector(vector)
}

func defaultSpec() PhoneSpec {
	return PhoneSpec{
		BatteryPower:   1500,
		Bluetooth:      true,
		ClockSpeed:     1.5,
		FrontCamera:    5,
		FourG:          true,
		InternalMemory: 64,
		MobileDepth:    0.8,
		MobileWeight:   150,
		Cores:          4,
		PrimaryCamera:  12,
		PixelHeight:    1200,
		PixelWidth:     800,
		RAM:            4000,
		ScreenHeight:   15,
		ScreenWidth:    8,
		TalkTime:       10,
		ThreeG:         true,
		TouchScreen:    true,
		WiFi:           true,
	}
}

func minSpec() PhoneSpec {
	return PhoneSpec{
		BatteryPower:   500,
		ClockSpeed:     0.5,
		InternalMemory: 2,
		MobileDepth:    0.1,
		MobileWeight:   50,
		Cores:          1,
		RAM:            256,
		ScreenHeight:   5,
		ScreenWidth:    2,
		TalkTime:       2,
	}
}

func maxSpec() PhoneSpec {
	return PhoneSpec{
		BatteryPower:   6000,
		Bluetooth:      true,
		ClockSpeed:     3.0,
		DualSim:        true,
		FrontCamera:    20,
		FourG:          true,
		InternalMemory: 512,
		MobileDepth:    1.0,
		MobileWeight:   300,
		Cores:          8,
		PrimaryCamera:  32,
		PixelHeight:    3000,
		PixelWidth:     3000,
		RAM:            16000,
		ScreenHeight:   25,
		ScreenWidth:    15,
		TalkTime:       30,
		ThreeG:         true,
		TouchScreen:    true,
		WiFi:           true,
	}
}

func loadFixturePredictor(t *testing.T) *Predictor {
	t.Helper()
	artifacts, err := LoadArtifacts(ArtifactConfig{
		ModelPath:  filepath.Join("testdata", "model.json"),
		ScalerPath: filepath.Join("testdata", "scaler.json"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	predictor, err := NewPredictor(artifacts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return predictor
}

func TestPredictorPinnedLabels(t *testing.T) {
	predictor := loadFixturePredictor(t)

	mid := defaultSpec()
	mid.BatteryPower = 1200
	mid.PixelHeight = 600

	tests := []struct {
		name string
		spec PhoneSpec
		want CategoryID
	}{
		{name: "form defaults", spec: defaultSpec(), want: CategoryVeryHigh},
		{name: "high ram low battery low resolution", spec: mid, want: CategoryHigh},
		{name: "minimum bounds", spec: minSpec(), want: CategoryLow},
		{name: "maximum bounds", spec: maxSpec(), want: CategoryVeryHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := predictor.PredictSpec(tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got.ID)
			}
		})
	}
}

func TestPredictorFeatureOrderMatters(t *testing.T) {
	predictor := loadFixturePredictor(t)

	vector := defaultSpec().Vector()
	original, err := predictor.Predict(vector)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	battery, _ := FeatureIndex("battery_power")
	ram, _ := FeatureIndex("ram")
	swapped := vector
	swapped[battery], swapped[ram] = swapped[ram], swapped[battery]

	permuted, err := predictor.Predict(swapped)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if permuted.ID == original.ID {
		t.Fatalf("swapping battery_power and ram should change the label, both gave %s", original.ID)
	}
	if permuted.ID != CategoryMedium {
		t.Fatalf("expected medium after swap, got %s", permuted.ID)
	}
}

func TestPredictorIdempotent(t *testing.T) {
	predictor := loadFixturePredictor(t)
	vector := defaultSpec().Vector()

	first, err := predictor.Predict(vector)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := predictor.Predict(vector)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("predictions differ (-first +second):\n%s", diff)
	}
}

func TestPredictorStubLabelTwo(t *testing.T) {
	classifier := &stubClassifier{label: 2}
	predictor, err := NewPredictor(NewArtifacts(identityScaler{}, classifier))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := predictor.PredictSpec(defaultSpec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Label != "High Cost" || got.PriceRange != "$401 - $800" {
		t.Fatalf("unexpected category: %+v", got)
	}
	if len(classifier.seen) != 1 || classifier.seen[0] != ScaledVector(defaultSpec().Vector()) {
		t.Fatalf("classifier did not receive the scaled vector: %v", classifier.seen)
	}
}

func TestPredictorStubSchemaMismatch(t *testing.T) {
	predictor, err := NewPredictor(NewArtifacts(identityScaler{}, &stubClassifier{label: 7}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := predictor.PredictSpec(defaultSpec())
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected schema mismatch, got %v (category %+v)", err, got)
	}
	var mismatch *SchemaMismatchError
	if !errors.As(err, &mismatch) || mismatch.Label != 7 {
		t.Fatalf("expected label 7 in error, got %v", err)
	}
	if got != (PriceCategory{}) {
		t.Fatalf("expected no category, got %+v", got)
	}
}

func TestPredictorClassifierError(t *testing.T) {
	boom := errors.New("boom")
	predictor, err := NewPredictor(NewArtifacts(identityScaler{}, &stubClassifier{err: boom}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := predictor.PredictSpec(defaultSpec()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped classifier error, got %v", err)
	}
}

func TestNewPredictorRequiresArtifacts(t *testing.T) {
	if _, err := NewPredictor(nil); err == nil {
		t.Fatal("expected error for nil artifacts")
	}
	if _, err := NewPredictor(NewArtifacts(identityScaler{}, nil)); err == nil {
		t.Fatal("expected error for missing classifier")
	}
}
