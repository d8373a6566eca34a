package form

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"phoneprice/ml"
)

func TestFieldsFollowFeatureOrder(t *testing.T) {
	fields := Fields()
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	if diff := cmp.Diff(ml.FeatureNames(), keys); diff != "" {
		t.Fatalf("fields out of feature order (-want +got):\n%s", diff)
	}

	total := 0
	for _, g := range Groups() {
		total += len(g.Fields)
	}
	if total != ml.FeatureCount {
		t.Fatalf("expected %d grouped fields, got %d", ml.FeatureCount, total)
	}
}

// The struct tags on ml.PhoneSpec drive validation and defaults; they must
// agree with the declarations a client renders.
func TestDeclarationsMatchSpecTags(t *testing.T) {
	typ := reflect.TypeOf(ml.PhoneSpec{})
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		key := strings.Split(sf.Tag.Get("json"), ",")[0]
		decl, ok := Lookup(key)
		if !ok {
			t.Fatalf("no declaration for %s", key)
		}

		if sf.Type.Kind() == reflect.Bool {
			if decl.Kind != KindBoolean {
				t.Fatalf("%s: expected boolean declaration", key)
			}
			want := sf.Tag.Get("default") == "true"
			if (decl.Default == 1) != want {
				t.Fatalf("%s: default mismatch", key)
			}
			continue
		}

		def, err := strconv.ParseFloat(sf.Tag.Get("default"), 64)
		if err != nil || def != decl.Default {
			t.Fatalf("%s: default tag %q, declared %v", key, sf.Tag.Get("default"), decl.Default)
		}
		var lo, hi float64
		for _, rule := range strings.Split(sf.Tag.Get("validate"), ",") {
			name, param, _ := strings.Cut(rule, "=")
			v, err := strconv.ParseFloat(param, 64)
			if err != nil {
				t.Fatalf("%s: bad rule %q", key, rule)
			}
			switch name {
			case "gte":
				lo = v
			case "lte":
				hi = v
			}
		}
		if lo != decl.Min || hi != decl.Max {
			t.Fatalf("%s: tags [%v, %v], declared [%v, %v]", key, lo, hi, decl.Min, decl.Max)
		}
	}
}

func TestDefaults(t *testing.T) {
	spec := Defaults()
	if spec.BatteryPower != 1500 || spec.RAM != 4000 || spec.ClockSpeed != 1.5 || spec.MobileDepth != 0.8 {
		t.Fatalf("unexpected defaults: %+v", spec)
	}
	if !spec.Bluetooth || spec.DualSim || !spec.TouchScreen {
		t.Fatalf("unexpected boolean defaults: %+v", spec)
	}
	if err := Validate(spec); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestValidateBounds(t *testing.T) {
	low := ml.PhoneSpec{
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
	if err := Validate(low); err != nil {
		t.Fatalf("minimum bounds should validate: %v", err)
	}

	spec := Defaults()
	spec.BatteryPower = 499
	spec.RAM = 16001
	spec.ClockSpeed = 3.1
	err := Validate(spec)

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	got := make(map[string]FieldError)
	for _, fe := range verrs {
		got[fe.Field] = fe
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 field errors, got %+v", verrs)
	}
	if fe := got["battery_power"]; fe.Code != "ERR_GTE" || fe.Min != 500 || fe.Message != "Battery Power must be at least 500" {
		t.Fatalf("unexpected battery error: %+v", fe)
	}
	if fe := got["ram"]; fe.Code != "ERR_LTE" || fe.Max != 16000 {
		t.Fatalf("unexpected ram error: %+v", fe)
	}
	if _, ok := got["clock_speed"]; !ok {
		t.Fatalf("expected clock_speed error: %+v", verrs)
	}
	if !strings.HasPrefix(err.Error(), "invalid input: ") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(Defaults())
	want := Summary{Sections: []SummarySection{
		{Title: "Performance", Items: []SummaryItem{
			{Label: "RAM", Value: "4,000 MB"},
			{Label: "Processor", Value: "4 cores @ 1.5 GHz"},
			{Label: "Storage", Value: "64 GB"},
		}},
		{Title: "Camera & Display", Items: []SummaryItem{
			{Label: "Primary Camera", Value: "12 MP"},
			{Label: "Front Camera", Value: "5 MP"},
			{Label: "Resolution", Value: "800 x 1,200"},
		}},
	}}
	if diff := cmp.Diff(want, summary); diff != "" {
		t.Fatalf("unexpected summary (-want +got):\n%s", diff)
	}
	if !strings.Contains(summary.String(), "  - RAM: 4,000 MB\n") {
		t.Fatalf("unexpected text summary:\n%s", summary.String())
	}
}
