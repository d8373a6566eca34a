package ml

// FeatureCount is the number of inputs the classifier was trained on.
const FeatureCount = 20

// FeatureVector holds one phone's attributes in training order.
// The order is fixed by FeatureNames; any permutation corrupts predictions.
type FeatureVector [FeatureCount]float64

// ScaledVector is a FeatureVector after the scaler's normalization.
type ScaledVector [FeatureCount]float64

// PhoneSpec is the named form of a FeatureVector. Field order follows the
// training order. The validate and default tags carry the bounds and
// defaults of the collecting form.
type PhoneSpec struct {
	BatteryPower   int     `json:"battery_power" validate:"gte=500,lte=6000" default:"1500"`
	Bluetooth      bool    `json:"blue" default:"true"`
	ClockSpeed     float64 `json:"clock_speed" validate:"gte=0.5,lte=3" default:"1.5"`
	DualSim        bool    `json:"dual_sim" default:"false"`
	FrontCamera    int     `json:"fc" validate:"gte=0,lte=20" default:"5"`
	FourG          bool    `json:"four_g" default:"true"`
	InternalMemory int     `json:"int_memory" validate:"gte=2,lte=512" default:"64"`
	MobileDepth    float64 `json:"m_dep" validate:"gte=0.1,lte=1" default:"0.8"`
	MobileWeight   int     `json:"mobile_wt" validate:"gte=50,lte=300" default:"150"`
	Cores          int     `json:"n_cores" validate:"gte=1,lte=8" default:"4"`
	PrimaryCamera  int     `json:"pc" validate:"gte=0,lte=32" default:"12"`
	PixelHeight    int     `json:"px_height" validate:"gte=0,lte=3000" default:"1200"`
	PixelWidth     int     `json:"px_width" validate:"gte=0,lte=3000" default:"800"`
	RAM            int     `json:"ram" validate:"gte=256,lte=16000" default:"4000"`
	ScreenHeight   int     `json:"sc_h" validate:"gte=5,lte=25" default:"15"`
	ScreenWidth    int     `json:"sc_w" validate:"gte=2,lte=15" default:"8"`
	TalkTime       int     `json:"talk_time" validate:"gte=2,lte=30" default:"10"`
	ThreeG         bool    `json:"three_g" default:"true"`
	TouchScreen    bool    `json:"touch_screen" default:"true"`
	WiFi           bool    `json:"wifi" default:"true"`
}

// Vector assembles the spec into the classifier's feature order.
func (s PhoneSpec) Vector() FeatureVector {
	return FeatureVector{
		float64(s.BatteryPower),
		boolFeature(s.Bluetooth),
		s.ClockSpeed,
		boolFeature(s.DualSim),
		float64(s.FrontCamera),
		boolFeature(s.FourG),
		float64(s.InternalMemory),
		s.MobileDepth,
		float64(s.MobileWeight),
		float64(s.Cores),
		float64(s.PrimaryCamera),
		float64(s.PixelHeight),
		float64(s.PixelWidth),
		float64(s.RAM),
		float64(s.ScreenHeight),
		float64(s.ScreenWidth),
		float64(s.TalkTime),
		boolFeature(s.ThreeG),
		boolFeature(s.TouchScreen),
		boolFeature(s.WiFi),
	}
}

// FeatureNames returns the training-time column names in vector order.
func FeatureNames() []string {
	return []string{
		"battery_power",
		"blue",
		"clock_speed",
		"dual_sim",
		"fc",
		"four_g",
		"int_memory",
		"m_dep",
		"mobile_wt",
		"n_cores",
		"pc",
		"px_height",
		"px_width",
		"ram",
		"sc_h",
		"sc_w",
		"talk_time",
		"three_g",
		"touch_screen",
		"wifi",
	}
}

// FeatureIndex returns the vector position of a named feature.
func FeatureIndex(name string) (int, bool) {
	for i, n := range FeatureNames() {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

func boolFeature(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
