package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"phoneprice/config"
	"phoneprice/form"
	"phoneprice/ml"
)

type options struct {
	configPath string
	modelPath  string
	scalerPath string
	jsonOutput bool
	spec       ml.PhoneSpec
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{spec: form.Defaults()}

	cmd := &cobra.Command{
		Use:   "phoneprice-predict",
		Short: "Predict the price category of a phone from its specifications",
		Long: `phoneprice-predict runs one prediction against the configured model and
scaler artifacts. Every specification flag defaults to the form default.

Exit status is 2 when an input is out of range and 1 on any other failure.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, out)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "config.yaml", "path to the YAML config file")
	cmd.Flags().StringVar(&opts.modelPath, "model", "", "model artifact (overrides config)")
	cmd.Flags().StringVar(&opts.scalerPath, "scaler", "", "scaler artifact (overrides config)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "print JSON instead of text")
	bindSpecFlags(cmd, &opts.spec)
	return cmd
}

func bindSpecFlags(cmd *cobra.Command, spec *ml.PhoneSpec) {
	f := cmd.Flags()
	f.IntVar(&spec.BatteryPower, "battery-power", spec.BatteryPower, "battery capacity (mAh)")
	f.BoolVar(&spec.Bluetooth, "blue", spec.Bluetooth, "has Bluetooth")
	f.Float64Var(&spec.ClockSpeed, "clock-speed", spec.ClockSpeed, "processor clock speed (GHz)")
	f.BoolVar(&spec.DualSim, "dual-sim", spec.DualSim, "supports dual SIM")
	f.IntVar(&spec.FrontCamera, "fc", spec.FrontCamera, "front camera (MP)")
	f.BoolVar(&spec.FourG, "four-g", spec.FourG, "supports 4G")
	f.IntVar(&spec.InternalMemory, "int-memory", spec.InternalMemory, "internal memory (GB)")
	f.Float64Var(&spec.MobileDepth, "m-dep", spec.MobileDepth, "mobile depth (cm)")
	f.IntVar(&spec.MobileWeight, "mobile-wt", spec.MobileWeight, "mobile weight (g)")
	f.IntVar(&spec.Cores, "n-cores", spec.Cores, "processor cores")
	f.IntVar(&spec.PrimaryCamera, "pc", spec.PrimaryCamera, "primary camera (MP)")
	f.IntVar(&spec.PixelHeight, "px-height", spec.PixelHeight, "pixel resolution height")
	f.IntVar(&spec.PixelWidth, "px-width", spec.PixelWidth, "pixel resolution width")
	f.IntVar(&spec.RAM, "ram", spec.RAM, "RAM (MB)")
	f.IntVar(&spec.ScreenHeight, "sc-h", spec.ScreenHeight, "screen height (cm)")
	f.IntVar(&spec.ScreenWidth, "sc-w", spec.ScreenWidth, "screen width (cm)")
	f.IntVar(&spec.TalkTime, "talk-time", spec.TalkTime, "talk time (hours)")
	f.BoolVar(&spec.ThreeG, "three-g", spec.ThreeG, "supports 3G")
	f.BoolVar(&spec.TouchScreen, "touch-screen", spec.TouchScreen, "has a touch screen")
	f.BoolVar(&spec.WiFi, "wifi", spec.WiFi, "has WiFi")
}

func run(opts *options, out io.Writer) error {
	if err := form.Validate(opts.spec); err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	artifactCfg := ml.ArtifactConfig{ModelPath: cfg.Model.ModelPath, ScalerPath: cfg.Model.ScalerPath}
	if opts.modelPath != "" {
		artifactCfg.ModelPath = opts.modelPath
	}
	if opts.scalerPath != "" {
		artifactCfg.ScalerPath = opts.scalerPath
	}

	artifacts, err := ml.LoadArtifacts(artifactCfg)
	if err != nil {
		return err
	}
	predictor, err := ml.NewPredictor(artifacts)
	if err != nil {
		return err
	}
	category, err := predictor.PredictSpec(opts.spec)
	if err != nil {
		return err
	}

	summary := form.Summarize(opts.spec)
	if opts.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Category ml.PriceCategory `json:"category"`
			Summary  form.Summary     `json:"summary"`
		}{category, summary})
	}

	fmt.Fprintf(out, "%s (%s)\n%s\n\n%s", category.Label, category.PriceRange, category.Description, summary)
	return nil
}
