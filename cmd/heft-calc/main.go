// heft-calc is an offline calculator over the measurement engine: it reads
// a JSON scene (image size, labeled points, calibration) and prints the
// derived measurements and weight estimates, for checking numbers without a
// running server.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okian/heft/internal/domain/calibration"
	"github.com/okian/heft/internal/domain/estimate"
	"github.com/okian/heft/internal/domain/geom"
	"github.com/okian/heft/internal/domain/measure"
)

// scene mirrors the session state a client would have built interactively.
type scene struct {
	Image  geom.Size `json:"image"`
	Points struct {
		Belly      *geom.Point `json:"belly"`
		Spine      *geom.Point `json:"spine"`
		Neck       *geom.Point `json:"neck"`
		Rear       *geom.Point `json:"rear"`
		GirthLeft  *geom.Point `json:"girth_left"`
		GirthRight *geom.Point `json:"girth_right"`
	} `json:"points"`
	Calibration *struct {
		Start             geom.Point `json:"start"`
		End               geom.Point `json:"end"`
		ReferenceLengthCm float64    `json:"reference_length_cm"`
	} `json:"calibration"`
	ScaleCmPerPx float64 `json:"scale_cm_per_px"`
	Breed        string  `json:"breed"`
	Condition    string  `json:"condition"`
}

type result struct {
	ScaleCmPerPx       float64 `json:"scale_cm_per_px"`
	HeightCm           float64 `json:"height_cm"`
	LengthCm           float64 `json:"length_cm"`
	GirthCm            float64 `json:"girth_cm"`
	LiveWeightKg       float64 `json:"live_weight_kg"`
	MeatYieldKg        float64 `json:"meat_yield_kg"`
	DressingPercentage float64 `json:"dressing_percentage"`
}

var scenePath string

var rootCmd = &cobra.Command{
	Use:   "heft-calc",
	Short: "Offline livestock measurement calculator",
	Long:  "Computes body measurements and weight estimates from a JSON scene file, using the same engine as the heft service.",
}

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Compute measurements and estimates for a scene",
	RunE:  runMeasure,
}

var breedsCmd = &cobra.Command{
	Use:   "breeds",
	Short: "List breeds, conditions, and their dressing percentages",
	RunE:  runBreeds,
}

func init() {
	measureCmd.Flags().StringVar(&scenePath, "scene", "scene.json", "path to the scene JSON file")
	rootCmd.AddCommand(measureCmd)
	rootCmd.AddCommand(breedsCmd)
}

func runMeasure(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(scenePath)
	if err != nil {
		return fmt.Errorf("failed to read scene: %w", err)
	}
	var sc scene
	if err := json.Unmarshal(data, &sc); err != nil {
		return fmt.Errorf("failed to parse scene: %w", err)
	}

	scale := sc.ScaleCmPerPx
	if scale <= 0 {
		scale = calibration.DefaultScale
	}
	if sc.Calibration != nil {
		ref := calibration.ClampReferenceLength(sc.Calibration.ReferenceLengthCm)
		scale = calibration.Scale(sc.Calibration.Start, sc.Calibration.End, ref, scale)
	}

	res := result{ScaleCmPerPx: scale}
	if sc.Points.Spine != nil && sc.Points.Belly != nil {
		res.HeightCm = measure.Height(*sc.Points.Spine, *sc.Points.Belly, scale)
	}
	if sc.Points.Neck != nil && sc.Points.Rear != nil {
		res.LengthCm = measure.Length(*sc.Points.Neck, *sc.Points.Rear, scale)
	}
	if sc.Points.Spine != nil && sc.Points.Belly != nil && sc.Points.GirthLeft != nil && sc.Points.GirthRight != nil {
		res.GirthCm = measure.Girth(*sc.Points.Spine, *sc.Points.Belly, *sc.Points.GirthLeft, *sc.Points.GirthRight, scale)
	}

	breed := estimate.OtherBreed
	if sc.Breed != "" {
		if breed, err = estimate.ParseBreed(sc.Breed); err != nil {
			return err
		}
	}
	condition := estimate.Average
	if sc.Condition != "" {
		if condition, err = estimate.ParseCondition(sc.Condition); err != nil {
			return err
		}
	}

	res.LiveWeightKg = estimate.LiveWeightKg(res.GirthCm, res.LengthCm)
	res.MeatYieldKg = estimate.MeatYieldKg(res.GirthCm, res.LengthCm, breed, condition)
	res.DressingPercentage = estimate.DressingPercentage(breed, condition)

	output, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

func runBreeds(cmd *cobra.Command, args []string) error {
	table := make(map[string]map[string]float64)
	for _, b := range estimate.Breeds() {
		row := make(map[string]float64)
		for _, c := range estimate.Conditions() {
			row[c.String()] = estimate.DressingPercentage(b, c)
		}
		table[b.String()] = row
	}

	output, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
