// Package analysis derives manufacturing-oriented annotations from mesh
// geometry: a 0-100 complexity score, a difficulty rating, and material,
// finish and process recommendations. These are attached to the geometry
// statistics for display and reporting; the pricing engine does not
// depend on them.
package analysis

import (
	"math"

	"github.com/piwi3910/MoldQuote/internal/geometry"
)

// Difficulty buckets a complexity score into a human-readable rating.
type Difficulty string

const (
	DifficultyLow      Difficulty = "Low"
	DifficultyMedium   Difficulty = "Medium"
	DifficultyHigh     Difficulty = "High"
	DifficultyVeryHigh Difficulty = "Very High"
)

// ComplexityMetrics holds the geometric complexity indicators of a part.
type ComplexityMetrics struct {
	SurfaceVolumeRatio float64    `json:"surface_volume_ratio"`
	Compactness        float64    `json:"compactness"`
	TriangleDensity    float64    `json:"triangle_density"`
	AverageAspectRatio float64    `json:"average_aspect_ratio"`
	Score              float64    `json:"complexity_score"` // 0-100
	Difficulty         Difficulty `json:"difficulty_rating"`
}

// Complexity computes the complexity metrics for a mesh and its stats.
// The score combines four indicators: surface/volume ratio (intricate
// parts expose more surface per unit volume), bounding-box compactness,
// triangle density, and average triangle aspect ratio.
func Complexity(m *geometry.Mesh, stats geometry.Stats) ComplexityMetrics {
	var svRatio float64
	if stats.Volume > 0 {
		svRatio = stats.Area / stats.Volume
	}

	size := stats.BoundingBox.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	minDim := math.Min(size.X, math.Min(size.Y, size.Z))
	var compactness float64
	if maxDim > 0 {
		compactness = minDim / maxDim
	}

	var density float64
	if stats.Area > 0 {
		density = float64(stats.FaceCount) / stats.Area
	}

	aspect := averageAspectRatio(m)

	score := svRatio*10 +
		(1-compactness)*50 +
		density*0.001 +
		(aspect-1)*10
	score = math.Min(100, score)

	return ComplexityMetrics{
		SurfaceVolumeRatio: svRatio,
		Compactness:        compactness,
		TriangleDensity:    density,
		AverageAspectRatio: aspect,
		Score:              score,
		Difficulty:         rating(score),
	}
}

func averageAspectRatio(m *geometry.Mesh) float64 {
	if m == nil || len(m.Triangles) == 0 {
		return 1
	}
	var sum float64
	for _, t := range m.Triangles {
		e1 := t.V2.Sub(t.V1).Length()
		e2 := t.V3.Sub(t.V2).Length()
		e3 := t.V1.Sub(t.V3).Length()
		min := math.Min(e1, math.Min(e2, e3))
		max := math.Max(e1, math.Max(e2, e3))
		if min > 0 {
			sum += max / min
		} else {
			sum += 1
		}
	}
	return sum / float64(len(m.Triangles))
}

func rating(score float64) Difficulty {
	switch {
	case score < 25:
		return DifficultyLow
	case score < 50:
		return DifficultyMedium
	case score < 75:
		return DifficultyHigh
	default:
		return DifficultyVeryHigh
	}
}

// ManufacturingReport holds process-planning annotations for a part.
type ManufacturingReport struct {
	MachiningDifficulty     Difficulty `json:"machining_difficulty"`
	EstimatedMachiningHours float64    `json:"estimated_machining_hours"`
	MaterialRecommendation  string     `json:"material_recommendation"`
	FinishRecommendation    string     `json:"finish_recommendation"`
	ProcessRecommendations  []string   `json:"process_recommendations"`
}

// Manufacturing derives a process-planning report from the complexity
// metrics and part volume. Machining time is a coarse volume-proportional
// estimate scaled by complexity, in the raw mesh units.
func Manufacturing(stats geometry.Stats, metrics ComplexityMetrics) ManufacturingReport {
	factor := metrics.Score / 50
	hours := stats.Volume * 0.01 * factor

	return ManufacturingReport{
		MachiningDifficulty:     metrics.Difficulty,
		EstimatedMachiningHours: math.Round(hours*10) / 10,
		MaterialRecommendation:  recommendMaterial(metrics.Score),
		FinishRecommendation:    recommendFinish(metrics.Score),
		ProcessRecommendations:  recommendProcesses(metrics),
	}
}

func recommendMaterial(score float64) string {
	switch {
	case score > 75:
		return "H13 (hot-work tool steel, high wear resistance)"
	case score > 50:
		return "P20 (general mold steel, balanced machinability)"
	default:
		return "718 (pre-hardened steel, economical)"
	}
}

func recommendFinish(score float64) string {
	switch {
	case score > 70:
		return "edm"
	case score > 40:
		return "ground"
	default:
		return "machined"
	}
}

func recommendProcesses(metrics ComplexityMetrics) []string {
	var recs []string
	if metrics.Score > 70 {
		recs = append(recs, "5-axis CNC recommended for deep or undercut features")
	} else {
		recs = append(recs, "3-axis CNC sufficient for primary machining")
	}
	if metrics.Score > 80 {
		recs = append(recs, "EDM finishing required for sharp internal corners")
	}
	if metrics.Compactness < 0.2 {
		recs = append(recs, "Thin elongated part: verify plate rigidity and clamping")
	}
	if metrics.AverageAspectRatio > 4 {
		recs = append(recs, "Poor tessellation quality: consider re-exporting the CAD model")
	}
	return recs
}
