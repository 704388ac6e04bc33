package analysis

import (
	"testing"

	"github.com/piwi3910/MoldQuote/internal/geometry"
)

// boxMesh builds an axis-aligned rectangular box with outward winding.
func boxMesh(sx, sy, sz float64) *geometry.Mesh {
	v := []geometry.Vector3{
		{X: 0, Y: 0, Z: 0}, {X: sx, Y: 0, Z: 0}, {X: sx, Y: sy, Z: 0}, {X: 0, Y: sy, Z: 0},
		{X: 0, Y: 0, Z: sz}, {X: sx, Y: 0, Z: sz}, {X: sx, Y: sy, Z: sz}, {X: 0, Y: sy, Z: sz},
	}
	faces := [][3]int{
		{0, 2, 1}, {0, 3, 2},
		{4, 5, 6}, {4, 6, 7},
		{0, 1, 5}, {0, 5, 4},
		{2, 3, 7}, {2, 7, 6},
		{1, 2, 6}, {1, 6, 5},
		{3, 0, 4}, {3, 4, 7},
	}
	m := geometry.NewMesh("box")
	for _, f := range faces {
		m.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, v[f[0]], v[f[1]], v[f[2]]))
	}
	return m
}

func mustStats(t *testing.T, m *geometry.Mesh) geometry.Stats {
	t.Helper()
	stats, err := geometry.ComputeStats(m)
	if err != nil {
		t.Fatalf("ComputeStats: %v", err)
	}
	return stats
}

func TestComplexityCube(t *testing.T) {
	m := boxMesh(10, 10, 10)
	metrics := Complexity(m, mustStats(t, m))

	// Cube: S/V = 600/1000 = 0.6, compactness 1, near-unit triangle quality.
	if metrics.Compactness != 1.0 {
		t.Errorf("expected compactness 1.0 for a cube, got %.4f", metrics.Compactness)
	}
	if metrics.Score < 0 || metrics.Score > 100 {
		t.Errorf("score out of range: %.2f", metrics.Score)
	}
	if metrics.Difficulty != DifficultyLow {
		t.Errorf("expected Low difficulty for a cube, got %s", metrics.Difficulty)
	}
}

func TestComplexityElongatedPartScoresHigher(t *testing.T) {
	cube := boxMesh(10, 10, 10)
	slab := boxMesh(100, 10, 1)

	cubeScore := Complexity(cube, mustStats(t, cube)).Score
	slabScore := Complexity(slab, mustStats(t, slab)).Score

	if slabScore <= cubeScore {
		t.Errorf("elongated part should score higher: slab %.2f vs cube %.2f", slabScore, cubeScore)
	}
}

func TestComplexityScoreCap(t *testing.T) {
	// A nearly flat open sliver has an extreme surface/volume ratio.
	m := geometry.NewMesh("sliver")
	m.AddTriangle(geometry.NewTriangle(geometry.Vector3{},
		geometry.Vector3{X: 0, Y: 0, Z: 0},
		geometry.Vector3{X: 100, Y: 0, Z: 0},
		geometry.Vector3{X: 0, Y: 0.01, Z: 0},
	))
	metrics := Complexity(m, mustStats(t, m))
	if metrics.Score > 100 {
		t.Errorf("score must be capped at 100, got %.2f", metrics.Score)
	}
}

func TestDifficultyRatings(t *testing.T) {
	cases := []struct {
		score float64
		want  Difficulty
	}{
		{0, DifficultyLow},
		{24.9, DifficultyLow},
		{25, DifficultyMedium},
		{50, DifficultyHigh},
		{75, DifficultyVeryHigh},
		{100, DifficultyVeryHigh},
	}
	for _, c := range cases {
		if got := rating(c.score); got != c.want {
			t.Errorf("rating(%.1f) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestManufacturingReport(t *testing.T) {
	m := boxMesh(10, 10, 10)
	stats := mustStats(t, m)
	metrics := Complexity(m, stats)
	report := Manufacturing(stats, metrics)

	if report.MachiningDifficulty != metrics.Difficulty {
		t.Errorf("difficulty mismatch: %s vs %s", report.MachiningDifficulty, metrics.Difficulty)
	}
	if report.EstimatedMachiningHours < 0 {
		t.Errorf("negative machining hours: %.1f", report.EstimatedMachiningHours)
	}
	if report.MaterialRecommendation == "" || report.FinishRecommendation == "" {
		t.Error("expected non-empty recommendations")
	}
	if len(report.ProcessRecommendations) == 0 {
		t.Error("expected at least one process recommendation")
	}
}

func TestManufacturingHoursScaleWithVolume(t *testing.T) {
	small := boxMesh(10, 10, 10)
	large := boxMesh(20, 20, 20)

	smallStats := mustStats(t, small)
	largeStats := mustStats(t, large)

	smallReport := Manufacturing(smallStats, Complexity(small, smallStats))
	largeReport := Manufacturing(largeStats, Complexity(large, largeStats))

	if largeReport.EstimatedMachiningHours <= smallReport.EstimatedMachiningHours {
		t.Errorf("larger part should need more machining: %.1f vs %.1f",
			largeReport.EstimatedMachiningHours, smallReport.EstimatedMachiningHours)
	}
}
