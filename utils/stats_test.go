package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	stats := NewStats()

	stats.Update(1, 100, 100*time.Millisecond)
	if stats.TotalGenerations != 1 {
		t.Fatalf("TotalGenerations = %d, want 1", stats.TotalGenerations)
	}
	if stats.GenerationsPerSecond < 9.9 || stats.GenerationsPerSecond > 10.1 {
		t.Fatalf("GenerationsPerSecond = %v, want about 10", stats.GenerationsPerSecond)
	}
	if stats.AveragePopulation != 100 {
		t.Fatalf("AveragePopulation = %v after first update, want 100", stats.AveragePopulation)
	}
	if stats.PeakPopulation != 100 {
		t.Fatalf("PeakPopulation = %d, want 100", stats.PeakPopulation)
	}

	stats.Update(2, 50, 100*time.Millisecond)
	if stats.AveragePopulation != 95 {
		t.Fatalf("AveragePopulation = %v after second update, want 95", stats.AveragePopulation)
	}
	if stats.PeakPopulation != 100 {
		t.Fatalf("PeakPopulation = %d after a population dip, want 100", stats.PeakPopulation)
	}
	if stats.TotalGenerations != 2 {
		t.Fatalf("TotalGenerations = %d, want 2", stats.TotalGenerations)
	}
}

func TestStatsZeroDuration(t *testing.T) {
	stats := NewStats()
	stats.Update(1, 10, 0)
	if stats.GenerationsPerSecond != 0 {
		t.Fatalf("GenerationsPerSecond = %v for a zero duration, want 0", stats.GenerationsPerSecond)
	}
}
