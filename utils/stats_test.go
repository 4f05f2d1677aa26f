package utils

import (
	"testing"
	"time"
)

func TestStatsTracksPeakAndThroughput(t *testing.T) {
	stats := NewStats()

	stats.Update(1, 10, 500*time.Millisecond)
	if stats.GenerationsPerSecond != 2 {
		t.Fatalf("gen/sec = %v, expected 2", stats.GenerationsPerSecond)
	}
	if stats.AveragePopulation != 10 {
		t.Fatalf("first average = %v, expected 10", stats.AveragePopulation)
	}
	if stats.PeakPopulation != 10 {
		t.Fatalf("peak = %d, expected 10", stats.PeakPopulation)
	}

	stats.Update(2, 30, 250*time.Millisecond)
	if stats.GenerationsPerSecond != 4 {
		t.Fatalf("gen/sec = %v, expected 4", stats.GenerationsPerSecond)
	}
	if stats.PeakPopulation != 30 {
		t.Fatalf("peak = %d, expected 30", stats.PeakPopulation)
	}

	stats.Update(3, 20, 250*time.Millisecond)
	if stats.PeakPopulation != 30 {
		t.Fatalf("peak dropped to %d after a smaller population", stats.PeakPopulation)
	}
	if stats.TotalGenerations != 3 {
		t.Fatalf("generations = %d, expected 3", stats.TotalGenerations)
	}
	if stats.AveragePopulation <= 10 || stats.AveragePopulation >= 30 {
		t.Fatalf("moving average %v outside (10,30)", stats.AveragePopulation)
	}
}

func TestStatsIgnoresZeroDuration(t *testing.T) {
	stats := NewStats()
	stats.Update(1, 5, 500*time.Millisecond)
	stats.Update(2, 5, 0)
	if stats.GenerationsPerSecond != 2 {
		t.Fatalf("zero duration overwrote gen/sec: %v", stats.GenerationsPerSecond)
	}
}
