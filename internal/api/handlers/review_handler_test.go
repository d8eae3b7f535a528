package handlers

import (
	"testing"

	"github.com/HoussamELM/PharmaRapide/internal/models"
)

func sampleEntries() []ReviewEntry {
	return []ReviewEntry{
		{OrderID: "a", Review: models.Review{Rating: 5, TimeRating: 4, DeliveryRating: 5}},
		{OrderID: "b", Review: models.Review{Rating: 4, TimeRating: 4, DeliveryRating: 3}},
		{OrderID: "c", Review: models.Review{Rating: 2, TimeRating: 1, DeliveryRating: 2}},
	}
}

func TestComputeReviewStats(t *testing.T) {
	stats := computeReviewStats(sampleEntries())

	if stats.Total != 3 {
		t.Fatalf("Total = %d, want 3", stats.Total)
	}
	if stats.Positive != 2 || stats.Negative != 1 {
		t.Fatalf("Positive/Negative = %d/%d, want 2/1", stats.Positive, stats.Negative)
	}
	if want := (5.0 + 4.0 + 2.0) / 3.0; stats.AverageRating != want {
		t.Fatalf("AverageRating = %v, want %v", stats.AverageRating, want)
	}
	if want := (4.0 + 4.0 + 1.0) / 3.0; stats.AverageTimeRating != want {
		t.Fatalf("AverageTimeRating = %v, want %v", stats.AverageTimeRating, want)
	}
	if want := (5.0 + 3.0 + 2.0) / 3.0; stats.AverageDeliveryRating != want {
		t.Fatalf("AverageDeliveryRating = %v, want %v", stats.AverageDeliveryRating, want)
	}
}

func TestComputeReviewStats_Empty(t *testing.T) {
	stats := computeReviewStats(nil)
	if stats.Total != 0 || stats.AverageRating != 0 {
		t.Fatalf("empty stats = %+v, want zeros", stats)
	}
}

func TestFilterReviews(t *testing.T) {
	entries := sampleEntries()

	if got := filterReviews(entries, "positifs"); len(got) != 2 {
		t.Fatalf("positifs filter kept %d entries, want 2", len(got))
	}
	if got := filterReviews(entries, "negatifs"); len(got) != 1 || got[0].OrderID != "c" {
		t.Fatalf("negatifs filter = %+v, want the single 2-star entry", got)
	}
	if got := filterReviews(entries, ""); len(got) != 3 {
		t.Fatalf("empty filter kept %d entries, want all 3", len(got))
	}
	if got := filterReviews(entries, "autre"); len(got) != 3 {
		t.Fatalf("unknown filter kept %d entries, want all 3", len(got))
	}
}
