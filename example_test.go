package matchgo_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hupe1980/matchgo"
	"github.com/hupe1980/matchgo/item"
)

func Example() {
	matcher := matchgo.New()

	lost := item.Item{
		ID:          "lost-1",
		Kind:        item.KindLost,
		Title:       "Black Leather Wallet",
		Description: "black wallet with student card inside",
		Category:    item.CategoryAccessories,
		Location:    "Library",
		Date:        time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC),
	}

	candidates := []item.Item{
		{
			ID:          "found-1",
			Kind:        item.KindFound,
			Title:       "Wallet",
			Description: "leather wallet found near a desk",
			Category:    item.CategoryAccessories,
			Location:    "Library",
			Date:        time.Date(2023, 4, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "found-2",
			Kind:        item.KindFound,
			Title:       "Blue Umbrella",
			Description: "small umbrella",
			Category:    item.CategoryOther,
			Location:    "Gym",
			Date:        time.Date(2023, 4, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	matches, err := matcher.Rank(context.Background(), matchgo.ModeLexical, lost, candidates)
	if err != nil {
		log.Fatal(err)
	}

	for _, m := range matches {
		fmt.Printf("%s score=%.0f confidence=%s\n", m.Item.ID, m.Score, m.Confidence)
	}

	// Output:
	// found-1 score=82 confidence=high
}
