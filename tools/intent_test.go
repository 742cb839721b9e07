package tools

import "testing"

func TestRecommendForIntentBossDinner(t *testing.T) {
	snap := testSnapshot()
	match, ok := RecommendForIntent("gift for my boss dinner", snap)
	if !ok {
		t.Fatal("expected an intent match")
	}
	if match.Intent.ID != "i_boss_gift" {
		t.Errorf("expected i_boss_gift, got %s", match.Intent.ID)
	}
	if len(match.Products) == 0 {
		t.Fatal("expected at least one resolved product")
	}
	if match.Products[0].ID != "p_explorer_box" {
		t.Errorf("expected p_explorer_box, got %s", match.Products[0].ID)
	}
	if len(match.Recipes) != 1 || match.Recipes[0].ID != "r_dinner_party" {
		t.Errorf("expected r_dinner_party resolved, got %+v", match.Recipes)
	}
}

func TestRecommendForIntentFirstMatchWins(t *testing.T) {
	snap := testSnapshot()
	// Text matching both intents resolves to the first in dataset
	// order, not the better-scoring one.
	match, ok := RecommendForIntent("impress my boss with something spicy", snap)
	if !ok {
		t.Fatal("expected an intent match")
	}
	if match.Intent.ID != "i_boss_gift" {
		t.Errorf("first-match must win, got %s", match.Intent.ID)
	}
}

func TestRecommendForIntentNoMatch(t *testing.T) {
	snap := testSnapshot()
	if _, ok := RecommendForIntent("just browsing", snap); ok {
		t.Error("expected no match")
	}
}

func TestRecommendForIntentDropsUnresolvedIDs(t *testing.T) {
	snap := testSnapshot()
	snap.Intents.Intents[0].Recommend.ProductIDs = []string{"p_missing", "p_explorer_box"}
	snap.Intents.Intents[0].Recommend.RecipeIDs = []string{"r_missing"}

	match, ok := RecommendForIntent("gift for my boss", snap)
	if !ok {
		t.Fatal("expected an intent match")
	}
	if len(match.Products) != 1 || match.Products[0].ID != "p_explorer_box" {
		t.Errorf("unresolved ids must be skipped, got %+v", match.Products)
	}
	if len(match.Recipes) != 0 {
		t.Errorf("unresolved recipe ids must be skipped, got %+v", match.Recipes)
	}
}
