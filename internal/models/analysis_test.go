package models

import "testing"

func TestClassifyProductKind(t *testing.T) {
	tests := []struct {
		name string
		want ProductKind
	}{
		{"Destined Rivals Elite Trainer Box", KindEliteTrainerBox},
		{"Destined Rivals ETB", KindEliteTrainerBox},
		{"Destined Rivals Booster Box", KindBoosterBox36},
		{"Destined Rivals Booster Box 18 Packs", KindBoosterBox18},
		{"Destined Rivals Booster Pack", KindSingleBooster},
		{"Destined Rivals Mini Tin", KindUnknown},
		{"", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyProductKind(tt.name); got != tt.want {
				t.Errorf("ClassifyProductKind(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestKindPacksAndMultipliers(t *testing.T) {
	tests := []struct {
		kind       ProductKind
		packs      int
		multiplier float64
	}{
		{KindBoosterBox36, 36, 0.75},
		{KindBoosterBox18, 18, 0.70},
		{KindEliteTrainerBox, 8, 0.65},
		{KindSingleBooster, 1, 0.80},
		// Unknown products get analyzed with the 36-box defaults.
		{KindUnknown, 36, 0.75},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.PacksPerUnit(); got != tt.packs {
				t.Errorf("PacksPerUnit() = %d, want %d", got, tt.packs)
			}
			if got := tt.kind.PullMultiplier(); got != tt.multiplier {
				t.Errorf("PullMultiplier() = %v, want %v", got, tt.multiplier)
			}
		})
	}
}
