package models

import "testing"

func TestScenarioByName(t *testing.T) {
	tests := []struct {
		name      string
		wantAttr  UnitAttribute
		wantPlane TargetFilter
	}{
		{"standard", "", ""},
		{"vs_ground", "", TargetGround},
		{"vs_air", "", TargetAir},
		{"vs_light", Light, TargetGround},
		{"vs_armored", Armored, TargetGround},
		{"vs_structure", Structure, TargetGround},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ScenarioByName(tt.name)
			if err != nil {
				t.Fatalf("ScenarioByName(%s): %v", tt.name, err)
			}
			if s.Name != tt.name {
				t.Errorf("Name = %q, want %q", s.Name, tt.name)
			}
			if s.TargetAttribute != tt.wantAttr {
				t.Errorf("TargetAttribute = %q, want %q", s.TargetAttribute, tt.wantAttr)
			}
			if s.TargetPlane != tt.wantPlane {
				t.Errorf("TargetPlane = %q, want %q", s.TargetPlane, tt.wantPlane)
			}
			if !s.ApplyMastery {
				t.Error("named scenarios apply mastery")
			}
			if s.Synergy != 1.0 {
				t.Errorf("Synergy = %v, want 1.0", s.Synergy)
			}
		})
	}
}

func TestScenarioByNameUnknown(t *testing.T) {
	if _, err := ScenarioByName("vs_ghosts"); err == nil {
		t.Error("ScenarioByName accepted an unknown name")
	}
}

func TestScenarioNamesResolve(t *testing.T) {
	for _, name := range ScenarioNames() {
		if _, err := ScenarioByName(name); err != nil {
			t.Errorf("listed scenario %q does not resolve: %v", name, err)
		}
	}
}
