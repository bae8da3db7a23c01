package entity

import "testing"

func TestStageDefinitionsRegistry(t *testing.T) {
	if len(StageDefinitions) != 17 {
		t.Errorf("Expected 17 stage kinds, got %d", len(StageDefinitions))
	}

	for kind, def := range StageDefinitions {
		if def.Kind != kind {
			t.Errorf("Definition %q carries kind %q", kind, def.Kind)
		}
		if def.SideKind != SideKindTask && def.SideKind != SideKindValidation {
			t.Errorf("Definition %q has invalid side kind %q", kind, def.SideKind)
		}
		if len(def.Fields) == 0 {
			t.Errorf("Definition %q declares no fields", kind)
		}
		seen := make(map[string]struct{}, len(def.Fields))
		for _, f := range def.Fields {
			if _, dup := seen[f]; dup {
				t.Errorf("Definition %q declares field %q twice", kind, f)
			}
			seen[f] = struct{}{}
		}
	}
}

func TestReadinessKindsUseValidationSideRecords(t *testing.T) {
	if len(ReadinessKinds) != 11 {
		t.Errorf("Expected 11 readiness disciplines, got %d", len(ReadinessKinds))
	}
	for _, kind := range ReadinessKinds {
		def, ok := DefinitionFor(kind)
		if !ok {
			t.Errorf("Readiness discipline %q not registered", kind)
			continue
		}
		if def.SideKind != SideKindValidation {
			t.Errorf("Readiness discipline %q uses side kind %q", kind, def.SideKind)
		}
	}
}

func TestStageKindsUseTaskSideRecords(t *testing.T) {
	if len(StageKinds) != 6 {
		t.Errorf("Expected 6 direct stage kinds, got %d", len(StageKinds))
	}
	for _, kind := range StageKinds {
		def, ok := DefinitionFor(kind)
		if !ok {
			t.Errorf("Stage kind %q not registered", kind)
			continue
		}
		if def.SideKind != SideKindTask {
			t.Errorf("Stage kind %q uses side kind %q", kind, def.SideKind)
		}
	}
}

func TestDefinitionForUnknownKind(t *testing.T) {
	if _, ok := DefinitionFor("does_not_exist"); ok {
		t.Error("Expected lookup miss for unknown kind")
	}
}
