package enums

import "testing"

func TestParseRoleRejectsUnknown(t *testing.T) {
	if _, err := ParseRole("owner"); err == nil {
		t.Fatal("expected error for unknown role")
	}
	role, err := ParseRole("dealer")
	if err != nil {
		t.Fatalf("parse role: %v", err)
	}
	if role != RoleDealer {
		t.Fatalf("unexpected role %s", role)
	}
}

func TestChecklistStatusValidity(t *testing.T) {
	if !ChecklistStatusCompleted.IsValid() {
		t.Fatal("completed should be valid")
	}
	if ChecklistStatus("done").IsValid() {
		t.Fatal("done is not a checklist status")
	}
}

func TestParseFunnelStage(t *testing.T) {
	stage, err := ParseFunnelStage("qualified")
	if err != nil {
		t.Fatalf("parse funnel stage: %v", err)
	}
	if stage != FunnelStageQualified {
		t.Fatalf("unexpected stage %s", stage)
	}
	if _, err := ParseFunnelStage("warm"); err == nil {
		t.Fatal("expected error for unknown stage")
	}
}
