package rules

import (
	"strings"
	"testing"
)

func TestTransitionTablesAreTotal(t *testing.T) {
	tables := map[EntityType]Table{
		EntitySPAC:   SPACTransitions,
		EntityFiling: FilingTransitions,
	}

	for entity, table := range tables {
		if len(table) == 0 {
			t.Fatalf("%s table is empty", entity)
		}
		for status, reachable := range table {
			for _, next := range reachable {
				if !table.Known(next) {
					t.Errorf("%s table: %s -> %s points outside the enumeration", entity, status, next)
				}
				if next == status {
					t.Errorf("%s table: %s lists a self-transition", entity, status)
				}
			}
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	terminals := map[EntityType][]string{
		EntitySPAC:   {SPACCompleted, SPACLiquidated, SPACTerminated},
		EntityFiling: {FilingEffective, FilingWithdrawn},
	}

	for entity, statuses := range terminals {
		table, err := TableFor(entity)
		if err != nil {
			t.Fatalf("TableFor(%s): %v", entity, err)
		}
		for _, terminal := range statuses {
			if !table.Terminal(terminal) {
				t.Errorf("%s: expected %s to be terminal", entity, terminal)
			}
			// Any transition out of a terminal status is rejected.
			for _, requested := range table.Statuses() {
				if err := Validate(entity, terminal, requested); err == nil {
					t.Errorf("%s: expected %s -> %s to be rejected", entity, terminal, requested)
				}
			}
		}
	}
}

func TestValidateMatchesTable(t *testing.T) {
	for entity, table := range map[EntityType]Table{
		EntitySPAC:   SPACTransitions,
		EntityFiling: FilingTransitions,
	} {
		for _, current := range table.Statuses() {
			for _, requested := range table.Statuses() {
				err := Validate(entity, current, requested)
				if table.CanTransition(current, requested) {
					if err != nil {
						t.Errorf("%s: expected %s -> %s to be accepted, got %v", entity, current, requested, err)
					}
				} else if err == nil {
					t.Errorf("%s: expected %s -> %s to be rejected", entity, current, requested)
				}
			}
		}
	}
}

func TestValidateRejectsCompletedSPACRestart(t *testing.T) {
	err := Validate(EntitySPAC, SPACCompleted, SPACSearching)
	if err == nil {
		t.Fatal("expected COMPLETED -> SEARCHING to be rejected")
	}
	if !strings.Contains(err.Error(), "COMPLETED -> SEARCHING") {
		t.Errorf("expected rejection to name the attempted pair, got %q", err.Error())
	}
}

func TestValidateAcceptsFiledToSECComment(t *testing.T) {
	if err := Validate(EntityFiling, FilingFiled, FilingSECComment); err != nil {
		t.Fatalf("expected FILED -> SEC_COMMENT to be accepted, got %v", err)
	}
}

func TestValidateRejectsSelfTransition(t *testing.T) {
	if err := Validate(EntitySPAC, SPACSearching, SPACSearching); err == nil {
		t.Error("expected SEARCHING -> SEARCHING to be rejected")
	}
	if err := Validate(EntityFiling, FilingDrafting, FilingDrafting); err == nil {
		t.Error("expected DRAFTING -> DRAFTING to be rejected")
	}
}

func TestValidateRejectsUnknownInput(t *testing.T) {
	if err := Validate(EntitySPAC, "DANCING", SPACSearching); err == nil {
		t.Error("expected unknown current status to be rejected")
	}
	if err := Validate(EntitySPAC, SPACSearching, "DANCING"); err == nil {
		t.Error("expected unknown requested status to be rejected")
	}
	if err := Validate("org", SPACSearching, SPACLOISigned); err == nil {
		t.Error("expected unknown entity type to be rejected")
	}
}
