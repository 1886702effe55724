package rules

import "fmt"

// EntityType identifies which lifecycle table applies to a status change.
type EntityType string

const (
	EntitySPAC   EntityType = "spac"
	EntityFiling EntityType = "filing"
)

// SPAC lifecycle statuses
const (
	SPACSearching       = "SEARCHING"
	SPACLOISigned       = "LOI_SIGNED"
	SPACDAAnnounced     = "DA_ANNOUNCED"
	SPACSECReview       = "SEC_REVIEW"
	SPACShareholderVote = "SHAREHOLDER_VOTE"
	SPACClosing         = "CLOSING"
	SPACCompleted       = "COMPLETED"
	SPACLiquidating     = "LIQUIDATING"
	SPACLiquidated      = "LIQUIDATED"
	SPACTerminated      = "TERMINATED"
)

// Filing lifecycle statuses
const (
	FilingDrafting       = "DRAFTING"
	FilingInternalReview = "INTERNAL_REVIEW"
	FilingLegalReview    = "LEGAL_REVIEW"
	FilingBoardApproval  = "BOARD_APPROVAL"
	FilingFiled          = "FILED"
	FilingSECComment     = "SEC_COMMENT"
	FilingResponseFiled  = "RESPONSE_FILED"
	FilingAmended        = "AMENDED"
	FilingEffective      = "EFFECTIVE"
	FilingWithdrawn      = "WITHDRAWN"
)

// Table maps each lifecycle status to the set of statuses directly reachable
// from it. The mapping is total: every known status has an entry, and terminal
// statuses map to an empty set. Self-transitions are never listed.
type Table map[string][]string

// SPACTransitions is the single shared transition table for SPAC lifecycles.
var SPACTransitions = Table{
	SPACSearching:       {SPACLOISigned, SPACLiquidating, SPACTerminated},
	SPACLOISigned:       {SPACDAAnnounced, SPACSearching, SPACTerminated},
	SPACDAAnnounced:     {SPACSECReview, SPACTerminated},
	SPACSECReview:       {SPACShareholderVote, SPACTerminated},
	SPACShareholderVote: {SPACClosing, SPACLiquidating, SPACTerminated},
	SPACClosing:         {SPACCompleted, SPACTerminated},
	SPACCompleted:       {},
	SPACLiquidating:     {SPACLiquidated},
	SPACLiquidated:      {},
	SPACTerminated:      {},
}

// FilingTransitions is the single shared transition table for SEC filing
// lifecycles. Review stages can send a document back to DRAFTING; a filing can
// be withdrawn from any non-terminal stage.
var FilingTransitions = Table{
	FilingDrafting:       {FilingInternalReview, FilingWithdrawn},
	FilingInternalReview: {FilingLegalReview, FilingDrafting, FilingWithdrawn},
	FilingLegalReview:    {FilingBoardApproval, FilingDrafting, FilingWithdrawn},
	FilingBoardApproval:  {FilingFiled, FilingDrafting, FilingWithdrawn},
	FilingFiled:          {FilingSECComment, FilingEffective, FilingWithdrawn},
	FilingSECComment:     {FilingResponseFiled, FilingWithdrawn},
	FilingResponseFiled:  {FilingSECComment, FilingAmended, FilingEffective, FilingWithdrawn},
	FilingAmended:        {FilingSECComment, FilingEffective, FilingWithdrawn},
	FilingEffective:      {},
	FilingWithdrawn:      {},
}

// TableFor returns the transition table for an entity type.
func TableFor(entity EntityType) (Table, error) {
	switch entity {
	case EntitySPAC:
		return SPACTransitions, nil
	case EntityFiling:
		return FilingTransitions, nil
	default:
		return nil, fmt.Errorf("unknown entity type %q", entity)
	}
}

// Known reports whether a status is part of the table's enumeration.
func (t Table) Known(status string) bool {
	_, ok := t[status]
	return ok
}

// Terminal reports whether a status has no outgoing transitions.
func (t Table) Terminal(status string) bool {
	next, ok := t[status]
	return ok && len(next) == 0
}

// CanTransition reports whether the table permits moving directly from one
// status to another.
func (t Table) CanTransition(from, to string) bool {
	for _, next := range t[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Statuses returns every status enumerated by the table.
func (t Table) Statuses() []string {
	statuses := make([]string, 0, len(t))
	for s := range t {
		statuses = append(statuses, s)
	}
	return statuses
}

// Validate checks a requested status change against the entity's transition
// table. It only decides; callers are responsible for persisting the new
// status and stamping any dates tied to specific arrivals. A rejection is a
// caller input error and never worth retrying.
func Validate(entity EntityType, current, requested string) error {
	table, err := TableFor(entity)
	if err != nil {
		return err
	}
	if !table.Known(current) {
		return fmt.Errorf("unknown %s status %q", entity, current)
	}
	if !table.Known(requested) {
		return fmt.Errorf("unknown %s status %q", entity, requested)
	}
	if !table.CanTransition(current, requested) {
		return fmt.Errorf("invalid %s status transition %s -> %s", entity, current, requested)
	}
	return nil
}
