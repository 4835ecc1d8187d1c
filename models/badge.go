package models

// FineBadge is the badge authors pick for a project. It carries more
// detail than the site's routing needs, so every fine badge rolls up to a
// coarse badge that decides which listing page the project appears on.
type FineBadge string

const (
	FineUXDesign   FineBadge = "UX Design"
	FineUXStrategy FineBadge = "UX Strategy"
	FineVentures   FineBadge = "Ventures"
	FineManager    FineBadge = "Manager"
)

// CoarseBadge is the routing-level badge. Series carry a coarse badge
// directly; projects derive theirs from the fine badge.
type CoarseBadge string

const (
	CoarseDesignWork CoarseBadge = "Design Work"
	CoarseVentures   CoarseBadge = "Ventures"
)

func (b FineBadge) Valid() bool {
	switch b {
	case FineUXDesign, FineUXStrategy, FineVentures, FineManager:
		return true
	}
	return false
}

// Coarse maps a fine badge to its listing page. Ventures stands alone;
// every other badge is design work.
func (b FineBadge) Coarse() CoarseBadge {
	if b == FineVentures {
		return CoarseVentures
	}
	return CoarseDesignWork
}

func (b CoarseBadge) Valid() bool {
	return b == CoarseDesignWork || b == CoarseVentures
}

// FinesFor returns the fine badges that roll up to the given coarse badge.
func FinesFor(coarse CoarseBadge) []FineBadge {
	if coarse == CoarseVentures {
		return []FineBadge{FineVentures}
	}
	return []FineBadge{FineUXDesign, FineUXStrategy, FineManager}
}
