// Package consensus provides a unanimous-or-opt-out voting primitive. Both
// the readiness check and the rules acceptance stage need the same
// semantics, so each instantiates its own Gate over the current group.
package consensus

import "errors"

var (
	// ErrNotEligible indicates the voter is not part of this vote
	ErrNotEligible = errors.New("voter is not eligible for this vote")

	// ErrNotResolved indicates Resolve was called before every vote was in
	ErrNotResolved = errors.New("vote is not yet resolved")

	// ErrAlreadyResolved indicates the gate was resolved and discarded
	ErrAlreadyResolved = errors.New("vote has already been resolved")
)

// Choice is one of the two outcomes a voter can pick
type Choice string

const (
	// ChoiceAffirm keeps the voter in the group
	ChoiceAffirm Choice = "affirm"

	// ChoiceWithdraw removes the voter from the group on resolution
	ChoiceWithdraw Choice = "withdraw"
)

// Gate tracks one vote over a fixed eligible group. A voter may change
// their choice any number of times before resolution; only the latest
// choice counts. A Gate resolves exactly once and is then discarded.
type Gate struct {
	order    []string
	eligible map[string]struct{}
	votes    map[string]Choice
	resolved bool
}

// Outcome is the partition produced by a resolved gate
type Outcome struct {
	// Remaining holds the IDs that affirmed, in eligible order
	Remaining []string

	// Departed holds the IDs that withdrew, in eligible order
	Departed []string
}

// Progress is a read-only snapshot of the vote for display
type Progress struct {
	Affirmed  []string
	Withdrawn []string
	Pending   []string
}

// New creates a gate over the given eligible voter IDs
func New(eligibleIDs []string) *Gate {
	g := &Gate{
		order:    make([]string, 0, len(eligibleIDs)),
		eligible: make(map[string]struct{}, len(eligibleIDs)),
		votes:    make(map[string]Choice, len(eligibleIDs)),
	}
	for _, id := range eligibleIDs {
		if _, ok := g.eligible[id]; ok {
			continue
		}
		g.order = append(g.order, id)
		g.eligible[id] = struct{}{}
	}
	return g
}

// Cast records a voter's choice, overwriting any previous choice by the
// same voter.
func (g *Gate) Cast(voterID string, choice Choice) error {
	if g.resolved {
		return ErrAlreadyResolved
	}
	if _, ok := g.eligible[voterID]; !ok {
		return ErrNotEligible
	}
	g.votes[voterID] = choice
	return nil
}

// Resolved reports whether every eligible voter has a current vote
func (g *Gate) Resolved() bool {
	return len(g.votes) == len(g.order)
}

// Resolve partitions the group into remaining and departed voters. It is
// callable only once, and only after every vote is in.
func (g *Gate) Resolve() (*Outcome, error) {
	if g.resolved {
		return nil, ErrAlreadyResolved
	}
	if !g.Resolved() {
		return nil, ErrNotResolved
	}
	g.resolved = true

	out := &Outcome{}
	for _, id := range g.order {
		switch g.votes[id] {
		case ChoiceAffirm:
			out.Remaining = append(out.Remaining, id)
		case ChoiceWithdraw:
			out.Departed = append(out.Departed, id)
		}
	}
	return out, nil
}

// Progress returns who has affirmed, withdrawn, and not yet voted, in
// eligible order. Purely a read.
func (g *Gate) Progress() *Progress {
	p := &Progress{}
	for _, id := range g.order {
		choice, ok := g.votes[id]
		switch {
		case !ok:
			p.Pending = append(p.Pending, id)
		case choice == ChoiceAffirm:
			p.Affirmed = append(p.Affirmed, id)
		default:
			p.Withdrawn = append(p.Withdrawn, id)
		}
	}
	return p
}
