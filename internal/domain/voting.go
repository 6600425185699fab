package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// VoteChoice is a member's recorded position on an application
type VoteChoice string

const (
	// VoteChoiceYes supports the application
	VoteChoiceYes VoteChoice = "yes"
	// VoteChoiceNo opposes the application
	VoteChoiceNo VoteChoice = "no"
	// VoteChoiceAbstain records participation without a position
	VoteChoiceAbstain VoteChoice = "abstain"
)

// Valid reports whether the choice is one of the recognized values
func (c VoteChoice) Valid() bool {
	switch c {
	case VoteChoiceYes, VoteChoiceNo, VoteChoiceAbstain:
		return true
	}
	return false
}

// Attendance-tier vote weights. A member's 30-day attendance rate picks
// the multiplier their vote carries; below the eligibility threshold the
// member cannot vote at all.
var (
	// VoteWeightHigh is the multiplier for rates of 76% and above
	VoteWeightHigh = decimal.NewFromFloat(2.0)
	// VoteWeightMid is the multiplier for rates of 51% and above
	VoteWeightMid = decimal.NewFromFloat(1.5)
	// VoteWeightBase is the multiplier for rates at the eligibility threshold and above
	VoteWeightBase = decimal.NewFromFloat(1.0)

	voteWeightHighRate = decimal.NewFromInt(76)
	voteWeightMidRate  = decimal.NewFromInt(51)
)

// VotingEligibilityRate is the minimum 30-day attendance rate, in percent,
// required to cast a vote. Exactly this rate qualifies.
var VotingEligibilityRate = decimal.NewFromInt(15)

// IsVotingEligible reports whether a 30-day attendance rate qualifies a
// member to vote
func IsVotingEligible(rate30d decimal.Decimal) bool {
	return rate30d.GreaterThanOrEqual(VotingEligibilityRate)
}

// VoteWeightForRate returns the vote weight for a 30-day attendance rate,
// or false when the rate is below the eligibility threshold
func VoteWeightForRate(rate30d decimal.Decimal) (decimal.Decimal, bool) {
	switch {
	case rate30d.GreaterThanOrEqual(voteWeightHighRate):
		return VoteWeightHigh, true
	case rate30d.GreaterThanOrEqual(voteWeightMidRate):
		return VoteWeightMid, true
	case rate30d.GreaterThanOrEqual(VotingEligibilityRate):
		return VoteWeightBase, true
	}
	return decimal.Zero, false
}

// WeightedVote is one vote as it enters a tally
type WeightedVote struct {
	Choice VoteChoice
	Weight decimal.Decimal
}

// VoteTally aggregates the votes cast on one application. Abstentions count
// toward the vote total and their weight stays in the denominator of the
// approval percentage, so abstaining dilutes approval rather than ignoring it.
type VoteTally struct {
	YesCount      int
	NoCount       int
	AbstainCount  int
	YesWeight     decimal.Decimal
	NoWeight      decimal.Decimal
	AbstainWeight decimal.Decimal
}

// TallyVotes aggregates weighted votes into a tally
func TallyVotes(votes []WeightedVote) VoteTally {
	tally := VoteTally{
		YesWeight:     decimal.Zero,
		NoWeight:      decimal.Zero,
		AbstainWeight: decimal.Zero,
	}

	for _, v := range votes {
		switch v.Choice {
		case VoteChoiceYes:
			tally.YesCount++
			tally.YesWeight = tally.YesWeight.Add(v.Weight)
		case VoteChoiceNo:
			tally.NoCount++
			tally.NoWeight = tally.NoWeight.Add(v.Weight)
		case VoteChoiceAbstain:
			tally.AbstainCount++
			tally.AbstainWeight = tally.AbstainWeight.Add(v.Weight)
		}
	}

	return tally
}

// TotalVotes returns the number of votes cast, abstentions included
func (t VoteTally) TotalVotes() int {
	return t.YesCount + t.NoCount + t.AbstainCount
}

// TotalWeight returns the combined weight of all votes cast
func (t VoteTally) TotalWeight() decimal.Decimal {
	return t.YesWeight.Add(t.NoWeight).Add(t.AbstainWeight)
}

// ApprovalPercentage returns yes weight over total weight as a percentage,
// zero when no weighted votes were cast
func (t VoteTally) ApprovalPercentage() decimal.Decimal {
	total := t.TotalWeight()
	if total.IsZero() {
		return decimal.Zero
	}
	return t.YesWeight.Div(total).Mul(decimal.NewFromInt(100))
}

// VotingDecision is the outcome of closing a voting period
type VotingDecision struct {
	Approved           bool
	Reason             string
	ApprovalPercentage decimal.Decimal
}

// DecideVoting applies the decision rule to a tally: fewer than minVotes
// rejects for insufficient participation, otherwise the weighted approval
// percentage decides against the threshold (meeting it exactly approves).
func DecideVoting(tally VoteTally, minVotes int, approvalThreshold decimal.Decimal) VotingDecision {
	total := tally.TotalVotes()
	if total < minVotes {
		return VotingDecision{
			Approved:           false,
			Reason:             fmt.Sprintf("Insufficient votes (%d received, %d required)", total, minVotes),
			ApprovalPercentage: decimal.Zero,
		}
	}

	pct := tally.ApprovalPercentage()
	if pct.GreaterThanOrEqual(approvalThreshold) {
		return VotingDecision{
			Approved:           true,
			Reason:             fmt.Sprintf("Approved with %s%% approval (≥%s%% required)", pct.StringFixed(1), approvalThreshold.String()),
			ApprovalPercentage: pct.Round(2),
		}
	}
	return VotingDecision{
		Approved:           false,
		Reason:             fmt.Sprintf("Rejected with %s%% approval (<%s%% required)", pct.StringFixed(1), approvalThreshold.String()),
		ApprovalPercentage: pct.Round(2),
	}
}
