package enums

import "fmt"

// FunnelStage positions a lead in the sales pipeline.
type FunnelStage string

const (
	FunnelStageLead        FunnelStage = "lead"
	FunnelStageQualified   FunnelStage = "qualified"
	FunnelStageProposal    FunnelStage = "proposal"
	FunnelStageNegotiation FunnelStage = "negotiation"
	FunnelStageWon         FunnelStage = "won"
	FunnelStageLost        FunnelStage = "lost"
)

var validFunnelStages = []FunnelStage{
	FunnelStageLead,
	FunnelStageQualified,
	FunnelStageProposal,
	FunnelStageNegotiation,
	FunnelStageWon,
	FunnelStageLost,
}

// String implements fmt.Stringer.
func (f FunnelStage) String() string {
	return string(f)
}

// IsValid reports whether the value is a known FunnelStage.
func (f FunnelStage) IsValid() bool {
	for _, candidate := range validFunnelStages {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFunnelStage converts raw input into a FunnelStage.
func ParseFunnelStage(value string) (FunnelStage, error) {
	for _, candidate := range validFunnelStages {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid funnel stage %q", value)
}
