// SPDX-License-Identifier: MIT

package balance

// Stage names a step of the balancing pipeline. Each stage is entered only
// after the previous one succeeded.
type Stage int

const (
	// StageInput validates side lengths and compound pointers.
	StageInput Stage = iota
	// StageElementsChecked confirms both sides carry the same element set.
	StageElementsChecked
	// StageMatrixBuilt has the element×compound count matrix.
	StageMatrixBuilt
	// StageSolved has the relative real-valued coefficients.
	StageSolved
	// StageRationalized has bounded-denominator fractions.
	StageRationalized
	// StageScaled has positive integer coefficients.
	StageScaled
	// StageVerified has a conserving reaction.
	StageVerified
)

var stageNames = [...]string{
	StageInput:           "input",
	StageElementsChecked: "elements-checked",
	StageMatrixBuilt:     "matrix-built",
	StageSolved:          "solved",
	StageRationalized:    "rationalized",
	StageScaled:          "scaled",
	StageVerified:        "verified",
}

// String implements fmt.Stringer.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}

	return stageNames[s]
}
