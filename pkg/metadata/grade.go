package metadata

import (
	"fmt"
	"strings"
)

// Grade is the 16-step condition rating of an asset, S+ (best) to E (worst).
type Grade string

const (
	GradeSPlus  Grade = "S+"
	GradeS      Grade = "S"
	GradeSMinus Grade = "S-"
	GradeAPlus  Grade = "A+"
	GradeA      Grade = "A"
	GradeAMinus Grade = "A-"
	GradeBPlus  Grade = "B+"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B-"
	GradeCPlus  Grade = "C+"
	GradeC      Grade = "C"
	GradeCMinus Grade = "C-"
	GradeDPlus  Grade = "D+"
	GradeD      Grade = "D"
	GradeDMinus Grade = "D-"
	GradeE      Grade = "E"
)

// UnrankedGrade is the rank assigned to an absent or unknown grade. It is
// larger than every real rank so such assets always order after graded ones.
const UnrankedGrade = 999

var gradeRanks = map[Grade]int{
	GradeSPlus:  1,
	GradeS:      2,
	GradeSMinus: 3,
	GradeAPlus:  4,
	GradeA:      5,
	GradeAMinus: 6,
	GradeBPlus:  7,
	GradeB:      8,
	GradeBMinus: 9,
	GradeCPlus:  10,
	GradeC:      11,
	GradeCMinus: 12,
	GradeDPlus:  13,
	GradeD:      14,
	GradeDMinus: 15,
	GradeE:      16,
}

func NewGrade(value string) (Grade, error) {
	grade := Grade(strings.TrimSpace(value))
	if !grade.IsValid() {
		return "", fmt.Errorf("invalid grade: %s", value)
	}
	return grade, nil
}

func (g Grade) IsValid() bool {
	_, ok := gradeRanks[g]
	return ok
}

// Rank returns the position on the scale, 1 for S+ through 16 for E.
// Unknown or empty grades get UnrankedGrade.
func (g Grade) Rank() int {
	if rank, ok := gradeRanks[g]; ok {
		return rank
	}
	return UnrankedGrade
}

func (g Grade) String() string {
	return string(g)
}

// Scale lists every valid grade, best first.
func Scale() []Grade {
	return []Grade{
		GradeSPlus, GradeS, GradeSMinus,
		GradeAPlus, GradeA, GradeAMinus,
		GradeBPlus, GradeB, GradeBMinus,
		GradeCPlus, GradeC, GradeCMinus,
		GradeDPlus, GradeD, GradeDMinus,
		GradeE,
	}
}
