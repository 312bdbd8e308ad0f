package npc

import "fmt"

// AgeStage is a named life stage.
type AgeStage string

const (
	Infant     AgeStage = "infant"
	Child      AgeStage = "child"
	Adolescent AgeStage = "adolescent"
	YoungAdult AgeStage = "young adult"
	Adult      AgeStage = "adult"
	MiddleAged AgeStage = "middle-aged"
	Elderly    AgeStage = "elderly"
	Geriatric  AgeStage = "geriatric"
)

// stageOrder lists every stage but Geriatric, which has no upper bound.
var stageOrder = [...]AgeStage{Infant, Child, Adolescent, YoungAdult, Adult, MiddleAged, Elderly}

// Age is a year count bucketed into a life stage.
type Age struct {
	Stage AgeStage `json:"stage"`
	Years int      `json:"years"`
}

func (a Age) String() string {
	switch a.Years {
	case 0:
		return "under a year"
	case 1:
		return "1 year"
	default:
		return fmt.Sprintf("%d years", a.Years)
	}
}

// Describe places the stage next to noun, e.g. "human infant" or "elderly human".
func (s AgeStage) Describe(noun string) string {
	switch s {
	case Infant, Child:
		return noun + " " + string(s)
	default:
		return string(s) + " " + noun
	}
}

// lifespan holds a species' stage thresholds. stages[i] is the exclusive
// upper bound of stageOrder[i]; anything at or past stages[6] is geriatric.
type lifespan struct {
	stages [len(stageOrder)]int
	max    int
}

// Age buckets years. Bounds are inclusive on the lower edge of each stage.
func (l lifespan) Age(years int) Age {
	for i, limit := range l.stages {
		if years < limit {
			return Age{Stage: stageOrder[i], Years: years}
		}
	}
	return Age{Stage: Geriatric, Years: years}
}
