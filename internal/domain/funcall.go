package domain

import "encoding/json"

// Function names the generation model may call.
const (
	FuncUpdateUserProfile = "updateUserProfile"
	FuncSetCareerGoals    = "setCareerGoals"
	FuncTrackProgress     = "trackProgress"
)

// FunctionCall is a structured side-effect instruction emitted by the model.
// Arguments stay raw until the executor decodes them per function name.
type FunctionCall struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// FunctionResult records the outcome of applying one function call. Exactly
// one of Result and Error is set.
type FunctionResult struct {
	Function  string          `json:"function"`
	Arguments json.RawMessage `json:"arguments"`
	Result    any             `json:"result,omitempty"`
	Error     string          `json:"error,omitempty"`
}

type ProfileUpdateArgs struct {
	Skills     []string `json:"skills"`
	Experience *int     `json:"experience,omitempty"`
	Interests  []string `json:"interests,omitempty"`
}

type CareerGoalsArgs struct {
	ShortTerm []string `json:"shortTerm"`
	LongTerm  []string `json:"longTerm"`
	Priority  string   `json:"priority,omitempty"`
}

type TrackProgressArgs struct {
	SkillName          string  `json:"skillName"`
	ProgressPercentage float64 `json:"progressPercentage"`
	Notes              string  `json:"notes,omitempty"`
}
