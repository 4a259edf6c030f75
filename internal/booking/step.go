package booking

import "fmt"

// Step is a stage of the booking sequence.
type Step int

const (
	StepDetails Step = iota
	StepSeat
	StepPayment
	StepConfirmation
)

var stepNames = map[Step]string{
	StepDetails:      "details",
	StepSeat:         "seat",
	StepPayment:      "payment",
	StepConfirmation: "confirmation",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Step) UnmarshalText(text []byte) error {
	for step, name := range stepNames {
		if name == string(text) {
			*s = step
			return nil
		}
	}
	return fmt.Errorf("unknown booking step %q", text)
}

// StepInfo is the progress indicator entry for a step.
type StepInfo struct {
	ID    Step   `json:"id"`
	Label string `json:"label"`
}

// Steps lists the stages in order.
var Steps = []StepInfo{
	{ID: StepDetails, Label: "Passenger Details"},
	{ID: StepSeat, Label: "Seat Selection"},
	{ID: StepPayment, Label: "Payment"},
	{ID: StepConfirmation, Label: "Confirmation"},
}
