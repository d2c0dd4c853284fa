package pipeline

import "fmt"

// Decision answers a pause of the Orchestrator.
type Decision interface {
	decision()
}

// Proceed continues a file with its extra columns dropped.
type Proceed struct{}

// Skip stops the paused file with "Skip File".
type Skip struct{}

// Cancel stops the paused file with "Upload cancelled".
type Cancel struct{}

// Classify maps every pending brand name to a brand type id.
type Classify struct {
	Classifications map[string]string
}

func (Proceed) decision()  {}
func (Skip) decision()     {}
func (Cancel) decision()   {}
func (Classify) decision() {}

// ParseDecision maps the wire form of a decision.
func ParseDecision(action string, classifications map[string]string) (Decision, error) {
	switch action {
	case "proceed":
		return Proceed{}, nil
	case "skip":
		return Skip{}, nil
	case "cancel":
		return Cancel{}, nil
	case "classify":
		return Classify{Classifications: classifications}, nil
	default:
		return nil, fmt.Errorf("unknown action %q", action)
	}
}
