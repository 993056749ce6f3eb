/*
Package tutorial scripts the guided first-visit walkthrough: a
fixed sequence of steps that introduce the decision tree by
progressively revealing the path one example passenger takes.
*/
package tutorial

import (
	"github.com/exploratory-ai/treelight/feature"
	"github.com/exploratory-ai/treelight/highlight"
	"github.com/exploratory-ai/treelight/path"
)

/*
Step is one stop of the walkthrough: the message shown to the
user, the passenger the tree is queried with, whether the tree is
highlighted at this step, the reveal to use when it is, and the
label of the button that advances past it.
*/
type Step struct {
	Message    string
	Passenger  feature.Vector
	Highlight  bool
	Reveal     path.Mode
	ButtonText string
}

/*
Input returns the engine input for the step: the passenger's path
under the step's reveal, or idle for steps that do not highlight
yet.
*/
func (s Step) Input() highlight.Input {
	if !s.Highlight {
		return highlight.Input{Mode: highlight.ModeIdle}
	}
	return highlight.Input{
		Mode:   highlight.ModeSingle,
		Vector: s.Passenger.Clone(),
		Reveal: s.Reveal,
	}
}

// Passenger walked through the tutorial: a 30-year-old woman in
// 1st class paying the class-average fare.
var tutorialPassenger = feature.Vector{
	feature.Sex:    0,
	feature.Pclass: 1,
	feature.Age:    30,
	feature.Fare:   84.0,
}

var steps = []Step{
	{
		Message:    "Welcome to the Explainable AI Explorer! Let me show you how these models make predictions. We'll explore a 30-year-old woman in 1st class.",
		Passenger:  tutorialPassenger,
		Highlight:  false,
		ButtonText: "Next",
	},
	{
		Message:    "First, the decision tree splits on sex. Women had a 74% survival rate, while men had only 19%. Our passenger goes down the left (female) path.",
		Passenger:  tutorialPassenger,
		Highlight:  true,
		Reveal:     path.FirstSplit(),
		ButtonText: "Next",
	},
	{
		Message:    "Following this path leads to a 78% survival probability for women in 1st class. Now try exploring other passengers using the preset buttons, chat, or What-If controls!",
		Passenger:  tutorialPassenger,
		Highlight:  true,
		Reveal:     path.Full(),
		ButtonText: "Finish Tutorial",
	},
}

/*
Script tracks progress through the walkthrough. The zero value is
not usable; build one with New.
*/
type Script struct {
	step int
	done bool
}

// New returns a Script positioned at the first step.
func New() *Script {
	return &Script{}
}

// Len returns the number of steps in the walkthrough.
func (s *Script) Len() int {
	return len(steps)
}

// StepNumber returns the 1-based number of the current step.
func (s *Script) StepNumber() int {
	return s.step + 1
}

// Current returns the current step.
func (s *Script) Current() Step {
	return steps[s.step]
}

/*
Advance moves to the next step. Advancing past the last step
completes the walkthrough instead.
*/
func (s *Script) Advance() {
	if s.step < len(steps)-1 {
		s.step++
		return
	}
	s.done = true
}

// Skip abandons the walkthrough from any step.
func (s *Script) Skip() {
	s.done = true
}

// Done returns whether the walkthrough has completed or been
// skipped.
func (s *Script) Done() bool {
	return s.done
}
