package report

import (
	"github.com/devmaikelrm/BotModerno-sub000/model"
)

// nextStep returns the step that follows the draft's current one. A negative
// works answer skips the bands and provinces questions, which are meaningless
// when VoLTE does not work on the phone.
func nextStep(d *model.Draft) string {
	switch d.Step {
	case model.StepName:
		return model.StepModel
	case model.StepModel:
		return model.StepWorks
	case model.StepWorks:
		if d.Works != nil && *d.Works {
			return model.StepBands
		}
		return model.StepObs
	case model.StepBands:
		return model.StepProvinces
	case model.StepProvinces:
		return model.StepObs
	case model.StepObs:
		return model.StepConfirm
	}
	return d.Step
}

// previousStep is branch-aware: awaiting_obs rewinds to awaiting_provinces
// only when the draft took the works=yes branch. Going back never clears
// fields already collected; re-answering simply overwrites them.
func previousStep(d *model.Draft) string {
	switch d.Step {
	case model.StepModel:
		return model.StepName
	case model.StepWorks:
		return model.StepModel
	case model.StepBands:
		return model.StepWorks
	case model.StepProvinces:
		return model.StepBands
	case model.StepObs:
		if d.Works != nil && *d.Works {
			return model.StepProvinces
		}
		return model.StepWorks
	case model.StepConfirm:
		return model.StepObs
	}
	return d.Step
}
