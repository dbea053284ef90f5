package model

// Wizard steps, in conversation order. The step stored on a draft is the
// question the user has not answered yet.
const (
	StepName      = "awaiting_name"
	StepModel     = "awaiting_model"
	StepWorks     = "awaiting_works"
	StepBands     = "awaiting_bands"
	StepProvinces = "awaiting_provinces"
	StepObs       = "awaiting_obs"
	StepConfirm   = "confirm"
)

// AllSteps lists every valid wizard step.
var AllSteps = []string{
	StepName, StepModel, StepWorks, StepBands, StepProvinces, StepObs, StepConfirm,
}

// Draft accumulates one user's wizard answers. There is at most one draft
// per user; the step field is the source of truth for which of the optional
// fields have been filled in.
type Draft struct {
	UserID         string
	Step           string
	CommercialName string
	Model          string
	Works          *bool // nil until the works question is answered
	Bands          []string
	Provinces      []string
	Observations   string
	UpdatedAt      int64
}
