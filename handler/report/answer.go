package report

import (
	"strings"

	"github.com/devmaikelrm/BotModerno-sub000/model"
	"github.com/devmaikelrm/BotModerno-sub000/textutil"
)

// Literal answers that mean "none" at the list and observation steps.
const (
	bandsSentinel     = "desconocido"
	provincesSentinel = "-"
	obsSentinel       = "-"
)

// answerOutcome is what the wizard decided for one user answer. Exactly one
// of save, remove or submit is set, unless the answer was rejected, in which
// case all are false and reply carries the re-prompt.
type answerOutcome struct {
	reply  string
	save   bool // persist the draft and move on
	remove bool // delete the draft (cancelled)
	submit bool // confirmed, run the submission
}

// applyAnswer validates one answer against the draft's current step,
// mutating the draft on acceptance. Both free-text messages and button
// presses funnel through here, so the two input modalities cannot diverge.
// It never touches storage; the caller persists before prompting.
func applyAnswer(d *model.Draft, input string) answerOutcome {
	switch d.Step {
	case model.StepName:
		name := textutil.CollapseSpaces(input)
		if len([]rune(name)) < 2 {
			return answerOutcome{reply: "El nombre es demasiado corto. Escribe el nombre comercial del teléfono (ej: Redmi Note 12)."}
		}
		d.CommercialName = name

	case model.StepModel:
		m := strings.TrimSpace(input)
		if m == "" {
			return answerOutcome{reply: "Necesito el modelo exacto del teléfono (ej: 2209116AG)."}
		}
		// Canonicalized (uppercased) only at submission time.
		d.Model = m

	case model.StepWorks:
		v, ok := textutil.ParseYesNo(input)
		if !ok {
			return answerOutcome{reply: "No te entendí. ¿Funciona el VoLTE? Responde sí o no."}
		}
		d.Works = &v

	case model.StepBands:
		if textutil.Normalize(input) == bandsSentinel {
			d.Bands = nil
		} else {
			bands := textutil.ParseList(input)
			if len(bands) == 0 {
				return answerOutcome{reply: "No reconocí ninguna banda. Sepáralas con comas, o escribe \"desconocido\"."}
			}
			d.Bands = bands
		}

	case model.StepProvinces:
		if strings.TrimSpace(input) == provincesSentinel {
			d.Provinces = nil
		} else {
			provinces := textutil.ParseList(input)
			if len(provinces) == 0 {
				return answerOutcome{reply: "No reconocí ninguna provincia. Sepáralas con comas, o escribe \"-\"."}
			}
			d.Provinces = provinces
		}

	case model.StepObs:
		obs := strings.TrimSpace(input)
		if obs == obsSentinel {
			obs = ""
		}
		d.Observations = obs

	case model.StepConfirm:
		v, ok := textutil.ParseYesNo(input)
		if !ok {
			return answerOutcome{reply: "Responde sí para enviar el reporte, o no para descartarlo."}
		}
		if v {
			return answerOutcome{submit: true}
		}
		return answerOutcome{remove: true, reply: "Reporte descartado. Puedes empezar de nuevo con /reporte."}

	default:
		// A draft with an unknown step is unusable; throw it away.
		return answerOutcome{remove: true, reply: "Tu reporte anterior quedó en un estado inválido y fue descartado. Empieza de nuevo con /reporte."}
	}

	d.Step = nextStep(d)
	return answerOutcome{save: true, reply: prompt(d)}
}
