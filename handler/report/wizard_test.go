package report

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devmaikelrm/BotModerno-sub000/model"
)

func newDraft(userID string) *model.Draft {
	return &model.Draft{UserID: userID, Step: model.StepName}
}

// answer feeds one input through applyAnswer and asserts it was accepted.
func answer(t *testing.T, d *model.Draft, input string) answerOutcome {
	t.Helper()
	out := applyAnswer(d, input)
	require.True(t, out.save, "answer %q at step %s should advance, got reply %q", input, d.Step, out.reply)
	return out
}

func TestWizardWorksNoBranch(t *testing.T) {
	d := newDraft("u1")

	answer(t, d, "Redmi Note 12")
	assert.Equal(t, model.StepModel, d.Step)

	answer(t, d, "2209116AG")
	assert.Equal(t, model.StepWorks, d.Step)

	// A negative works answer jumps straight to observations.
	answer(t, d, "no")
	assert.Equal(t, model.StepObs, d.Step)
	require.NotNil(t, d.Works)
	assert.False(t, *d.Works)

	answer(t, d, "-")
	assert.Equal(t, model.StepConfirm, d.Step)
	assert.Empty(t, d.Observations)
}

func TestWizardWorksYesBranch(t *testing.T) {
	d := newDraft("u1")

	answer(t, d, "Galaxy A53")
	answer(t, d, "SM-A536E")
	answer(t, d, "Sí")
	assert.Equal(t, model.StepBands, d.Step)

	answer(t, d, "B3, B7 | B28;B20")
	assert.Equal(t, []string{"B3", "B7", "B28", "B20"}, d.Bands)
	assert.Equal(t, model.StepProvinces, d.Step)

	answer(t, d, "La Habana, Matanzas")
	assert.Equal(t, []string{"La Habana", "Matanzas"}, d.Provinces)
	assert.Equal(t, model.StepObs, d.Step)

	answer(t, d, "Funciona tras actualizar")
	assert.Equal(t, model.StepConfirm, d.Step)
	assert.Equal(t, "Funciona tras actualizar", d.Observations)
}

func TestWizardRejectsBadAnswers(t *testing.T) {
	d := newDraft("u1")

	// Too-short name does not advance.
	out := applyAnswer(d, " a ")
	assert.False(t, out.save)
	assert.Equal(t, model.StepName, d.Step)
	assert.NotEmpty(t, out.reply)

	answer(t, d, "Redmi Note 12")

	out = applyAnswer(d, "   ")
	assert.False(t, out.save)
	assert.Equal(t, model.StepModel, d.Step)

	answer(t, d, "2209116AG")

	out = applyAnswer(d, "tal vez")
	assert.False(t, out.save)
	assert.Equal(t, model.StepWorks, d.Step)
	assert.Nil(t, d.Works)
}

func TestWizardBandsSentinel(t *testing.T) {
	works := true
	d := &model.Draft{UserID: "u1", Step: model.StepBands, Works: &works}

	// Diacritics and case do not matter for the sentinel.
	answer(t, d, "Desconocido")
	assert.Nil(t, d.Bands)
	assert.Equal(t, model.StepProvinces, d.Step)

	// Separators alone parse to nothing and get re-prompted.
	d.Step = model.StepBands
	out := applyAnswer(d, ", ; |")
	assert.False(t, out.save)
	assert.Equal(t, model.StepBands, d.Step)
}

func TestWizardProvincesSentinel(t *testing.T) {
	works := true
	d := &model.Draft{UserID: "u1", Step: model.StepProvinces, Works: &works, Provinces: []string{"Pinar del Río"}}

	answer(t, d, " - ")
	assert.Nil(t, d.Provinces)
	assert.Equal(t, model.StepObs, d.Step)
}

func TestWizardConfirmDecline(t *testing.T) {
	works := false
	d := &model.Draft{
		UserID:         "u1",
		Step:           model.StepConfirm,
		CommercialName: "Redmi Note 12",
		Model:          "2209116AG",
		Works:          &works,
	}

	out := applyAnswer(d, "no")
	assert.True(t, out.remove)
	assert.False(t, out.submit)

	out = applyAnswer(d, "si")
	assert.True(t, out.submit)
}

func TestWizardUnknownStepDiscardsDraft(t *testing.T) {
	d := &model.Draft{UserID: "u1", Step: "awaiting_nothing"}

	out := applyAnswer(d, "hola")
	assert.True(t, out.remove)
}

func TestWizardStepsStayKnown(t *testing.T) {
	known := map[string]bool{}
	for _, s := range model.AllSteps {
		known[s] = true
	}

	inputs := []string{"Redmi Note 12", "2209116AG", "si", "B3,B7", "La Habana", "-"}
	d := newDraft("u1")
	for _, in := range inputs {
		answer(t, d, in)
		assert.True(t, known[d.Step], "step %q is not a known step", d.Step)
	}
	assert.Equal(t, model.StepConfirm, d.Step)
}

func TestPreviousStepBranchAware(t *testing.T) {
	yes, no := true, false

	d := &model.Draft{Step: model.StepObs, Works: &yes}
	assert.Equal(t, model.StepProvinces, previousStep(d))

	d = &model.Draft{Step: model.StepObs, Works: &no}
	assert.Equal(t, model.StepWorks, previousStep(d))

	d = &model.Draft{Step: model.StepName}
	assert.Equal(t, model.StepName, previousStep(d))

	d = &model.Draft{Step: model.StepConfirm, Works: &yes}
	assert.Equal(t, model.StepObs, previousStep(d))
}

func TestRenderSummaryShowsDashes(t *testing.T) {
	works := false
	d := &model.Draft{
		UserID:         "u1",
		Step:           model.StepConfirm,
		CommercialName: "Redmi Note 12",
		Model:          "2209116AG",
		Works:          &works,
	}

	summary := renderSummary(d)
	assert.Contains(t, summary, "Redmi Note 12")
	assert.Contains(t, summary, "2209116AG")
	assert.Contains(t, summary, "VoLTE funciona: No")
	assert.Contains(t, summary, "—")
	assert.Contains(t, summary, "¿Confirmas el envío?")
}

func TestPromptComponentsPerStep(t *testing.T) {
	d := newDraft("u1")
	assert.Nil(t, promptComponents(d))

	d.Step = model.StepWorks
	rows := promptComponents(d)
	require.Len(t, rows, 1)
	row, ok := rows[0].(discordgo.ActionsRow)
	require.True(t, ok)
	// Sí, No, Atrás, Cancelar.
	assert.Len(t, row.Components, 4)

	d.Step = model.StepConfirm
	rows = promptComponents(d)
	require.Len(t, rows, 1)
	row = rows[0].(discordgo.ActionsRow)
	// Confirmar, Atrás, Cancelar.
	assert.Len(t, row.Components, 3)

	d.Step = model.StepModel
	rows = promptComponents(d)
	require.Len(t, rows, 1)
	row = rows[0].(discordgo.ActionsRow)
	assert.Len(t, row.Components, 2)
}
