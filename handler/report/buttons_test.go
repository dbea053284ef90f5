package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devmaikelrm/BotModerno-sub000/db"
	"github.com/devmaikelrm/BotModerno-sub000/model"
)

func TestResolveWizardPressStaleToken(t *testing.T) {
	setupTestDB(t)

	works := true
	d := &model.Draft{UserID: "u1", Step: model.StepConfirm, CommercialName: "Redmi Note 12", Model: "2209116AG", Works: &works}
	require.NoError(t, db.SaveDraft(d))
	require.NoError(t, db.DeleteDraft("u1"))

	// Re-sending a token after the draft is gone is a silent no-op.
	action, _, draft := resolveWizardPress("wizard:confirm:u1", "u1")
	assert.Equal(t, pressIgnore, action)
	assert.Nil(t, draft)
}

func TestResolveWizardPressWrongActor(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, db.SaveDraft(&model.Draft{UserID: "u1", Step: model.StepConfirm}))

	// A forwarded token pressed by someone else must not touch the draft.
	action, _, _ := resolveWizardPress("wizard:confirm:u1", "u2")
	assert.Equal(t, pressIgnore, action)

	action, _, _ = resolveWizardPress("wizard:confirm:u1", "")
	assert.Equal(t, pressIgnore, action)
}

func TestResolveWizardPressWorksButtons(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, db.SaveDraft(&model.Draft{UserID: "u1", Step: model.StepWorks}))

	action, input, d := resolveWizardPress("wizard:works:yes:u1", "u1")
	assert.Equal(t, pressAnswer, action)
	assert.Equal(t, "si", input)
	require.NotNil(t, d)
	assert.Equal(t, model.StepWorks, d.Step)

	action, input, _ = resolveWizardPress("wizard:works:no:u1", "u1")
	assert.Equal(t, pressAnswer, action)
	assert.Equal(t, "no", input)
}

func TestResolveWizardPressWrongStep(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, db.SaveDraft(&model.Draft{UserID: "u1", Step: model.StepName}))

	// Buttons from an earlier prompt arriving out of step do nothing.
	action, _, _ := resolveWizardPress("wizard:works:yes:u1", "u1")
	assert.Equal(t, pressIgnore, action)

	action, _, _ = resolveWizardPress("wizard:confirm:u1", "u1")
	assert.Equal(t, pressIgnore, action)
}

func TestResolveWizardPressBackAndCancel(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, db.SaveDraft(&model.Draft{UserID: "u1", Step: model.StepModel}))

	action, _, d := resolveWizardPress("wizard:back:u1", "u1")
	assert.Equal(t, pressBack, action)
	require.NotNil(t, d)

	action, _, _ = resolveWizardPress("wizard:cancel:u1", "u1")
	assert.Equal(t, pressCancel, action)
}

func TestResolveWizardPressMalformedToken(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, db.SaveDraft(&model.Draft{UserID: "u1", Step: model.StepModel}))

	action, _, _ := resolveWizardPress("wizard:back", "u1")
	assert.Equal(t, pressIgnore, action)

	action, _, _ = resolveWizardPress("wizard:shrug:u1", "u1")
	assert.Equal(t, pressIgnore, action)
}
