package report

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devmaikelrm/BotModerno-sub000/db"
	"github.com/devmaikelrm/BotModerno-sub000/model"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db.InitDB(":memory:")
	// Each sqlite :memory: connection is its own database; keep the pool at
	// one connection so every query sees the created tables.
	db.DB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		db.DB.Close()
	})
}

func confirmedDraft(userID, commercialName, phoneModel string, works bool) *model.Draft {
	return &model.Draft{
		UserID:         userID,
		Step:           model.StepConfirm,
		CommercialName: commercialName,
		Model:          phoneModel,
		Works:          &works,
		Bands:          []string{"B3"},
		Provinces:      []string{"La Habana"},
	}
}

func TestSubmitCreatesReportAndDeletesDraft(t *testing.T) {
	setupTestDB(t)

	d := confirmedDraft("u1", "Redmi Note 12", "2209116ag", true)
	require.NoError(t, db.SaveDraft(d))

	status, r := Submit(d, "maikel")
	require.Equal(t, SubmitCreated, status)
	require.NotNil(t, r)

	// Model is canonicalized to uppercase.
	assert.Equal(t, "2209116AG", r.Model)
	assert.Equal(t, model.StatusPending, r.Status)
	assert.Equal(t, "maikel", r.AuthorNickname)

	stored, err := db.GetReport(r.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	draft, err := db.GetDraft("u1")
	require.NoError(t, err)
	assert.Nil(t, draft)
}

func TestSubmitDuplicateModelPreservesDraft(t *testing.T) {
	setupTestDB(t)

	first := confirmedDraft("u1", "Redmi Note 12", "2209116AG", true)
	status, _ := Submit(first, "maikel")
	require.Equal(t, SubmitCreated, status)

	// Same model with different casing and whitespace is still a duplicate.
	second := confirmedDraft("u2", "Redmi Note 12 Global", "  2209116ag ", false)
	require.NoError(t, db.SaveDraft(second))

	status, r := Submit(second, "otra")
	assert.Equal(t, SubmitDuplicate, status)
	assert.Nil(t, r)

	// The second user keeps their draft to go back and fix the model, and
	// the re-sent confirm prompt must still carry the back button.
	draft, err := db.GetDraft("u2")
	require.NoError(t, err)
	require.NotNil(t, draft)
	assert.Equal(t, model.StepConfirm, draft.Step)
	rows := promptComponents(draft)
	require.Len(t, rows, 1)
	row, ok := rows[0].(discordgo.ActionsRow)
	require.True(t, ok)
	assert.Len(t, row.Components, 3)

	count, err := db.CountReportsByStatus("")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSubmitInvalidDrafts(t *testing.T) {
	setupTestDB(t)

	works := true
	cases := []struct {
		name  string
		draft *model.Draft
	}{
		{"missing name", &model.Draft{UserID: "u1", Step: model.StepConfirm, Model: "X1", Works: &works}},
		{"missing model", &model.Draft{UserID: "u1", Step: model.StepConfirm, CommercialName: "Phone", Works: &works}},
		{"missing works", &model.Draft{UserID: "u1", Step: model.StepConfirm, CommercialName: "Phone", Model: "X1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, r := Submit(tc.draft, "maikel")
			assert.Equal(t, SubmitInvalid, status)
			assert.Nil(t, r)
		})
	}
}
