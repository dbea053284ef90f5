package report

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/devmaikelrm/BotModerno-sub000/db"
	"github.com/devmaikelrm/BotModerno-sub000/model"
	"github.com/devmaikelrm/BotModerno-sub000/textutil"
)

// SubmitStatus is the tagged outcome of a submission attempt. Keeping the
// duplicate case as its own value forces callers to message the user
// precisely instead of showing a generic failure.
type SubmitStatus int

const (
	// SubmitCreated means the report was stored and the draft deleted.
	SubmitCreated SubmitStatus = iota
	// SubmitDuplicate means another report already holds this canonical
	// model identifier. The draft is preserved so the user can go back and
	// change the model, or cancel.
	SubmitDuplicate
	// SubmitInvalid means the draft failed schema validation.
	SubmitInvalid
	// SubmitFailed means a transient storage error; the draft is preserved.
	SubmitFailed
)

// Submit canonicalizes and validates a confirmed draft and inserts it as a
// pending report. The reports table's uniqueness constraint on the canonical
// model is the sole arbiter of concurrent submissions of the same model:
// exactly one caller gets SubmitCreated, the rest get SubmitDuplicate.
func Submit(d *model.Draft, nickname string) (SubmitStatus, *model.Report) {
	r := &model.Report{
		ID:             uuid.NewString(),
		UserID:         d.UserID,
		AuthorNickname: nickname,
		CommercialName: textutil.CollapseSpaces(d.CommercialName),
		Model:          strings.ToUpper(strings.TrimSpace(d.Model)),
		Bands:          d.Bands,
		Provinces:      d.Provinces,
		Observations:   d.Observations,
		Status:         model.StatusPending,
		CreatedAt:      time.Now().Unix(),
	}

	if r.CommercialName == "" || r.Model == "" || d.Works == nil {
		return SubmitInvalid, nil
	}
	r.Works = *d.Works

	if err := db.InsertReport(r); err != nil {
		if errors.Is(err, db.ErrDuplicateModel) {
			return SubmitDuplicate, nil
		}
		log.Printf("Error inserting report for user %s (model %s): %v", d.UserID, r.Model, err)
		return SubmitFailed, nil
	}

	// The report exists; losing the draft cleanup only means the user sees a
	// stale wizard once more.
	if err := db.DeleteDraft(d.UserID); err != nil {
		log.Printf("Error deleting draft for user %s after submission: %v", d.UserID, err)
	}

	return SubmitCreated, r
}
