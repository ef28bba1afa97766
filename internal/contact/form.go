// Package contact runs the contact form through native dialogs. Input is
// validated and acknowledged; nothing is sent anywhere.
package contact

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/iburimskiy/portfolio-visual/internal/validate"
)

// ErrCanceled is returned when the visitor dismisses a dialog.
var ErrCanceled = errors.New("contact: canceled")

const title = "Contact"

// Dialogs is the native dialog surface the form talks to. Implementations
// close an open dialog and return once ctx is done.
type Dialogs interface {
	Entry(ctx context.Context, title, prompt, initial string) (string, error)
	Error(ctx context.Context, title, msg string) error
	Info(ctx context.Context, title, msg string) error
}

// Form collects name, email and message until they validate.
type Form struct {
	dialogs Dialogs
	drafts  *DraftStore
}

// NewForm creates a form. drafts may be nil.
func NewForm(d Dialogs, drafts *DraftStore) *Form {
	if drafts == nil {
		drafts = NewDraftStore(nil)
	}
	return &Form{dialogs: d, drafts: drafts}
}

type prompt struct {
	key   string
	label string
	field func(*validate.Fields) *string
}

var prompts = []prompt{
	{validate.FieldName, "Your name", func(f *validate.Fields) *string { return &f.Name }},
	{validate.FieldEmail, "Your email address", func(f *validate.Fields) *string { return &f.Email }},
	{validate.FieldMessage, "Your message", func(f *validate.Fields) *string { return &f.Message }},
}

// Run prompts for every field, re-prompting with the previous answers while
// any of them is invalid. It returns the accepted input, or ErrCanceled.
func (f *Form) Run(ctx context.Context) (validate.Fields, error) {
	cur, err := f.drafts.Load()
	if err != nil {
		slog.Warn("contact_draft_unavailable", "error", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return cur, err
		}

		for _, p := range prompts {
			dst := p.field(&cur)
			v, err := f.dialogs.Entry(ctx, title, p.label, *dst)
			if err != nil {
				f.saveDraft(cur)
				if ctx.Err() != nil {
					return cur, ctx.Err()
				}
				return cur, err
			}
			*dst = v
		}
		f.saveDraft(cur)

		res := validate.Form(cur)
		if res.Valid {
			if err := f.drafts.Clear(); err != nil {
				slog.Warn("contact_draft_clear_failed", "error", err)
			}
			slog.Info("contact_form_accepted", "name", strings.TrimSpace(cur.Name))
			return cur, f.dialogs.Info(ctx, title, "Thanks! Your message looks good.")
		}

		slog.Info("contact_form_rejected", "fields", len(res.Errors))
		if err := f.dialogs.Error(ctx, title, FormatErrors(res.Errors)); err != nil {
			return cur, err
		}
	}
}

func (f *Form) saveDraft(cur validate.Fields) {
	if err := f.drafts.Save(cur); err != nil {
		slog.Warn("contact_draft_save_failed", "error", err)
	}
}

// FormatErrors lists the messages in form order, one per line.
func FormatErrors(errs map[string]string) string {
	var lines []string
	for _, p := range prompts {
		if msg, ok := errs[p.key]; ok {
			lines = append(lines, msg)
		}
	}
	return strings.Join(lines, "\n")
}
