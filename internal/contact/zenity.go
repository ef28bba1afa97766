package contact

import (
	"context"
	"errors"

	"github.com/ncruces/zenity"
)

// ZenityDialogs shows native dialogs. A dialog is closed when its context
// is done.
type ZenityDialogs struct{}

func (ZenityDialogs) Entry(ctx context.Context, title, prompt, initial string) (string, error) {
	s, err := zenity.Entry(prompt,
		zenity.Title(title),
		zenity.EntryText(initial),
		zenity.Context(ctx))
	if errors.Is(err, zenity.ErrCanceled) {
		return "", ErrCanceled
	}
	return s, err
}

func (ZenityDialogs) Error(ctx context.Context, title, msg string) error {
	err := zenity.Error(msg, zenity.Title(title), zenity.ErrorIcon, zenity.Context(ctx))
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	return err
}

func (ZenityDialogs) Info(ctx context.Context, title, msg string) error {
	err := zenity.Info(msg, zenity.Title(title), zenity.InfoIcon, zenity.Context(ctx))
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	return err
}
