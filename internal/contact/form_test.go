package contact

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"

	"github.com/iburimskiy/portfolio-visual/internal/validate"
)

// scriptedDialogs answers Entry prompts from a queue.
type scriptedDialogs struct {
	answers  []string
	initials []string
	errors   []string
	infos    []string
}

func (d *scriptedDialogs) Entry(_ context.Context, _, _, initial string) (string, error) {
	d.initials = append(d.initials, initial)
	if len(d.answers) == 0 {
		return "", ErrCanceled
	}
	a := d.answers[0]
	d.answers = d.answers[1:]
	return a, nil
}

func (d *scriptedDialogs) Error(_ context.Context, _, msg string) error {
	d.errors = append(d.errors, msg)
	return nil
}

func (d *scriptedDialogs) Info(_ context.Context, _, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestFormAcceptsValidInput(t *testing.T) {
	d := &scriptedDialogs{answers: []string{"Jo", "jo@x.com", "Hello there!"}}
	drafts := NewDraftStore(nil)
	got, err := NewForm(d, drafts).Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	want := validate.Fields{Name: "Jo", Email: "jo@x.com", Message: "Hello there!"}
	if got != want {
		t.Errorf("fields: got %+v, want %+v", got, want)
	}
	if len(d.errors) != 0 || len(d.infos) != 1 {
		t.Errorf("dialogs: errors=%v infos=%v", d.errors, d.infos)
	}
	if draft, _ := drafts.Load(); draft != (validate.Fields{}) {
		t.Errorf("draft not cleared: %+v", draft)
	}
}

func TestFormRepromptsWithPreviousAnswers(t *testing.T) {
	d := &scriptedDialogs{answers: []string{
		"J", "bad", "hi",
		"Jo", "jo@x.com", "Hello there!",
	}}
	if _, err := NewForm(d, nil).Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(d.errors) != 1 {
		t.Fatalf("error dialogs: got %d, want 1", len(d.errors))
	}
	want := strings.Join([]string{validate.MsgName, validate.MsgEmail, validate.MsgMessage}, "\n")
	if d.errors[0] != want {
		t.Errorf("error text:\n%s\nwant:\n%s", d.errors[0], want)
	}
	if fmt.Sprint(d.initials[3:]) != fmt.Sprint([]string{"J", "bad", "hi"}) {
		t.Errorf("second round initials: %v", d.initials[3:])
	}
}

func TestFormCancelKeepsDraft(t *testing.T) {
	d := &scriptedDialogs{answers: []string{"Jo", "jo@x.com"}}
	drafts := NewDraftStore(nil)
	_, err := NewForm(d, drafts).Run(context.Background())
	if !errors.Is(err, ErrCanceled) {
		t.Fatalf("Run error: got %v, want ErrCanceled", err)
	}

	draft, _ := drafts.Load()
	if draft.Name != "Jo" || draft.Email != "jo@x.com" {
		t.Errorf("draft: %+v", draft)
	}

	// The next attempt starts from the draft.
	d2 := &scriptedDialogs{answers: []string{"Jo", "jo@x.com", "Hello there!"}}
	if _, err := NewForm(d2, drafts).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if d2.initials[0] != "Jo" || d2.initials[1] != "jo@x.com" {
		t.Errorf("initials: %v", d2.initials)
	}
}

func TestFormContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := &scriptedDialogs{answers: []string{"Jo", "jo@x.com", "Hello there!"}}
	if _, err := NewForm(d, nil).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run error: got %v, want context.Canceled", err)
	}
	if len(d.initials) != 0 {
		t.Error("dialogs shown after cancellation")
	}
}

// blockingDialogs keeps an Entry open until its context is done, the way a
// native dialog stays up until it is dismissed or closed.
type blockingDialogs struct {
	opened chan struct{}
}

func (d *blockingDialogs) Entry(ctx context.Context, _, _, _ string) (string, error) {
	close(d.opened)
	<-ctx.Done()
	return "", ctx.Err()
}

func (d *blockingDialogs) Error(context.Context, string, string) error { return nil }
func (d *blockingDialogs) Info(context.Context, string, string) error  { return nil }

func TestFormCancelClosesOpenDialog(t *testing.T) {
	d := &blockingDialogs{opened: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := NewForm(d, nil).Run(ctx)
		done <- err
	}()

	<-d.opened
	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run error: got %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run still waiting on the dialog after cancel")
	}
}

func TestFormatErrorsOrder(t *testing.T) {
	got := FormatErrors(map[string]string{
		validate.FieldMessage: "m",
		validate.FieldName:    "n",
	})
	if got != "n\nm" {
		t.Errorf("FormatErrors = %q", got)
	}
}

func createTestGdataManager(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("portfolio_contact_test_%d", time.Now().UnixNano()),
	})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	return m
}

func TestDraftStorePersists(t *testing.T) {
	m := createTestGdataManager(t)

	s1 := NewDraftStore(m)
	want := validate.Fields{Name: "Ann", Email: "ann@example.org", Message: "half-written"}
	if err := s1.Save(want); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	s2 := NewDraftStore(m)
	got, err := s2.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != want {
		t.Errorf("draft: got %+v, want %+v", got, want)
	}

	if err := s2.Clear(); err != nil {
		t.Fatal(err)
	}
	got, _ = NewDraftStore(m).Load()
	if got != (validate.Fields{}) {
		t.Errorf("draft after Clear: %+v", got)
	}
}

func TestDraftStoreEmpty(t *testing.T) {
	m := createTestGdataManager(t)
	got, err := NewDraftStore(m).Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != (validate.Fields{}) {
		t.Errorf("fresh draft: %+v", got)
	}
}
