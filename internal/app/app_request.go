package app

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eep666/bunny-chapter-update-tool/internal/chapters"
	"github.com/eep666/bunny-chapter-update-tool/internal/dispatch"
	"github.com/eep666/bunny-chapter-update-tool/internal/ui/msgs"
)

func (a App) sendRequest() (tea.Model, tea.Cmd) {
	in := a.form.BuildInput()

	a.sending = true
	a.response.SetLoading(true, "Sending request...")
	a.statusBar.SetMessage("")

	timeout := a.cfg.DefaultTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	dispatcher := a.dispatcher
	cmd := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		res, err := dispatcher.Send(ctx, in)
		if err != nil {
			// A generation failure mid-send renders as a failure outcome;
			// validation and configuration errors abort with a message.
			var genErr *chapters.GenerationError
			if errors.As(err, &genErr) {
				return msgs.RequestSentMsg{Outcome: failureOutcome(err)}
			}
			return msgs.SendRefusedMsg{Err: err}
		}
		return msgs.RequestSentMsg{
			Outcome:       res.Outcome,
			GeneratedBody: res.GeneratedBody,
		}
	}

	return a, tea.Batch(cmd, a.response.Init())
}

func (a App) handleRequestSent(msg msgs.RequestSentMsg) (tea.Model, tea.Cmd) {
	a.sending = false

	if msg.GeneratedBody != "" {
		a.form.SetBody(msg.GeneratedBody)
	}

	o := msg.Outcome
	a.response.SetOutcome(o)
	a.statusBar.SetStatus(o.StatusLabel, o.Status, o.Duration, o.Size, o.ContentType)

	if !o.OK && o.Message != "" {
		return a, a.toast.Show("Send failed: "+o.Message, true, 4*time.Second)
	}
	return a, nil
}

func (a App) generateChapters() (tea.Model, tea.Cmd) {
	if !a.cfg.AIAvailable() {
		return a, a.toast.Show(chapters.ErrAICredentialMissing.Error(), true, 4*time.Second)
	}

	notes := a.form.BodyContent()
	if notes == "" {
		return a, a.toast.Show("Body is empty", true, 2*time.Second)
	}
	if c := chapters.Classify(notes); c.Parsed {
		return a, a.toast.Show("Body is already JSON", false, 2*time.Second)
	}

	a.generating = true
	a.response.SetLoading(true, "Generating chapters...")

	gen := a.generator
	cmd := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
		defer cancel()

		out, err := gen.Generate(ctx, notes)
		return msgs.ChaptersGeneratedMsg{JSON: out, Err: err}
	}

	return a, tea.Batch(cmd, a.response.Init())
}

func (a App) handleChaptersGenerated(msg msgs.ChaptersGeneratedMsg) (tea.Model, tea.Cmd) {
	a.generating = false
	a.response.SetLoading(false, "")

	if msg.Err != nil {
		a.response.SetOutcome(failureOutcome(msg.Err))
		return a, a.toast.Show("Generation failed: "+msg.Err.Error(), true, 5*time.Second)
	}

	a.form.SetBody(msg.JSON)
	return a, a.toast.Show("Chapters generated", false, 2*time.Second)
}

// failureOutcome wraps a pre-network error into a renderable outcome.
func failureOutcome(err error) dispatch.Outcome {
	payload, _ := json.Marshal(map[string]string{"message": err.Error()})
	return dispatch.Outcome{
		OK:          false,
		StatusLabel: dispatch.ErrLabel,
		Message:     err.Error(),
		Payload:     payload,
	}
}
