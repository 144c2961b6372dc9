package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"ikraph-email-agent/internal/agent"
	"ikraph-email-agent/internal/knowledge"
	"ikraph-email-agent/internal/mail"
	"ikraph-email-agent/internal/model"
	"ikraph-email-agent/internal/router"
	pkgLog "ikraph-email-agent/pkg/log"
)

type mockRouter struct {
	out        router.RouterOutput
	err        error
	lastPrompt string
}

func (m *mockRouter) Classify(ctx context.Context, message string) (router.RouterOutput, error) {
	m.lastPrompt = message
	return m.out, m.err
}

type mockKnowledge struct {
	out       knowledge.QueryOutput
	err       error
	lastInput knowledge.QueryInput
	calls     int
}

func (m *mockKnowledge) Query(ctx context.Context, input knowledge.QueryInput) (knowledge.QueryOutput, error) {
	m.calls++
	m.lastInput = input
	return m.out, m.err
}

type mockMail struct {
	out       mail.DeliverOutput
	err       error
	lastInput mail.DeliverInput
	calls     int
}

func (m *mockMail) Deliver(ctx context.Context, input mail.DeliverInput) (mail.DeliverOutput, error) {
	m.calls++
	m.lastInput = input
	return m.out, m.err
}

func strPtr(s string) *string { return &s }

func sendEmailRouting(to *string) router.RouterOutput {
	return router.RouterOutput{
		Intent:          router.IntentSendEmail,
		MedicalQuestion: "What is the application of Panadol?",
		Email: router.EmailBlock{
			To:      to,
			Subject: strPtr("What is the application of Panadol information"),
		},
	}
}

func newTestUseCase(t *testing.T, r *mockRouter, kn *mockKnowledge, m *mockMail) (*implUseCase, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	uc, err := New(pkgLog.NewNop(), r, kn, m, reg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return uc, reg
}

func TestAsk(t *testing.T) {
	answer := "Panadol (paracetamol) is an analgesic."
	records := []model.PathRecord{{PMIDs: []any{"123"}}}

	t.Run("answer only skips email", func(t *testing.T) {
		r := &mockRouter{out: router.RouterOutput{Intent: router.IntentAnswerOnly, MedicalQuestion: "What is aspirin?"}}
		kn := &mockKnowledge{out: knowledge.QueryOutput{Cypher: "MATCH p RETURN p", Records: records, Answer: answer}}
		m := &mockMail{}
		uc, _ := newTestUseCase(t, r, kn, m)

		out, err := uc.Ask(context.Background(), agent.AskInput{Prompt: "What is aspirin?"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Email.Status != agent.EmailStatusSkipped || out.Email.Body != "" {
			t.Errorf("expected skipped email without body, got %+v", out.Email)
		}
		if m.calls != 0 {
			t.Error("mail must not be called for answer_only")
		}
		if kn.lastInput.Question != "What is aspirin?" {
			t.Errorf("knowledge got %q", kn.lastInput.Question)
		}
		if out.Answer != answer || out.Cypher != "MATCH p RETURN p" || len(out.Records) != 1 {
			t.Errorf("unexpected output %+v", out)
		}
		if out.RunID == "" {
			t.Error("expected a run id")
		}
		if testutil.ToFloat64(uc.metrics.emailsTotal.WithLabelValues("skipped")) != 1 {
			t.Error("expected skipped email counter to be 1")
		}
		if testutil.ToFloat64(uc.metrics.runsTotal.WithLabelValues("answer_only")) != 1 {
			t.Error("expected answer_only run counter to be 1")
		}
	})

	t.Run("send email", func(t *testing.T) {
		r := &mockRouter{out: sendEmailRouting(strPtr("ian123@gmail.com"))}
		kn := &mockKnowledge{out: knowledge.QueryOutput{Answer: answer}}
		m := &mockMail{out: mail.DeliverOutput{Body: "Hello,\n\n" + answer, Transport: "smtp"}}
		uc, _ := newTestUseCase(t, r, kn, m)

		out, err := uc.Ask(context.Background(), agent.AskInput{Prompt: "What is the application of Panadol? Please send the answer to ian123@gmail.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := mail.DeliverInput{To: "ian123@gmail.com", Subject: "What is the application of Panadol information", Content: answer}
		if m.lastInput != want {
			t.Errorf("deliver input %+v, want %+v", m.lastInput, want)
		}
		if out.Email.Status != agent.EmailStatusSent || out.Email.Body != m.out.Body || out.Email.Transport != "smtp" {
			t.Errorf("unexpected email result %+v", out.Email)
		}
		if kn.lastInput.Question != "What is the application of Panadol?" {
			t.Errorf("knowledge got %q", kn.lastInput.Question)
		}
	})

	t.Run("no recipient", func(t *testing.T) {
		r := &mockRouter{out: sendEmailRouting(nil)}
		m := &mockMail{}
		uc, _ := newTestUseCase(t, r, &mockKnowledge{out: knowledge.QueryOutput{Answer: answer}}, m)

		out, err := uc.Ask(context.Background(), agent.AskInput{Prompt: "email the answer"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Email.Status != agent.EmailStatusNoRecipient || out.Email.Message != MessageNoRecipient {
			t.Errorf("unexpected email result %+v", out.Email)
		}
		if m.calls != 0 {
			t.Error("mail must not be called without a recipient")
		}
		if out.Answer != answer {
			t.Error("answer must still be returned")
		}
	})

	t.Run("delivery failure keeps the answer", func(t *testing.T) {
		r := &mockRouter{out: sendEmailRouting(strPtr("ian123@gmail.com"))}
		m := &mockMail{err: errors.New("535 auth failed"), out: mail.DeliverOutput{Body: "draft", Transport: "smtp"}}
		uc, _ := newTestUseCase(t, r, &mockKnowledge{out: knowledge.QueryOutput{Answer: answer}}, m)

		out, err := uc.Ask(context.Background(), agent.AskInput{Prompt: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Email.Status != agent.EmailStatusFailed || out.Email.Message != "535 auth failed" {
			t.Errorf("unexpected email result %+v", out.Email)
		}
		if out.Answer != answer {
			t.Error("answer must still be returned")
		}
		if testutil.ToFloat64(uc.metrics.errorsTotal.WithLabelValues(stepEmail)) != 1 {
			t.Error("expected email error counter to be 1")
		}
	})

	t.Run("transport disabled is reported as failed", func(t *testing.T) {
		r := &mockRouter{out: sendEmailRouting(strPtr("ian123@gmail.com"))}
		m := &mockMail{err: mail.ErrTransportDisabled}
		uc, _ := newTestUseCase(t, r, &mockKnowledge{}, m)

		out, _ := uc.Ask(context.Background(), agent.AskInput{Prompt: "x"})
		if out.Email.Status != agent.EmailStatusFailed {
			t.Errorf("expected failed, got %s", out.Email.Status)
		}
	})

	t.Run("empty prompt", func(t *testing.T) {
		r := &mockRouter{}
		uc, _ := newTestUseCase(t, r, &mockKnowledge{}, &mockMail{})
		if _, err := uc.Ask(context.Background(), agent.AskInput{Prompt: " \n\t"}); !errors.Is(err, agent.ErrEmptyPrompt) {
			t.Fatalf("expected ErrEmptyPrompt, got %v", err)
		}
		if r.lastPrompt != "" {
			t.Error("router must not be called")
		}
	})

	t.Run("router error", func(t *testing.T) {
		cause := errors.New("connection refused")
		kn := &mockKnowledge{}
		uc, _ := newTestUseCase(t, &mockRouter{err: cause}, kn, &mockMail{})
		if _, err := uc.Ask(context.Background(), agent.AskInput{Prompt: "x"}); !errors.Is(err, cause) {
			t.Fatalf("expected wrapped router error, got %v", err)
		}
		if kn.calls != 0 {
			t.Error("knowledge must not be called")
		}
	})

	t.Run("knowledge error", func(t *testing.T) {
		r := &mockRouter{out: sendEmailRouting(strPtr("ian123@gmail.com"))}
		m := &mockMail{}
		uc, _ := newTestUseCase(t, r, &mockKnowledge{err: knowledge.ErrEmptyCypher}, m)
		if _, err := uc.Ask(context.Background(), agent.AskInput{Prompt: "x"}); !errors.Is(err, knowledge.ErrEmptyCypher) {
			t.Fatalf("expected ErrEmptyCypher, got %v", err)
		}
		if m.calls != 0 {
			t.Error("mail must not be called")
		}
	})

	t.Run("empty question keeps routing", func(t *testing.T) {
		r := &mockRouter{out: router.RouterOutput{Intent: router.IntentSendEmail, MedicalQuestion: ""}}
		uc, _ := newTestUseCase(t, r, &mockKnowledge{err: knowledge.ErrEmptyQuestion}, &mockMail{})
		out, err := uc.Ask(context.Background(), agent.AskInput{Prompt: "please send it to me"})
		if !errors.Is(err, knowledge.ErrEmptyQuestion) {
			t.Fatalf("expected ErrEmptyQuestion, got %v", err)
		}
		if out.RunID == "" || out.Routing.Intent != router.IntentSendEmail {
			t.Errorf("expected run id and routing on failure, got %+v", out)
		}
	})

	t.Run("reuses trace id as run id", func(t *testing.T) {
		r := &mockRouter{out: router.RouterOutput{Intent: router.IntentAnswerOnly}}
		uc, _ := newTestUseCase(t, r, &mockKnowledge{}, &mockMail{})
		ctx := pkgLog.WithTraceID(context.Background(), "req-42")
		out, err := uc.Ask(ctx, agent.AskInput{Prompt: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.RunID != "req-42" {
			t.Errorf("RunID = %q", out.RunID)
		}
	})
}

func TestRoute(t *testing.T) {
	t.Run("returns routing", func(t *testing.T) {
		routing := sendEmailRouting(strPtr("ian123@gmail.com"))
		kn := &mockKnowledge{}
		uc, _ := newTestUseCase(t, &mockRouter{out: routing}, kn, &mockMail{})

		out, err := uc.Route(context.Background(), agent.RouteInput{Prompt: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Routing.Intent != router.IntentSendEmail || *out.Routing.Email.To != "ian123@gmail.com" {
			t.Errorf("unexpected routing %+v", out.Routing)
		}
		if kn.calls != 0 {
			t.Error("Route must not query the graph")
		}
	})

	t.Run("empty prompt", func(t *testing.T) {
		uc, _ := newTestUseCase(t, &mockRouter{}, &mockKnowledge{}, &mockMail{})
		if _, err := uc.Route(context.Background(), agent.RouteInput{}); !errors.Is(err, agent.ErrEmptyPrompt) {
			t.Fatalf("expected ErrEmptyPrompt, got %v", err)
		}
	})
}

func TestNewMetricsDisabled(t *testing.T) {
	uc, err := New(pkgLog.NewNop(), &mockRouter{out: router.RouterOutput{Intent: router.IntentAnswerOnly}}, &mockKnowledge{}, &mockMail{}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := uc.Ask(context.Background(), agent.AskInput{Prompt: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewSharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := New(pkgLog.NewNop(), &mockRouter{}, &mockKnowledge{}, &mockMail{}, reg)
	if err != nil {
		t.Fatalf("first New: %v", err)
	}
	second, err := New(pkgLog.NewNop(), &mockRouter{}, &mockKnowledge{}, &mockMail{}, reg)
	if err != nil {
		t.Fatalf("second New on the same registry: %v", err)
	}
	if first.metrics.runsTotal != second.metrics.runsTotal {
		t.Error("expected the second instance to reuse registered collectors")
	}
}
