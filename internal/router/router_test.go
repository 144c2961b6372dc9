package router

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"ikraph-email-agent/pkg/llmprovider"
)

// stubProvider returns a fixed text or error. It never mutates itself on calls.
type stubProvider struct {
	text string
	err  error
}

func (s stubProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{Text: s.text, ProviderName: "stub", ModelName: "stub-model"}, nil
}

func (s stubProvider) Name() string  { return "stub" }
func (s stubProvider) Model() string { return "stub-model" }

// recordingProvider captures the last request.
type recordingProvider struct {
	stubProvider
	last *llmprovider.Request
}

func (r *recordingProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	r.last = req
	return r.stubProvider.GenerateContent(ctx, req)
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	mu       sync.Mutex
	warns    int
	lastWarn string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	m.warns++
	m.lastWarn = fmt.Sprintf(template, arg...)
	m.mu.Unlock()
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func strPtr(s string) *string { return &s }

func assertStrPtr(t *testing.T, field string, got, want *string) {
	t.Helper()
	switch {
	case got == nil && want == nil:
	case got == nil || want == nil:
		t.Errorf("%s: got %v, want %v", field, deref(got), deref(want))
	case *got != *want:
		t.Errorf("%s: got %q, want %q", field, *got, *want)
	}
}

func deref(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func classify(t *testing.T, modelText, input string) (RouterOutput, *mockLogger) {
	t.Helper()
	logger := &mockLogger{}
	out, err := New(stubProvider{text: modelText}, logger).Classify(context.Background(), input)
	if err != nil {
		t.Fatalf("Classify() unexpected error: %v", err)
	}
	return out, logger
}

func TestClassify_FallbackWithEmail(t *testing.T) {
	out, logger := classify(t, "I cannot produce JSON today.", "What is aspirin? please send the answer to sam@gmail.com")

	if out.Intent != IntentSendEmail {
		t.Errorf("intent = %s", out.Intent)
	}
	if out.MedicalQuestion != "What is aspirin?" {
		t.Errorf("medical_question = %q", out.MedicalQuestion)
	}
	assertStrPtr(t, "to", out.Email.To, strPtr("sam@gmail.com"))
	assertStrPtr(t, "subject", out.Email.Subject, strPtr("What is aspirin information"))
	if logger.warns != 1 {
		t.Errorf("expected fallback to be logged once, got %d", logger.warns)
	}
}

func TestClassify_FallbackUnicodeRecipient(t *testing.T) {
	out, _ := classify(t, "not json", "Tell me about aspirin to josé@clinic.fr")

	if out.Intent != IntentSendEmail {
		t.Errorf("intent = %s", out.Intent)
	}
	if out.MedicalQuestion != "Tell me about aspirin" {
		t.Errorf("medical_question = %q", out.MedicalQuestion)
	}
	assertStrPtr(t, "to", out.Email.To, strPtr("josé@clinic.fr"))
}

func TestClassify_FallbackLogIsTruncated(t *testing.T) {
	raw := strings.Repeat("é", 5000)
	_, logger := classify(t, raw, "What is aspirin?")

	if logger.warns != 1 {
		t.Fatalf("expected one warning, got %d", logger.warns)
	}
	if strings.Contains(logger.lastWarn, strings.Repeat("é", LogRawOutputMaxRunes+1)) {
		t.Errorf("raw model output was logged in full")
	}
	if !strings.Contains(logger.lastWarn, strings.Repeat("é", LogRawOutputMaxRunes)+"...") {
		t.Errorf("expected truncated output in log, got %d bytes", len(logger.lastWarn))
	}
}

func TestTruncateForLog(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short", "abc", "abc"},
		{"exact", strings.Repeat("x", LogRawOutputMaxRunes), strings.Repeat("x", LogRawOutputMaxRunes)},
		{"long multibyte", strings.Repeat("ü", LogRawOutputMaxRunes+3), strings.Repeat("ü", LogRawOutputMaxRunes) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateForLog(tt.in); got != tt.want {
				t.Errorf("truncateForLog() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassify_FallbackWithoutEmail(t *testing.T) {
	out, _ := classify(t, "", "what is the capital of Japan?")

	if out.Intent != IntentAnswerOnly {
		t.Errorf("intent = %s", out.Intent)
	}
	if out.MedicalQuestion != "what is the capital of Japan?" {
		t.Errorf("medical_question = %q", out.MedicalQuestion)
	}
	assertStrPtr(t, "to", out.Email.To, nil)
	assertStrPtr(t, "subject", out.Email.Subject, nil)
}

func TestClassify_BraceExtraction(t *testing.T) {
	model := `Sure! {"intent": "answer_only", "medical_question": "X", "email": null} Hope that helps!`
	out, logger := classify(t, model, "anything")

	if out.Intent != IntentAnswerOnly || out.MedicalQuestion != "X" {
		t.Errorf("got %+v", out)
	}
	assertStrPtr(t, "to", out.Email.To, nil)
	assertStrPtr(t, "subject", out.Email.Subject, nil)
	if logger.warns != 0 {
		t.Errorf("brace extraction must not count as a fallback")
	}
}

func TestClassify_Normalization(t *testing.T) {
	tests := []struct {
		name        string
		model       string
		input       string
		wantIntent  Intent
		wantQ       string
		wantTo      *string
		wantSubject *string
	}{
		{
			name:        "model output kept when valid",
			model:       `{"intent":"send_email","medical_question":"What is aspirin?","email":{"to":"sam@gmail.com","subject":"Aspirin"}}`,
			input:       "What is aspirin? send it to sam@gmail.com",
			wantIntent:  IntentSendEmail,
			wantQ:       "What is aspirin?",
			wantTo:      strPtr("sam@gmail.com"),
			wantSubject: strPtr("Aspirin"),
		},
		{
			name:        "leaked instruction re-cleaned",
			model:       `{"intent":"send_email","medical_question":"What is aspirin? please send the answer to sam@gmail.com","email":{"to":"sam@gmail.com","subject":null}}`,
			input:       "What is aspirin? please send the answer to sam@gmail.com",
			wantIntent:  IntentSendEmail,
			wantQ:       "What is aspirin?",
			wantTo:      strPtr("sam@gmail.com"),
			wantSubject: strPtr("What is aspirin information"),
		},
		{
			name:        "invalid recipient replaced from raw text",
			model:       `{"intent":"send_email","medical_question":"What is warfarin?","email":{"to":"Sam at gmail","subject":""}}`,
			input:       "What is warfarin? mail it to sam.o@clinic.org",
			wantIntent:  IntentSendEmail,
			wantQ:       "What is warfarin?",
			wantTo:      strPtr("sam.o@clinic.org"),
			wantSubject: strPtr("What is warfarin information"),
		},
		{
			name:        "no recipient anywhere stays absent",
			model:       `{"intent":"send_email","medical_question":"What is warfarin?","email":{"to":null,"subject":null}}`,
			input:       "What is warfarin? email it to my doctor",
			wantIntent:  IntentSendEmail,
			wantQ:       "What is warfarin?",
			wantTo:      nil,
			wantSubject: strPtr("What is warfarin information"),
		},
		{
			name:        "recipient trimmed",
			model:       `{"intent":"send_email","medical_question":"Q?","email":{"to":"  sam@gmail.com ","subject":"S"}}`,
			input:       "Q?",
			wantIntent:  IntentSendEmail,
			wantQ:       "Q?",
			wantTo:      strPtr("sam@gmail.com"),
			wantSubject: strPtr("S"),
		},
		{
			name:       "answer_only clears email fields",
			model:      `{"intent":"answer_only","medical_question":"What is aspirin?","email":{"to":"sam@gmail.com","subject":"Aspirin"}}`,
			input:      "What is aspirin?",
			wantIntent: IntentAnswerOnly,
			wantQ:      "What is aspirin?",
		},
		{
			name:       "unknown intent coerced",
			model:      `{"intent":"SEND","medical_question":"What is aspirin?","email":{"to":"sam@gmail.com","subject":"x"}}`,
			input:      "What is aspirin? to sam@gmail.com",
			wantIntent: IntentAnswerOnly,
			wantQ:      "What is aspirin?",
		},
		{
			name:       "non-string fields read as absent",
			model:      `{"intent":1,"medical_question":["a"],"email":"sam@gmail.com"}`,
			input:      "What is aspirin? to sam@gmail.com",
			wantIntent: IntentAnswerOnly,
			wantQ:      "",
		},
		{
			name:        "email block of wrong type",
			model:       `{"intent":"send_email","medical_question":"What is aspirin?","email":"sam@gmail.com"}`,
			input:       "What is aspirin? to sam@gmail.com",
			wantIntent:  IntentSendEmail,
			wantQ:       "What is aspirin?",
			wantTo:      strPtr("sam@gmail.com"),
			wantSubject: strPtr("What is aspirin information"),
		},
		{
			name:        "valid json that is not an object falls back",
			model:       `["send_email"]`,
			input:       "Does metformin cause weight loss? to kim@uni.edu",
			wantIntent:  IntentSendEmail,
			wantQ:       "Does metformin cause weight loss?",
			wantTo:      strPtr("kim@uni.edu"),
			wantSubject: strPtr("Does metformin cause weight loss information"),
		},
		{
			name:       "json null falls back",
			model:      `null`,
			input:      "Does metformin cause weight loss?",
			wantIntent: IntentAnswerOnly,
			wantQ:      "Does metformin cause weight loss?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := classify(t, tt.model, tt.input)
			if out.Intent != tt.wantIntent {
				t.Errorf("intent = %s, want %s", out.Intent, tt.wantIntent)
			}
			if out.MedicalQuestion != tt.wantQ {
				t.Errorf("medical_question = %q, want %q", out.MedicalQuestion, tt.wantQ)
			}
			assertStrPtr(t, "to", out.Email.To, tt.wantTo)
			assertStrPtr(t, "subject", out.Email.Subject, tt.wantSubject)
		})
	}
}

func TestClassify_Invariants(t *testing.T) {
	models := []string{
		"",
		"garbage",
		"{",
		"}{",
		`{"intent":"send_email"}`,
		`{"intent":"send_email","email":{"to":"not-an-address"}}`,
		`{"intent":"answer_only","email":{"to":"a@b.co"}}`,
		`{"intent":"maybe"}`,
		`42`,
		`"send_email"`,
	}
	inputs := []string{
		"",
		"What is aspirin?",
		"What is aspirin? please send the answer to sam@gmail.com",
		"email the answer to a+b@c.d",
		"send it to nobody",
	}

	for _, model := range models {
		for _, input := range inputs {
			out, _ := classify(t, model, input)

			if !out.Intent.Valid() {
				t.Errorf("model=%q input=%q: invalid intent %q", model, input, out.Intent)
			}
			if out.Intent == IntentAnswerOnly && (out.Email.To != nil || out.Email.Subject != nil) {
				t.Errorf("model=%q input=%q: answer_only with email fields %+v", model, input, out.Email)
			}
			if out.Intent == IntentSendEmail {
				if to, ok := out.Recipient(); ok && !IsValidEmail(to) {
					t.Errorf("model=%q input=%q: invalid recipient %q", model, input, to)
				}
				if _, ok := out.Subject(); !ok {
					t.Errorf("model=%q input=%q: send_email without subject", model, input)
				}
			}
		}
	}
}

func TestClassify_Request(t *testing.T) {
	p := &recordingProvider{stubProvider: stubProvider{text: `{"intent":"answer_only","medical_question":"Q?"}`}}
	if _, err := New(p, &mockLogger{}).Classify(context.Background(), "Q?"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.last == nil {
		t.Fatal("provider not called")
	}
	if !p.last.JSONMode || p.last.Temperature != RouterTemperature {
		t.Errorf("unexpected request options %+v", p.last)
	}
	if !strings.HasPrefix(p.last.Prompt, "You are an intent router") {
		t.Errorf("prompt does not start with the instruction: %q", p.last.Prompt[:40])
	}
	if !strings.HasSuffix(p.last.Prompt, "\n\nUser message:\nQ?\n") {
		t.Errorf("prompt does not end with the user message: %q", p.last.Prompt)
	}
}

func TestClassify_TransportError(t *testing.T) {
	cause := errors.New("connection refused")
	_, err := New(stubProvider{err: cause}, &mockLogger{}).Classify(context.Background(), "What is aspirin? to sam@gmail.com")
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
}

func TestClassify_Concurrent(t *testing.T) {
	r := New(stubProvider{text: "not json"}, &mockLogger{})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := r.Classify(context.Background(), "What is aspirin? to sam@gmail.com")
			if err != nil || out.Intent != IntentSendEmail {
				t.Errorf("unexpected result %+v, %v", out, err)
			}
		}()
	}
	wg.Wait()
}
