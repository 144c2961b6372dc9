package router

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"sam@gmail.com", true},
		{" sam@gmail.com ", true},
		{"a.b@c.d", true},
		{"a@b..c.d", true},
		{"a+b@c.d", false},
		{"not..an@email", false},
		{"x@[1.2.3.4]", false},
		{"josé@clinic.fr", true},
		{"müller@praxis.de", true},
		{"sam@gmail.com please", false},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsValidEmail(tt.in); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"first of several", "cc a@b.co and c@d.org", "a@b.co", true},
		{"plus sign splits local part", "contact a+b@c.d now", "b@c.d", true},
		{"embedded in sentence", "What is aspirin? please send the answer to sam@gmail.com", "sam@gmail.com", true},
		{"unicode local part", "Tell me about aspirin and send the answer to josé@clinic.fr", "josé@clinic.fr", true},
		{"none", "send it to my doctor", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractEmail(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ExtractEmail(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
