package templates

import (
	"strings"
	"testing"
	"time"

	"github.com/ShaikAbbuSofiyan/health-sign-up-oasis/config"
)

func TestRenderWelcome(t *testing.T) {
	cfg := &config.Config{
		AppName:     "health-sign-up-oasis",
		CompanyName: "Oasis Health",
		SupportURL:  "https://example.com/support",
	}
	data := NewWelcomeData(cfg, "johndoe", "a@b.com",
		WithTime(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)),
		WithIP("203.0.113.9"),
		WithLocation("Hyderabad, Telangana, India"),
	)

	subject, text, html, err := Render(Welcome, data)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(subject, "johndoe") {
		t.Fatalf("subject should greet the user, got %q", subject)
	}
	if strings.Contains(subject, "\n") {
		t.Fatalf("subject must be a single line, got %q", subject)
	}
	if !strings.Contains(text, "created successfully") {
		t.Fatalf("text body missing confirmation, got %q", text)
	}
	if !strings.Contains(html, "Welcome, johndoe") {
		t.Fatalf("html body missing greeting, got %q", html)
	}
	if !strings.Contains(html, "Hyderabad") {
		t.Fatalf("html body should include the signup location, got %q", html)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, _, _, err := Render("nonexistent", map[string]any{}); err == nil {
		t.Fatal("expected an error for a missing template")
	}
}
