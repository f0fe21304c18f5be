package i18n

import (
	"context"
	"testing"
)

func initLang(t *testing.T, lang string) context.Context {
	t.Helper()
	if err := Init(lang); err != nil {
		t.Fatalf("Init(%q): %v", lang, err)
	}
	loc := NewLocalizer(lang)
	return WithLocalizer(context.Background(), loc)
}

func TestTranslateEnglish(t *testing.T) {
	ctx := initLang(t, "en")

	got := T(ctx, "AppTitle")
	if got != "CuraCore" {
		t.Errorf("T(AppTitle) = %q, want 'CuraCore'", got)
	}

	got = T(ctx, "LoginError")
	if got != "Invalid email or password." {
		t.Errorf("T(LoginError) = %q, want 'Invalid email or password.'", got)
	}
}

func TestTranslateHindi(t *testing.T) {
	ctx := initLang(t, "hi")

	got := T(ctx, "LoginError")
	if got != "ईमेल या पासवर्ड गलत है।" {
		t.Errorf("T(LoginError) = %q, want Hindi translation", got)
	}

	got = T(ctx, "RegisterEmailTaken")
	if got != "इस ईमेल से खाता पहले से मौजूद है।" {
		t.Errorf("T(RegisterEmailTaken) = %q, want Hindi translation", got)
	}
}

func TestPluralTranslation(t *testing.T) {
	ctx := initLang(t, "en")

	got1 := Tp(ctx, "CrisisAlertCount", 1)
	if got1 != "1 crisis alert needs review." {
		t.Errorf("Tp(CrisisAlertCount, 1) = %q, want '1 crisis alert needs review.'", got1)
	}

	got5 := Tp(ctx, "CrisisAlertCount", 5)
	if got5 != "5 crisis alerts need review." {
		t.Errorf("Tp(CrisisAlertCount, 5) = %q, want '5 crisis alerts need review.'", got5)
	}
}

func TestTemplateDataTranslation(t *testing.T) {
	ctx := initLang(t, "en")

	got := Td(ctx, "WelcomeUser", map[string]any{"Name": "Asha"})
	if got != "Welcome, Asha!" {
		t.Errorf("Td(WelcomeUser, Name=Asha) = %q, want 'Welcome, Asha!'", got)
	}
}

func TestMissingKey(t *testing.T) {
	ctx := initLang(t, "en")

	got := T(ctx, "NonExistentKey")
	if got != "NonExistentKey" {
		t.Errorf("T(NonExistentKey) = %q, want 'NonExistentKey'", got)
	}
}
