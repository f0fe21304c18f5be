// Package prompts builds the system prompts for the chat companion.
// Variants adjust the register: warm for everyday support, standard as
// the default, clinical for instances run by counseling services.
package prompts

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"text/template"
	"unicode/utf8"
)

//go:embed templates/*.txt
var templateFS embed.FS

var (
	userMessageRegex        = regexp.MustCompile(`(?i)</?\s*user-message\b[^>]*>`)
	systemInstructionsRegex = regexp.MustCompile(`(?i)</?\s*system-instructions\b[^>]*>`)
)

// PromptVariant represents a chat prompt variant.
type PromptVariant string

const (
	// PromptWarm is a casual, encouraging variant.
	PromptWarm PromptVariant = "warm"
	// PromptStandard is the default supportive variant.
	PromptStandard PromptVariant = "standard"
	// PromptClinical is a measured variant for counseling-service deployments.
	PromptClinical PromptVariant = "clinical"
)

var validVariants = map[PromptVariant]bool{
	PromptWarm:     true,
	PromptStandard: true,
	PromptClinical: true,
}

var (
	loadOnce      sync.Once
	loadErr       error
	chatTemplates map[PromptVariant]*template.Template
)

// IsValidVariant checks if a prompt variant name is valid.
func IsValidVariant(v string) bool {
	return validVariants[PromptVariant(v)]
}

// ChatData holds template data for chat system prompts.
type ChatData struct {
	UserName string
	Emotion  string
}

func load() error {
	loadOnce.Do(func() {
		chatTemplates = make(map[PromptVariant]*template.Template)
		for v := range validVariants {
			file := "templates/chat_" + string(v) + ".txt"
			content, err := templateFS.ReadFile(file)
			if err != nil {
				loadErr = errors.New("failed to read prompt file " + file + ": " + err.Error())
				return
			}
			tmpl, err := template.New("chat").Parse(string(content))
			if err != nil {
				loadErr = errors.New("failed to parse prompt template " + file + ": " + err.Error())
				return
			}
			chatTemplates[v] = tmpl
		}
	})
	return loadErr
}

// BuildChatPrompt builds the system prompt for the given variant.
func BuildChatPrompt(variant PromptVariant, data ChatData) (string, error) {
	if err := load(); err != nil {
		return "", fmt.Errorf("templates load failed: %w", err)
	}
	tmpl, ok := chatTemplates[variant]
	if !ok {
		return "", errors.New("invalid prompt variant: " + string(variant))
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SanitizeMessage strips prompt-injection tags from user text and
// bounds its length before it reaches the model.
func SanitizeMessage(message string) string {
	message = userMessageRegex.ReplaceAllString(message, "")
	message = systemInstructionsRegex.ReplaceAllString(message, "")
	message = strings.TrimSpace(message)

	if message == "" {
		return "[Empty message]"
	}

	if utf8.RuneCountInString(message) > 4000 {
		runes := []rune(message)
		message = string(runes[:4000]) + "\n\n[Message truncated due to length]"
	}

	return message
}
