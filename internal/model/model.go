package model

import (
	"context"
	"time"
)

// UserRole represents a user's access level.
type UserRole string

const (
	// UserRoleStudent is a regular student user role.
	UserRoleStudent UserRole = "student"
	// UserRoleCounselor is a counselor user role with access to crisis alerts.
	UserRoleCounselor UserRole = "counselor"
	// UserRoleAdmin is an admin user role.
	UserRoleAdmin UserRole = "admin"
)

// User represents a system user.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	Active       bool
	Streak       int
	Badges       []string
	JoinDate     time.Time
	CreatedAt    time.Time
}

// AuthSession represents an authentication session.
type AuthSession struct {
	ID        string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

type userCtxKey struct{}

// ContextWithUser stores a user in the request context.
func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, u)
}

// UserFromContext retrieves the authenticated user from context, or nil.
func UserFromContext(ctx context.Context) *User {
	u, _ := ctx.Value(userCtxKey{}).(*User)
	return u
}

// ChatEntry is one user/bot exchange in the chat log.
type ChatEntry struct {
	ID              int64              `json:"id"`
	UserID          int64              `json:"user_id"`
	UserMessage     string             `json:"user_message"`
	BotResponse     string             `json:"bot_response"`
	Mood            string             `json:"mood,omitempty"`
	DetectedEmotion string             `json:"detected_emotion,omitempty"`
	EmotionScores   map[string]float64 `json:"emotion_scores,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

// MoodEntry is a single mood check-in, either explicit or inferred from chat.
type MoodEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Mood      string    `json:"mood"`
	Note      string    `json:"note,omitempty"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// Mood entry sources.
const (
	MoodSourceManual = "manual"
	MoodSourceChat   = "chat"
	MoodSourceQuiz   = "quiz"
)

// QuizResult is a completed assessment stored for history and alerts.
type QuizResult struct {
	ID              int64             `json:"id"`
	QuizID          string            `json:"quiz_id"`
	UserID          int64             `json:"user_id"`
	MainConcerns    []string          `json:"main_concerns"`
	Scores          []byte            `json:"-"`
	OverallSeverity string            `json:"overall_severity"`
	CriticalFlag    bool              `json:"critical_flag"`
	CriticalType    string            `json:"critical_type,omitempty"`
	SuggestedMood   string            `json:"suggested_mood"`
	BasicInfo       map[string]string `json:"basic_info,omitempty"`
	CompletedAt     time.Time         `json:"completed_at"`
}

// AppConfig holds runtime parameters set via CLI flags.
type AppConfig struct {
	SessionTTL    time.Duration // auth token lifetime
	PromptVariant string        // chat prompt variant (warm, standard, clinical)
	DefaultLang   string        // fallback UI language tag
	CORSOrigins   []string      // allowed browser origins, empty disables CORS
}
