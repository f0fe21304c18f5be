package emotion

import (
	"math/rand/v2"
	"strings"
)

var greetingResponses = []string{
	"Hello! I'm here to listen and support you. How are you feeling today?",
	"Hi there! I'm glad you're here. What's on your mind?",
	"Welcome! I'm your companion, ready to chat and help you process your emotions. How can I support you today?",
}

var supportiveResponses = []string{
	"Remember, you're not alone in this journey. Every step forward, no matter how small, is progress.",
	"You're doing better than you think. Be kind to yourself today.",
	"It takes courage to reach out and talk about your feelings. I'm proud of you for being here.",
	"Your feelings are valid, and it's okay to take things one day at a time.",
	"You have the strength to get through this. I believe in you.",
}

var defaultResponses = []string{
	"I understand. Tell me more about how you're feeling.",
	"That sounds important to you. Can you share more details?",
	"I'm here to listen. What else would you like to talk about?",
	"Thank you for sharing that with me. How does that make you feel?",
	"I appreciate you opening up. What's the most challenging part about this?",
}

var emotionResponses = map[string][]string{
	Joy: {
		"That's wonderful to hear! Your happiness is contagious. What's bringing you so much joy today?",
		"I love seeing you in such a positive mood! Keep embracing those good vibes.",
		"Your joy is beautiful! What's been the highlight of your day?",
	},
	Sadness: {
		"I'm sorry you're feeling down. It's completely okay to feel sad sometimes. Would you like to talk about what's bothering you?",
		"I hear that you're going through a tough time. Remember, it's okay to not be okay. I'm here to listen.",
		"Sadness is a natural part of life. You're not alone in this. What would help you feel a little better right now?",
	},
	Anger: {
		"I can feel your frustration. It's completely valid to feel angry. What's triggering these feelings?",
		"Anger is a natural emotion. Let's work through this together. What happened that upset you?",
		"Your feelings are valid. When we're angry, it often means something important to us has been affected. What's going on?",
	},
	Fear: {
		"I understand you're feeling anxious or scared. These feelings are completely normal. What's causing you to feel this way?",
		"Fear can be overwhelming, but you're stronger than you think. What's making you feel afraid right now?",
		"Anxiety and fear are tough emotions to deal with. Let's talk through what's worrying you.",
	},
	Surprise: {
		"That sounds unexpected! How are you processing this surprise?",
		"Life can be full of surprises! How are you feeling about this unexpected turn?",
	},
	Disgust: {
		"It sounds like something really bothered you. What's making you feel this way?",
		"That must be really unpleasant for you. Do you want to talk about what's troubling you?",
	},
	Neutral: {
		"I'm here to listen. What's on your mind today?",
		"How are you feeling right now? I'm here to support you.",
		"Tell me more about what you're thinking about.",
	},
}

var howToResponses = map[string]string{
	"manage_stress": "Here are some effective ways to manage stress:\n" +
		"- Take deep breaths (4 counts in, hold 4, out 4)\n" +
		"- Try progressive muscle relaxation\n" +
		"- Go for a walk or do light exercise\n" +
		"- Practice mindfulness or meditation\n" +
		"- Talk to someone you trust\n" +
		"- Break big tasks into smaller steps",
	"improve_mood": "Ways to naturally boost your mood:\n" +
		"- Get sunlight exposure (even 10-15 minutes helps)\n" +
		"- Listen to uplifting music\n" +
		"- Connect with friends or family\n" +
		"- Practice gratitude: write down 3 good things daily\n" +
		"- Engage in physical activity\n" +
		"- Help someone else",
	"deal_with_anxiety": "Anxiety management techniques:\n" +
		"- Practice the 4-7-8 breathing technique\n" +
		"- Challenge anxious thoughts: ask 'Is this realistic?'\n" +
		"- Use grounding exercises\n" +
		"- Limit caffeine and news consumption\n" +
		"- Create a worry time (15 min daily to process concerns)\n" +
		"- Focus on what you can control",
	"sleep_better": "Better sleep habits:\n" +
		"- Keep a consistent sleep schedule\n" +
		"- Create a relaxing bedtime routine\n" +
		"- Avoid screens 1 hour before bed\n" +
		"- Keep your bedroom cool and dark\n" +
		"- Avoid large meals and caffeine before bed",
	"build_confidence": "Building self-confidence:\n" +
		"- Set small, achievable goals\n" +
		"- Practice positive self-talk\n" +
		"- Focus on your strengths and past successes\n" +
		"- Take care of your physical health\n" +
		"- Surround yourself with supportive people",
	"handle_sadness": "Dealing with sadness:\n" +
		"- Allow yourself to feel the emotion\n" +
		"- Talk to someone you trust\n" +
		"- Engage in gentle physical activity\n" +
		"- Do something kind for yourself\n" +
		"- Seek professional help if sadness persists",
	"manage_anger": "Managing anger effectively:\n" +
		"- Take a timeout before reacting\n" +
		"- Use 'I' statements instead of 'you' statements\n" +
		"- Practice deep breathing or counting to 10\n" +
		"- Exercise to release physical tension\n" +
		"- Problem-solve rather than just vent",
}

var howToKeywords = map[string][]string{
	"manage_stress":     {"stress", "stressed", "overwhelmed", "pressure", "tension"},
	"improve_mood":      {"mood", "feel better", "cheer up", "happier", "positive"},
	"deal_with_anxiety": {"anxiety", "anxious", "worry", "nervous", "panic", "calm"},
	"sleep_better":      {"sleep", "insomnia", "rest", "tired", "exhausted"},
	"build_confidence":  {"confidence", "self-esteem", "believe in myself", "self-worth"},
	"handle_sadness":    {"sadness", "sad", "depression", "down", "blue"},
	"manage_anger":      {"anger", "angry", "mad", "frustrated", "rage"},
}

// howToCategories fixes the lookup order so overlapping keywords
// resolve the same way every time.
var howToCategories = []string{
	"manage_stress", "improve_mood", "deal_with_anxiety", "sleep_better",
	"build_confidence", "handle_sadness", "manage_anger",
}

var greetings = []string{"hello", "hi", "hey", "good morning", "good afternoon"}

var immediateDangerResponses = []string{
	"I'm very concerned about what you've shared. Your life has value and you deserve support right now.",
	"What you're feeling is serious, and I want you to know that help is available immediately.",
	"I'm worried about your safety. Please know that you're not alone and there are people who want to help.",
}

var crisisResources = map[string]string{
	CrisisSuicide: "IMMEDIATE HELP AVAILABLE:\n" +
		"- National Suicide Prevention Lifeline: 988 or 1-800-273-8255\n" +
		"- Crisis Text Line: Text HOME to 741741\n" +
		"- International: befrienders.org\n" +
		"- Emergency: Call 911 or go to your nearest emergency room",
	CrisisSelfHarm: "GET SUPPORT NOW:\n" +
		"- Crisis Text Line: Text HOME to 741741\n" +
		"- Self-Injury Outreach & Support: sioutreach.org\n" +
		"- National Suicide Prevention Lifeline: 988\n" +
		"- Emergency: Call 911 or go to your nearest emergency room",
	CrisisViolence: "SAFETY FIRST:\n" +
		"- If you're having thoughts of harming others, please call 911 immediately\n" +
		"- National Domestic Violence Hotline: 1-800-799-7233\n" +
		"- Crisis Text Line: Text HOME to 741741\n" +
		"- Go to your nearest emergency room for immediate help",
}

const generalCrisisResources = "HELP IS AVAILABLE:\n" +
	"- National Suicide Prevention Lifeline: 988\n" +
	"- Crisis Text Line: Text HOME to 741741\n" +
	"- SAMHSA National Helpline: 1-800-662-4357\n" +
	"- Emergency: Call 911 or go to your nearest emergency room"

var calmingMessages = []string{
	"Take a deep breath with me. You are safe right now in this moment.",
	"I want you to know that these intense feelings will pass. You are stronger than you realize.",
	"Right now, focus on your breathing. In for 4 counts, hold for 4, out for 4. You're going to get through this.",
	"Your life matters. Your feelings are valid. And most importantly, you are not alone.",
}

const crisisFollowup = "Please consider reaching out to a trusted friend, family member, " +
	"or mental health professional. You don't have to face this alone."

func pick(options []string) string {
	return options[rand.IntN(len(options))]
}

// CrisisReply composes the full canned reply for a detected crisis:
// immediate concern, resources for the category, a calming message,
// and a followup.
func CrisisReply(info CrisisInfo) string {
	if !info.Detected {
		return ""
	}
	resources, ok := crisisResources[info.Type]
	if !ok {
		resources = generalCrisisResources
	}
	parts := []string{
		pick(immediateDangerResponses),
		resources,
		pick(calmingMessages),
		crisisFollowup,
	}
	return strings.Join(parts, "\n\n")
}

// IsGreeting reports whether the message opens a conversation.
// Single-word greetings match whole words only, so "this" does not
// count as "hi".
func IsGreeting(message string) bool {
	lower := strings.ToLower(message)
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z')
	})
	for _, g := range greetings {
		if strings.Contains(g, " ") {
			if strings.Contains(lower, g) {
				return true
			}
			continue
		}
		for _, w := range words {
			if w == g {
				return true
			}
		}
	}
	return false
}

// HowToReply returns concrete advice for a "how to" style question, or
// empty string when the message is not one.
func HowToReply(message string) string {
	lower := strings.ToLower(message)
	isHowTo := false
	for _, prefix := range []string{"how to", "how do i", "how can i", "what can i do"} {
		if strings.HasPrefix(lower, prefix) {
			isHowTo = true
			break
		}
	}
	if !isHowTo {
		return ""
	}
	for _, cat := range howToCategories {
		for _, kw := range howToKeywords[cat] {
			if strings.Contains(lower, kw) {
				return howToResponses[cat]
			}
		}
	}
	return "I'd be happy to help! For specific guidance on managing emotions, stress, sleep, or building confidence, " +
		"feel free to ask more detailed questions. You can also try: 'How to manage stress', " +
		"'How to improve my mood', or 'How to deal with anxiety'."
}

// Reply produces a canned supportive response for a non-crisis message.
// Greetings and how-to questions get targeted replies; otherwise the
// detected emotion picks the response family.
func Reply(message, detectedEmotion, userName string) string {
	if IsGreeting(message) {
		reply := pick(greetingResponses)
		if userName != "" {
			reply = "Hi " + userName + "! " + reply
		}
		return reply
	}
	if howTo := HowToReply(message); howTo != "" {
		return howTo
	}
	lower := strings.ToLower(message)
	for _, word := range []string{"help", "support", "advice"} {
		if strings.Contains(lower, word) {
			return pick(supportiveResponses)
		}
	}
	if responses, ok := emotionResponses[detectedEmotion]; ok && detectedEmotion != Neutral {
		return pick(responses)
	}
	return pick(defaultResponses)
}
