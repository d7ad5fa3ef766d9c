package chatbot

import (
	"fmt"
	"strings"
	"unicode"
)

// Keyword groups are matched against whole words of the lowercased message,
// in this order. Both English and Indonesian keywords are recognised.
var (
	greetingWords   = []string{"hello", "hi", "hey", "halo", "hai"}
	helpWords       = []string{"help", "how", "bantuan", "tolong", "bagaimana"}
	strategyWords   = []string{"strategy", "method", "study", "learn", "strategi", "metode", "cara", "belajar"}
	motivationWords = []string{"motivation", "motivated", "lazy", "tired", "motivasi", "semangat", "malas", "lesu"}
)

const (
	helpReply = "I can help you with:\n- Study tips\n- Questions about learning\n- Analysing your progress\n- Recommended learning resources\n\nWhat would you like to know more about?"

	strategyReply = "Some effective learning strategies you can try:\n\n1. **Pomodoro Technique** - study for 25 minutes, rest for 5\n2. **Active Recall** - try to remember information without looking at your notes\n3. **Spaced Repetition** - revisit material at regular intervals\n4. **Mind Mapping** - draw diagrams that connect concepts\n\nWant more detail on one of them?"

	motivationReply = "Keep going! Every small step brings you closer to your goal. A few tips to boost motivation:\n\n- Set realistic and specific goals\n- Break big tasks into small pieces\n- Celebrate every achievement, even the small ones\n- Remember your end goal\n\nYou can do it!"

	defaultReply = "Thanks for your message. I'm still learning and may not be able to answer everything yet. Try asking about learning strategies, motivation, or ask for help."
)

// Reply answers a free-form chat message with a fixed keyword-based reply.
func Reply(message, userName string) string {
	if strings.TrimSpace(userName) == "" {
		userName = "User"
	}

	words := strings.FieldsFunc(strings.ToLower(message), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	switch {
	case containsAny(words, greetingWords):
		return fmt.Sprintf("Hello %s! I'm your learning assistant. How can I help you today?", userName)
	case containsAny(words, helpWords):
		return helpReply
	case containsAny(words, strategyWords):
		return strategyReply
	case containsAny(words, motivationWords):
		return motivationReply
	default:
		return defaultReply
	}
}

func containsAny(words, keywords []string) bool {
	for _, w := range words {
		for _, k := range keywords {
			if w == k {
				return true
			}
		}
	}
	return false
}
