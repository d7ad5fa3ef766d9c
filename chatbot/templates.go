package chatbot

// Slot is one section of a reply message.
type Slot string

const (
	SlotGreeting            Slot = "greetings"
	SlotStrategyIntro       Slot = "strategy_intro"
	SlotDifficultyTip       Slot = "difficulty_tips"
	SlotTimeEstimation      Slot = "time_estimation"
	SlotTimeSummary         Slot = "time_summary"
	SlotAchievementSummary  Slot = "achievement_summary"
	SlotReviewGuidance      Slot = "review_guidance"
	SlotReflectionQuestions Slot = "reflection_questions"
	SlotReflectionPrompt    Slot = "reflection_prompt"
	SlotNextSteps           Slot = "next_steps"
	SlotAnalysisQuestions   Slot = "analysis_questions"
	SlotObservation         Slot = "observation"
	SlotAnalysis            Slot = "analysis"
	SlotStrategySuggestions Slot = "strategy_suggestions"
	SlotTimeManagement      Slot = "time_management"
	SlotSupportSuggestions  Slot = "support_suggestions"
	SlotSuggestions         Slot = "suggestions"
	SlotQuestions           Slot = "questions"
	SlotEncouragement       Slot = "encouragement"
	SlotCelebration         Slot = "celebration"
	SlotNextChallenge       Slot = "next_challenge"
)

// slotOrder is the order slots appear in a composed message.
var slotOrder = []Slot{
	SlotGreeting,
	SlotStrategyIntro,
	SlotDifficultyTip,
	SlotTimeEstimation,
	SlotTimeSummary,
	SlotAchievementSummary,
	SlotReviewGuidance,
	SlotReflectionQuestions,
	SlotReflectionPrompt,
	SlotNextSteps,
	SlotAnalysisQuestions,
	SlotObservation,
	SlotAnalysis,
	SlotStrategySuggestions,
	SlotTimeManagement,
	SlotSupportSuggestions,
	SlotSuggestions,
	SlotQuestions,
	SlotEncouragement,
	SlotCelebration,
	SlotNextChallenge,
}

// Template holds the variants for each slot of one response type. Difficulty
// tips are chosen by the card difficulty rather than sampled from Slots.
type Template struct {
	Slots          map[Slot][]string
	DifficultyTips map[string][]string
}

var templates = map[ResponseType]Template{
	StartTask: {
		Slots: map[Slot][]string{
			SlotGreeting: {
				"Good luck starting '{card_title}'! 🚀",
				"Time to begin '{card_title}'! Let's get to work! 💪",
				"You've started '{card_title}'! I'm here to help! 🌟",
			},
			SlotStrategyIntro: {
				"Based on the learning strategy '{strategy_name}': {strategy_description}",
				"You picked the '{strategy_name}' strategy. {strategy_description}",
				"With the '{strategy_name}' strategy you can: {strategy_description}",
			},
			SlotTimeEstimation: {
				"Estimated time to finish this task: {estimated_time}.",
				"You will probably need about {estimated_time} for this task.",
				"Given its difficulty, set aside around {estimated_time} for this task.",
			},
			SlotEncouragement: {
				"Try the Pomodoro technique: 25 minutes of focus, 5 minutes of rest! 🍅",
				"Focus on one thing at a time. You can do this! 💯",
				"Remember, consistency beats intensity. Slow and steady! 🌱",
			},
		},
		DifficultyTips: map[string][]string{
			"easy": {
				"This task is rated easy, so focus on finishing it well.",
				"This one is easy. Make sure you understand the basic concepts properly.",
				"For an easy task like this you can move fast while keeping the quality up.",
			},
			"medium": {
				"This task is of medium difficulty. Split your time well and focus on each part.",
				"For a medium task like this, make sure you understand each concept before moving on.",
				"Work through each part step by step and take a short break when you need one.",
			},
			"hard": {
				"This task is rated hard, so split it into several short sessions with enough rest.",
				"This one is challenging. Start with the easiest part first to build confidence.",
				"For a hard task, make sure you understand the fundamentals before tackling the complex parts.",
			},
		},
	},
	ReviewTask: {
		Slots: map[Slot][]string{
			SlotGreeting: {
				"Nice! You finished working on '{card_title}'! 🎉",
				"Great! '{card_title}' is done! 👏",
				"Well done! You completed the work phase of '{card_title}'! ✨",
			},
			SlotTimeSummary: {
				"Your study time: {total_time}",
				"You have spent {total_time} on this task.",
				"Total study time for this task: {total_time}",
			},
			SlotReviewGuidance: {
				"Now it's time to review:\n1. What did you learn from this task?\n2. Which part was the most challenging?\n3. What could you improve?",
				"Let's review your work:\n1. What are the key points you learned?\n2. What difficulties did you face?\n3. How did you overcome them?",
				"Review time:\n1. What did you do in this task?\n2. What do you understand well now?\n3. What still needs clarifying?",
			},
			SlotReflectionPrompt: {
				"Your notes: '{notes}'",
				"From your notes: '{notes}', what can we conclude?",
				"You wrote: '{notes}'. How was your experience with this task?",
			},
			SlotNextSteps: {
				"After reviewing, move the card to Reflection (Done) once you are confident in the result.",
				"If something needs fixing, you can move it back to Monitoring (In Progress).",
				"This review helps make sure you understand the material before the next task.",
			},
		},
	},
	CompleteTask: {
		Slots: map[Slot][]string{
			SlotGreeting: {
				"Congratulations! '{card_title}' is complete! 🎊",
				"Amazing! You finished '{card_title}'! 🏆",
				"Finally! '{card_title}' is done! Great work! 🌟",
			},
			SlotAchievementSummary: {
				"Total study time: {total_time}\nCard movements: {total_movements}",
				"Achievement stats:\n- Study time: {total_time}\n- Card moved: {total_movements} times",
				"Your achievement:\n⏱️ Study time: {total_time}\n🔄 Card moved: {total_movements} times",
			},
			SlotReflectionQuestions: {
				"Final reflection:\n1. What did you learn from this process?\n2. How do you feel after finishing this task?\n3. What will you do differently next time?",
				"Let's reflect:\n1. What new knowledge did you gain?\n2. Which skills did you develop?\n3. How do you feel now?",
				"Reflection time:\n1. What was the biggest lesson from this task?\n2. How did your learning process go?\n3. What could you improve?",
			},
			SlotCelebration: {
				"Congratulations on this achievement! Every finished task is a step forward in your learning journey. 🎓",
				"Your hard work paid off! Keep up the learning spirit! 🚀",
				"An outstanding achievement! You deserve credit for your effort! 👏",
			},
			SlotNextChallenge: {
				"Ready for the next challenge? 💯",
				"Let's move on to the next task! You've got this! 💪",
				"The next task is waiting! With this experience you'll be even better prepared! 🌟",
			},
		},
	},
	StepBackToPlanning: {
		Slots: map[Slot][]string{
			SlotGreeting: {
				"It's fine to move '{card_title}' back to Planning (To Do). 😊",
				"Moving '{card_title}' back to Planning (To Do) is a wise call. 🤔",
				"I see you moved '{card_title}' back to Planning (To Do). 👍",
			},
			SlotAnalysisQuestions: {
				"Let's think it through:\n1. What obstacles did you run into?\n2. Do you need extra help?\n3. Should we adjust the learning strategy?",
				"Let's evaluate:\n1. What made it difficult?\n2. Is there a concept you haven't understood yet?\n3. How can we prepare better?",
				"Let's re-plan:\n1. What problems did you hit?\n2. Do you need additional resources?\n3. What would be a more effective strategy?",
			},
			SlotSuggestions: {
				"Maybe try breaking the task into smaller pieces?",
				"Are there extra resources that could help you understand this material?",
				"Try discussing the hard parts with a friend or teacher.",
			},
			SlotEncouragement: {
				"Remember, this is part of learning! Knowing when to re-plan is an important skill. 🌱",
				"Sometimes we need to go back to planning to make sure everything goes well. 💡",
				"There's nothing wrong with turning back to prepare better. It shows self-awareness! 🧠",
			},
		},
	},
	StepBackToMonitoring: {
		Slots: map[Slot][]string{
			SlotGreeting: {
				"It's fine to move '{card_title}' back to Monitoring (In Progress). 😊",
				"I see you moved '{card_title}' back to Monitoring (In Progress). 🤔",
				"Moving '{card_title}' back to Monitoring (In Progress) is the right step. 👍",
			},
			SlotAnalysisQuestions: {
				"Let's think it through:\n1. What needs fixing in your work?\n2. Are there parts to redo?\n3. How can we raise the quality?",
				"Let's evaluate:\n1. What is missing from your work?\n2. Are there mistakes to correct?\n3. How can the result be improved?",
				"Let's keep working:\n1. What needs to be added or changed?\n2. Is there feedback to apply?\n3. How can the quality improve?",
			},
			SlotSuggestions: {
				"Focus on the parts that need improvement based on your review.",
				"Try a different approach for the difficult parts.",
				"Don't hesitate to look for extra references if needed.",
			},
			SlotEncouragement: {
				"Learning is often iterative. Every revision makes the result better! 🔄",
				"Going back to the work phase is a normal part of quality learning. 📚",
				"Every improvement is a step towards deeper understanding. 💡",
			},
		},
	},
	StepBackToControlling: {
		Slots: map[Slot][]string{
			SlotGreeting: {
				"You moved '{card_title}' back to Controlling (Review). 🤔",
				"Taking '{card_title}' back to Controlling (Review) for another look is a good idea. 👍",
				"I see '{card_title}' went back to Controlling (Review). 😊",
			},
			SlotAnalysisQuestions: {
				"Let's check again:\n1. What made you doubt the result?\n2. Which part needs to be reviewed again?\n3. What would convince you that it is really done?",
				"Let's take another look:\n1. Did you find a gap in your understanding?\n2. Is there feedback you have not handled yet?\n3. What should the review focus on?",
			},
			SlotEncouragement: {
				"Double-checking your work is a sign of a careful learner. 🔍",
				"A second review often reveals what the first one missed. 💡",
			},
		},
	},
	StrugglingPattern: {
		Slots: map[Slot][]string{
			SlotObservation: {
				"I notice you keep moving '{card_title}' back and forth. 🤔",
				"It looks like '{card_title}' is giving you some trouble. 🤔",
				"I can see you're working hard on '{card_title}' but running into some difficulties. 🤔",
			},
			SlotAnalysis: {
				"This can mean a few things:\n1. The task may be too big or complex\n2. A concept may not be fully understood yet\n3. The current learning strategy may not be working",
				"Back-and-forth moves often point to:\n1. Difficulty understanding or doing the task\n2. A need for a different approach\n3. A need for extra help",
				"When a card keeps moving back and forth, usually:\n1. Something is blocking the learning process\n2. The strategy needs adjusting\n3. The task should be broken down further",
			},
			SlotSuggestions: {
				"Let's try a few approaches:\n1. Break the task into smaller pieces\n2. Try a different learning strategy\n3. Look for additional resources if needed",
				"Some ideas that might help:\n1. Focus on one small part first\n2. Talk it through with a friend or teacher\n3. Try a different learning method",
				"Things we can try:\n1. Make a small checklist for each part\n2. Set more realistic goals\n3. Use a study technique that suits your style",
			},
			SlotEncouragement: {
				"Don't worry, this is a normal part of learning. Everyone has their own challenges! 🌱",
				"Difficulties like this are a chance to develop a more effective learning strategy. 💡",
				"I'm sure you can get past this! Let's find what works best for you. 💪",
			},
		},
	},
	StuckPattern: {
		Slots: map[Slot][]string{
			SlotObservation: {
				"I notice '{card_title}' has been in {column_name} for a while. 🤔",
				"It looks like '{card_title}' is stuck in {column_name} for now. 🤔",
				"I see '{card_title}' hasn't moved from {column_name} for several days. 🤔",
			},
			SlotAnalysis: {
				"This could be caused by a few things:\n1. The task may be too challenging or boring\n2. Other priorities may be more urgent\n3. You may have lost motivation or focus",
				"When a card is stuck for a long time, usually:\n1. There's a hidden obstacle\n2. A new approach is needed\n3. The task may no longer be relevant",
				"A card that hasn't moved for a long time suggests:\n1. A possible mental block\n2. A need to re-evaluate how important the task is\n3. A need for outside help",
			},
			SlotSuggestions: {
				"Let's re-evaluate '{card_title}':\n1. Is this task still relevant?\n2. Can it be split into smaller parts?\n3. Is there a way to make it more interesting?",
				"Some options to get unstuck:\n1. Set a more realistic deadline\n2. Try working in a different environment\n3. Find an accountability partner",
				"Ideas to break the deadlock:\n1. Start with the easiest part\n2. Use the Pomodoro technique to get going\n3. Give yourself a small reward after each part",
			},
			SlotEncouragement: {
				"Getting stuck like this is common in learning. What matters is how we deal with it! 🌱",
				"We all hit blocks sometimes. It's a chance to learn a new strategy! 💡",
				"Don't let this stop you. Let's find a way out together! 💪",
			},
		},
	},
	ShortSessionsPattern: {
		Slots: map[Slot][]string{
			SlotObservation: {
				"Your study sessions on '{card_title}' have been quite short, about {average_session} minutes on average. ⏱️",
				"I notice your sessions for '{card_title}' usually end after just a few minutes. ⏱️",
			},
			SlotAnalysis: {
				"Short sessions can mean:\n1. It's hard to get into focus\n2. There are frequent distractions\n3. The task feels too big to start",
				"Very short sessions often point to:\n1. Interruptions around you\n2. Unclear next steps\n3. Low energy at the time you study",
			},
			SlotTimeManagement: {
				"Try this:\n1. Set a 25-minute timer and commit to it\n2. Put your phone away during the session\n3. Decide what you will finish before you start",
				"To stretch your focus:\n1. Add five minutes to each session\n2. Study at your most productive hour\n3. Prepare your materials before starting",
			},
			SlotEncouragement: {
				"Focus is a muscle. Each session builds it a little more! 💪",
				"Small sessions still count. Let's make the next one a bit longer! 🌱",
			},
		},
	},
	LongSessionsPattern: {
		Slots: map[Slot][]string{
			SlotObservation: {
				"You've been putting in long sessions on '{card_title}', about {average_session} minutes on average. 📚",
				"Your study sessions for '{card_title}' often run past an hour. 📚",
			},
			SlotAnalysis: {
				"Long sessions are great for deep work, but:\n1. Attention drops after about an hour\n2. Fatigue can hurt retention\n3. Breaks help the material sink in",
				"Very long sessions can:\n1. Lead to burnout\n2. Make review harder\n3. Hide which parts are actually difficult",
			},
			SlotTimeManagement: {
				"Try this:\n1. Take a 5-10 minute break every 50 minutes\n2. Stand up and stretch between blocks\n3. End each block with a quick summary",
				"To keep your energy up:\n1. Split the work into 45-minute blocks\n2. Drink water during breaks\n3. Review what you did before the next block",
			},
			SlotEncouragement: {
				"Your dedication is impressive! Resting well will make it even more effective. 🌟",
				"Hard work pays off, and so does rest. Balance both! ⚖️",
			},
		},
	},
	HighComplexity: {
		Slots: map[Slot][]string{
			SlotObservation: {
				"I notice '{card_title}' has high difficulty and high priority. 🤔",
				"'{card_title}' looks like a complex and important task. 🤔",
				"'{card_title}' combines a demanding difficulty with a high priority. 🤔",
			},
			SlotStrategySuggestions: {
				"For a complex task like this, I suggest:\n1. Break it into smaller sub-tasks\n2. Make a clear timeline for each part\n3. Focus on one sub-task at a time",
				"Strategy for complex tasks:\n1. Start with detailed planning\n2. Identify the resources you need\n3. Set milestones for each stage",
				"Facing a complex task:\n1. Draw a concept map to see the structure\n2. Prioritize the most critical parts\n3. Reserve time for deep focus",
			},
			SlotTimeManagement: {
				"For high complexity tasks:\n1. Allocate more time than first estimated\n2. Leave buffer time for surprises\n3. Use time-blocking to stay focused",
				"Time management for complex tasks:\n1. Split into short sessions with enough rest\n2. Avoid multitasking, focus on one thing\n3. Use the 2-minute rule to get started",
				"Time tips for hard tasks:\n1. Work during your productive hours\n2. Remove distractions during sessions\n3. Use a timer to measure focus",
			},
			SlotSupportSuggestions: {
				"Don't hesitate to ask for help:\n1. Discuss with classmates\n2. Ask a teacher or mentor\n3. Look for extra learning resources",
				"Support that can help:\n1. A study group for discussion\n2. Office hours with your lecturer\n3. Online forums or communities",
				"Additional resources:\n1. Video tutorials or alternative explanations\n2. Worked examples\n3. Practice exercises to strengthen understanding",
			},
			SlotEncouragement: {
				"Complex tasks like this are a chance to build critical thinking and problem-solving skills. 🌟",
				"Challenging as it is, finishing a task like this brings satisfaction and deep learning. 💪",
				"Believe in yourself! Every small step in a complex task is real progress. 🚀",
			},
		},
	},
	General: {
		Slots: map[Slot][]string{
			SlotGreeting: {
				"I see you moved '{card_title}' from {from_column_name} to {to_column_name}. 🤔",
				"Card movement on '{card_title}' detected! 🔄",
				"Something moved on '{card_title}'! 👀",
			},
			SlotObservation: {
				"Every card movement is part of your learning journey. 🌱",
				"Learning is dynamic, keep exploring! 📚",
				"I'm here to support every step of your learning journey. 💪",
			},
			SlotQuestions: {
				"How do you feel about this task so far?",
				"Is there anything I can do to make your learning smoother?",
				"What challenges or successes have you had with this task?",
			},
			SlotEncouragement: {
				"Keep up the learning spirit! Every step is progress. 🌟",
				"I'm sure you can handle all your learning challenges! 💪",
				"Remember, learning is a journey, not a destination. Enjoy the process! 🌱",
			},
		},
	},
}

// templateFor falls back to the general template.
func templateFor(rt ResponseType) Template {
	if t, ok := templates[rt]; ok {
		return t
	}
	return templates[General]
}

var lifecycleSuggestions = []string{
	"Use the Pomodoro technique: 25 minutes of focus, 5 minutes of rest",
	"Drink enough water and look after your health",
}

var typeSuggestions = map[ResponseType][]string{
	ReviewTask: {
		"Make a checklist to be sure every part is covered",
		"Try explaining the concept in your own words",
		"Look for extra examples to deepen your understanding",
	},
	CompleteTask: {
		"Celebrate your small wins!",
		"Reflect on what you have learned",
		"Prepare a plan for the next task",
	},
	StepBackToPlanning:    stepBackSuggestions,
	StepBackToMonitoring:  stepBackSuggestions,
	StepBackToControlling: stepBackSuggestions,
	StrugglingPattern: {
		"Take a short break to refresh your mind",
		"Try changing your study environment",
		"Break the task down into micro-tasks",
	},
	StuckPattern: {
		"Re-evaluate the relevance and priority of the task",
		"Set a 5-minute timer and work on anything you can",
		"Find an accountability partner",
	},
	ShortSessionsPattern: {
		"Lengthen each session by five minutes",
		"Silence notifications before you start",
		"Plan the goal of each session in advance",
	},
	LongSessionsPattern: {
		"Take a short break every 50 minutes",
		"Summarize what you learned before each break",
		"Stop before you feel exhausted",
	},
	HighComplexity: {
		"Make a visual map or diagram of the task",
		"Set aside dedicated time for deep work",
		"Look for additional resources or references",
	},
}

var stepBackSuggestions = []string{
	"Identify the main obstacle you are facing",
	"Try a different approach or method",
	"Talk with a friend or mentor if needed",
}

var genericReflectionQuestions = []string{
	"What did you learn from this process?",
	"Which part was the most challenging and why?",
	"What will you do differently on the next task?",
}

var typeReflectionQuestions = map[ResponseType][]string{
	StartTask: {
		"What is your learning goal for this task?",
		"How are you planning your time to finish it?",
		"What resources do you need to complete this task?",
	},
	ReviewTask: {
		"Does your work meet your expectations?",
		"Which part needs improving and why?",
		"What new insight did you get from working on this task?",
	},
	CompleteTask: {
		"How satisfied are you with the final result?",
		"Which skills did you develop along the way?",
		"How do you feel after finishing this task?",
	},
	StepBackToPlanning:    stepBackQuestions,
	StepBackToMonitoring:  stepBackQuestions,
	StepBackToControlling: stepBackQuestions,
	StrugglingPattern: {
		"What is the main cause of the difficulty you are having?",
		"Is your current learning strategy effective?",
		"What small change could help you move forward?",
	},
	StuckPattern: {
		"What has kept you stuck for so long?",
		"Is this task still relevant to your priorities?",
		"What would motivate you to pick it up again?",
	},
	ShortSessionsPattern: {
		"What usually ends your study sessions early?",
		"When during the day is it easiest for you to focus?",
	},
	LongSessionsPattern: {
		"How does your focus feel towards the end of a long session?",
		"Would shorter blocks with breaks help you remember more?",
	},
	HighComplexity: {
		"How are you breaking down the complexity of this task?",
		"Which strategy works best for finishing complex tasks?",
		"What have you learned about yourself from handling complex tasks?",
	},
}

var stepBackQuestions = []string{
	"What is the main obstacle you are facing?",
	"What can you do to overcome it?",
	"Do you need extra help, and from whom?",
}

var hardStartSuggestions = []string{
	"Split the work into several 25-minute sessions",
	"Start with the part you understand best",
	"Gather the resources you need before you begin",
}

var startSuggestions = []string{
	"Set a clear goal for this study session",
	"Keep your materials organised in one place",
	"Check your progress at the end of each session",
}
