package questions

import "github.com/exposedgame/exposed/internal/models"

// Question packs. Each prompt text must be unique within its pack; the
// pool's exhaustion filter compares raw prompt texts.

var lifePrompts = []string{
	"What's the weirdest excuse you've ever used to bunk a college class? And did it work?",
	"Who was your first ever school crush, and what made you think they liked you back?",
	"What's one thing you used to believe as a kid that's hilarious to you now?",
	"What's your go-to fake story when someone asks you why you're still single?",
	"Have you ever texted something cringe to someone and immediately put your phone on airplane mode? What was it?",
	"What's the most 'main character' moment you've ever had in public, even if nobody noticed?",
	"Have you ever done something cringe on purpose just to impress someone? Did it work?",
	"What's the funniest or most ridiculous rumor you've heard about yourself?",
	"What's one thing you used to brag about in school that was completely made up?",
	"Have you ever given someone advice that you completely ignored in your own life? What was it?",
	"What's your most legendary missed chance that still haunts you today?",
	"What's one toxic trait you hide from everyone but know you have?",
	"What's something you already regret not doing, because once you're older it'll be too late?",
	"Have you ever been betrayed by someone close and still can't forgive them?",
	"What's one incident from college you wish had never happened?",
	"Who in this group would survive longest in your hometown, and why?",
}

var adultPrompts = []string{
	"What's the most embarrassing thing saved in your camera roll right now?",
	"Who was the last person you stalked on social media at 2 a.m.?",
	"What's the biggest lie you've told on a first date?",
	"Have you ever pretended not to see a message just to avoid someone? Who?",
	"What's the worst pickup line you've actually used, and on whom?",
	"Which player here would you trust with your phone unlocked for an hour?",
	"What's a secret habit you'd be mortified if your crush discovered?",
	"Have you ever flirted with someone just to get out of trouble? How did it end?",
	"What's the pettiest reason you've ever ghosted someone?",
	"Describe your most disastrous date in three sentences.",
	"What's the most jealous you've ever been, and did anyone notice?",
	"If your exes wrote a one-line review of you, what would it say?",
}

var extremePrompts = []string{
	"Reveal the one secret in this room you swore you'd take to your grave.",
	"Which player here do you secretly envy, and what exactly do you envy?",
	"Name the person you'd call first if you ruined your own life tonight.",
	"What's the closest you've come to completely losing control of yourself?",
	"Confess the worst thing you've ever done to a friend who never found out.",
	"What's the one question you hope nobody in this game ever asks you?",
	"Which relationship in your life is held together purely by your acting skills?",
	"What truth about yourself did you only admit after someone forced you to?",
	"Who hurt you the most, yet still lingers in your mind at 2 a.m.?",
	"What's the biggest risk you've chickened out of, and what did it cost you?",
	"If everyone here could read your mind for one minute, who would you apologize to first?",
	"What's the most shameful thing you've done for attention?",
}

// Dares are drawn uniformly with no exhaustion tracking; a repeat dare in
// one session is fine.
var darePrompts = []string{
	"Let the group write your status message and keep it for 24 hours.",
	"Speak in a dramatic movie-trailer voice for the next two rounds.",
	"Show the group the last photo you took, no context allowed.",
	"Let the player to your left send one emoji to anyone in your chats.",
	"Do your best impression of another player until someone guesses who it is.",
	"Read your most recent outgoing text aloud in a newsreader voice.",
	"Swap display names with another player until the game ends.",
	"Sing the chorus of the last song you listened to.",
	"Let the group pick your profile picture for the rest of the day.",
	"Compliment every player in the room, sincerely, one by one.",
	"Tell the group your screen time for this week, app by app.",
	"Hold a completely straight face while the group tries to make you laugh for one minute.",
}

var packs = map[models.Category][]string{
	models.CategoryLife:    lifePrompts,
	models.CategoryAdult:   adultPrompts,
	models.CategoryExtreme: extremePrompts,
}
