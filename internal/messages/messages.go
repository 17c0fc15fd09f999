// Package messages holds every user-facing string the bot sends.
// These are behavioral constants, not copy that can be reworded freely:
// the option labels double as the match targets for typed-out replies.
package messages

// Conversation texts.
const (
	Greeting          = "Chatbot to tell jokes"
	FirstMessage      = "Hi %s, I know a lot of jokes."
	FirstChoiceText   = "Can I tell you one?"
	RestartChoiceText = "Hi %s, Would you like to hear a joke?"
	CannotUnderstand  = "Sorry I can't understand what you are saying. Please try again."
	StartAgain        = `You can start the conversation again by using the menu or sending a "start" message.`
)

// Quick-reply option labels. Users can also type these out instead of
// tapping them, so they are matched case- and punctuation-insensitively.
const (
	Okay         = "Okay"
	Yes          = "Yes"
	No           = "No"
	Cancel       = "Cancel"
	Start        = "Start"
	TellMeMore   = "Tell me more"
	Exit         = "Exit"
	TellJoke     = "Tell a joke"
	SadFaceEmoji = "\U0001F61E"
)

// CancelSequence is sent in order when the conversation is cancelled.
var CancelSequence = []string{
	SadFaceEmoji,
	StartAgain,
}
