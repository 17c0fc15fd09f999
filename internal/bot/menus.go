package bot

import "github.com/yashx/asha/internal/messages"

// yesNoMenu offers the joke decision. Button order is user-visible, keep Yes first.
func yesNoMenu() []QuickReplyOption {
	return []QuickReplyOption{
		{Label: messages.Yes, Payload: PayloadTellAJoke},
		{Label: messages.No, Payload: PayloadCancel},
	}
}

// jokeMenu offers the continuation choices after a joke was told.
func jokeMenu() []QuickReplyOption {
	return []QuickReplyOption{
		{Label: messages.TellMeMore, Payload: PayloadTellAJoke},
		{Label: messages.Exit, Payload: PayloadCancel},
	}
}
