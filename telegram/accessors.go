package telegram

// Accessors below are pure functions of Kind, per SPEC_FULL.md §3.1. Each
// returns (value, ok) rather than a pointer so that a caller testing
// presence never has to guard against a nil payload.

func (u *Update) messageLike() *Message {
	switch u.Kind {
	case KindMessage:
		return u.Message
	case KindEditedMessage:
		return u.EditedMessage
	case KindChannelPost:
		return u.ChannelPost
	case KindEditedChannelPost:
		return u.EditedChannelPost
	default:
		return nil
	}
}

// Text returns the message text, for the four message-shaped kinds.
func (u *Update) Text() (string, bool) {
	m := u.messageLike()
	if m == nil || m.Text == "" {
		return "", false
	}
	return m.Text, true
}

// Caption returns the message caption, for the four message-shaped kinds.
func (u *Update) Caption() (string, bool) {
	m := u.messageLike()
	if m == nil || m.Caption == "" {
		return "", false
	}
	return m.Caption, true
}

// TextOrCaption returns Text if present, else Caption; used by filters that
// match either (SPEC_FULL.md §4.2 Command/Text filters).
func (u *Update) TextOrCaption() (string, bool) {
	if t, ok := u.Text(); ok {
		return t, true
	}
	return u.Caption()
}

// From returns the originating user, where the kind carries one.
func (u *Update) From() (*User, bool) {
	switch u.Kind {
	case KindMessage, KindEditedMessage:
		if m := u.messageLike(); m != nil && m.From != nil {
			return m.From, true
		}
	case KindInlineQuery:
		if u.InlineQuery != nil {
			return &u.InlineQuery.From, true
		}
	case KindChosenInlineResult:
		if u.ChosenInlineResult != nil {
			return &u.ChosenInlineResult.From, true
		}
	case KindCallbackQuery:
		if u.CallbackQuery != nil {
			return &u.CallbackQuery.From, true
		}
	case KindShippingQuery:
		if u.ShippingQuery != nil {
			return &u.ShippingQuery.From, true
		}
	case KindPreCheckoutQuery:
		if u.PreCheckoutQuery != nil {
			return &u.PreCheckoutQuery.From, true
		}
	case KindPollAnswer:
		if u.PollAnswer != nil && u.PollAnswer.User != nil {
			return u.PollAnswer.User, true
		}
	case KindMyChatMember:
		if u.MyChatMember != nil {
			return &u.MyChatMember.From, true
		}
	case KindChatMember:
		if u.ChatMember != nil {
			return &u.ChatMember.From, true
		}
	case KindChatJoinRequest:
		if u.ChatJoinRequest != nil {
			return &u.ChatJoinRequest.From, true
		}
	}
	return nil, false
}

// FromID is a convenience wrapper over From().
func (u *Update) FromID() (int64, bool) {
	if from, ok := u.From(); ok {
		return from.ID, true
	}
	return 0, false
}

// Chat returns the chat the update pertains to, where applicable.
func (u *Update) Chat() (*Chat, bool) {
	switch u.Kind {
	case KindMessage, KindEditedMessage, KindChannelPost, KindEditedChannelPost:
		if m := u.messageLike(); m != nil {
			return &m.Chat, true
		}
	case KindCallbackQuery:
		if u.CallbackQuery != nil && u.CallbackQuery.Message != nil {
			return &u.CallbackQuery.Message.Chat, true
		}
	case KindMyChatMember:
		if u.MyChatMember != nil {
			return &u.MyChatMember.Chat, true
		}
	case KindChatMember:
		if u.ChatMember != nil {
			return &u.ChatMember.Chat, true
		}
	case KindChatJoinRequest:
		if u.ChatJoinRequest != nil {
			return &u.ChatJoinRequest.Chat, true
		}
	case KindChatBoost:
		if u.ChatBoost != nil {
			return &u.ChatBoost.Chat, true
		}
	case KindRemovedChatBoost:
		if u.RemovedChatBoost != nil {
			return &u.RemovedChatBoost.Chat, true
		}
	case KindMessageReaction:
		if u.MessageReaction != nil {
			return &u.MessageReaction.Chat, true
		}
	case KindMessageReactionCount:
		if u.MessageReactionCount != nil {
			return &u.MessageReactionCount.Chat, true
		}
	}
	return nil, false
}

// ChatID is a convenience wrapper over Chat().
func (u *Update) ChatID() (int64, bool) {
	if c, ok := u.Chat(); ok {
		return c.ID, true
	}
	return 0, false
}

// SenderChat returns the sender_chat of a message-shaped update, if set
// (anonymous admin / linked channel posts).
func (u *Update) SenderChat() (*Chat, bool) {
	m := u.messageLike()
	if m == nil || m.SenderChat == nil {
		return nil, false
	}
	return m.SenderChat, true
}

// MessageThreadID returns the forum topic thread id, for message-shaped
// updates that carry one.
func (u *Update) MessageThreadID() (int64, bool) {
	m := u.messageLike()
	if m == nil || m.MessageThreadID == 0 {
		return 0, false
	}
	return m.MessageThreadID, true
}
