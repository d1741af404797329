package telegram

import (
	"encoding/json"
	"fmt"
)

// User is a minimal rendering of Telegram's User object; the core only
// needs the fields filters and extractors read.
type User struct {
	ID           int64  `json:"id"`
	IsBot        bool   `json:"is_bot"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
}

// Chat is a minimal rendering of Telegram's Chat object.
type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
	Title string `json:"title,omitempty"`
	Username string `json:"username,omitempty"`
}

// MessageEntity mirrors the Bot API's MessageEntity, decoded as part of an
// incoming Message's entities and caption_entities.
type MessageEntity struct {
	Type   string `json:"type"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	URL    string `json:"url,omitempty"`
}

// Message covers the fields the core's filters and accessors need; it is
// deliberately not the full ~200-field Bot API Message object (see
// SPEC_FULL.md §1 non-goal).
type Message struct {
	MessageID       int64           `json:"message_id"`
	MessageThreadID int64           `json:"message_thread_id,omitempty"`
	From            *User           `json:"from,omitempty"`
	SenderChat      *Chat           `json:"sender_chat,omitempty"`
	Chat            Chat            `json:"chat"`
	Date            int64           `json:"date"`
	Text            string          `json:"text,omitempty"`
	Caption         string          `json:"caption,omitempty"`
	Entities        []MessageEntity `json:"entities,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
}

type InlineQuery struct {
	ID     string `json:"id"`
	From   User   `json:"from"`
	Query  string `json:"query"`
	Offset string `json:"offset"`
}

type ChosenInlineResult struct {
	ResultID string `json:"result_id"`
	From     User   `json:"from"`
	Query    string `json:"query"`
}

type CallbackQuery struct {
	ID      string   `json:"id"`
	From    User     `json:"from"`
	Message *Message `json:"message,omitempty"`
	Data    string   `json:"data,omitempty"`
}

type ShippingQuery struct {
	ID   string `json:"id"`
	From User   `json:"from"`
}

type PreCheckoutQuery struct {
	ID   string `json:"id"`
	From User   `json:"from"`
}

type Poll struct {
	ID   string `json:"id"`
	Question string `json:"question"`
}

type PollAnswer struct {
	PollID string `json:"poll_id"`
	User   *User  `json:"user,omitempty"`
}

type ChatMemberUpdated struct {
	Chat Chat `json:"chat"`
	From User `json:"from"`
}

type ChatJoinRequest struct {
	Chat Chat `json:"chat"`
	From User `json:"from"`
}

type ChatBoostUpdated struct {
	Chat Chat `json:"chat"`
}

type ChatBoostRemoved struct {
	Chat Chat `json:"chat"`
}

type MessageReactionUpdated struct {
	Chat Chat `json:"chat"`
}

type MessageReactionCountUpdated struct {
	Chat Chat `json:"chat"`
}

// Update is a tagged value: exactly one payload field is populated,
// selected by Kind. Kind is fixed at parse time (SPEC_FULL.md §3.1).
type Update struct {
	ID   int64      `json:"update_id"`
	Kind UpdateKind `json:"-"`

	Message             *Message                     `json:"-"`
	EditedMessage       *Message                     `json:"-"`
	ChannelPost         *Message                     `json:"-"`
	EditedChannelPost   *Message                     `json:"-"`
	MessageReaction     *MessageReactionUpdated      `json:"-"`
	MessageReactionCount *MessageReactionCountUpdated `json:"-"`
	InlineQuery         *InlineQuery                 `json:"-"`
	ChosenInlineResult  *ChosenInlineResult          `json:"-"`
	CallbackQuery       *CallbackQuery               `json:"-"`
	ShippingQuery       *ShippingQuery               `json:"-"`
	PreCheckoutQuery    *PreCheckoutQuery            `json:"-"`
	Poll                *Poll                        `json:"-"`
	PollAnswer          *PollAnswer                  `json:"-"`
	MyChatMember        *ChatMemberUpdated           `json:"-"`
	ChatMember          *ChatMemberUpdated           `json:"-"`
	ChatJoinRequest     *ChatJoinRequest             `json:"-"`
	ChatBoost           *ChatBoostUpdated            `json:"-"`
	RemovedChatBoost    *ChatBoostRemoved            `json:"-"`
}

// rawUpdate captures every known tag so ParseUpdate can detect which one
// (if any) is present without a two-pass decode.
type rawUpdate struct {
	ID int64 `json:"update_id"`

	Message              json.RawMessage `json:"message"`
	EditedMessage        json.RawMessage `json:"edited_message"`
	ChannelPost          json.RawMessage `json:"channel_post"`
	EditedChannelPost    json.RawMessage `json:"edited_channel_post"`
	MessageReaction      json.RawMessage `json:"message_reaction"`
	MessageReactionCount json.RawMessage `json:"message_reaction_count"`
	InlineQuery          json.RawMessage `json:"inline_query"`
	ChosenInlineResult   json.RawMessage `json:"chosen_inline_result"`
	CallbackQuery        json.RawMessage `json:"callback_query"`
	ShippingQuery        json.RawMessage `json:"shipping_query"`
	PreCheckoutQuery     json.RawMessage `json:"pre_checkout_query"`
	Poll                 json.RawMessage `json:"poll"`
	PollAnswer           json.RawMessage `json:"poll_answer"`
	MyChatMember         json.RawMessage `json:"my_chat_member"`
	ChatMember           json.RawMessage `json:"chat_member"`
	ChatJoinRequest      json.RawMessage `json:"chat_join_request"`
	ChatBoost            json.RawMessage `json:"chat_boost"`
	RemovedChatBoost     json.RawMessage `json:"removed_chat_boost"`
}

// ErrUnknownKind is returned by ParseUpdate when none of the 18 known tags
// is present alongside update_id.
var ErrUnknownKind = fmt.Errorf("telegram: update carries no known kind tag")

// ParseUpdate decodes a single getUpdates array element, resolving its Kind
// by which tag is present (SPEC_FULL.md §6.3). An update with none of the
// known tags is an error, never a panic.
func ParseUpdate(data []byte) (*Update, error) {
	var raw rawUpdate
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("telegram: decode update: %w", err)
	}

	u := &Update{ID: raw.ID}

	switch {
	case raw.Message != nil:
		u.Kind = KindMessage
		if err := json.Unmarshal(raw.Message, &u.Message); err != nil {
			return nil, err
		}
	case raw.EditedMessage != nil:
		u.Kind = KindEditedMessage
		if err := json.Unmarshal(raw.EditedMessage, &u.EditedMessage); err != nil {
			return nil, err
		}
	case raw.ChannelPost != nil:
		u.Kind = KindChannelPost
		if err := json.Unmarshal(raw.ChannelPost, &u.ChannelPost); err != nil {
			return nil, err
		}
	case raw.EditedChannelPost != nil:
		u.Kind = KindEditedChannelPost
		if err := json.Unmarshal(raw.EditedChannelPost, &u.EditedChannelPost); err != nil {
			return nil, err
		}
	case raw.MessageReaction != nil:
		u.Kind = KindMessageReaction
		if err := json.Unmarshal(raw.MessageReaction, &u.MessageReaction); err != nil {
			return nil, err
		}
	case raw.MessageReactionCount != nil:
		u.Kind = KindMessageReactionCount
		if err := json.Unmarshal(raw.MessageReactionCount, &u.MessageReactionCount); err != nil {
			return nil, err
		}
	case raw.InlineQuery != nil:
		u.Kind = KindInlineQuery
		if err := json.Unmarshal(raw.InlineQuery, &u.InlineQuery); err != nil {
			return nil, err
		}
	case raw.ChosenInlineResult != nil:
		u.Kind = KindChosenInlineResult
		if err := json.Unmarshal(raw.ChosenInlineResult, &u.ChosenInlineResult); err != nil {
			return nil, err
		}
	case raw.CallbackQuery != nil:
		u.Kind = KindCallbackQuery
		if err := json.Unmarshal(raw.CallbackQuery, &u.CallbackQuery); err != nil {
			return nil, err
		}
	case raw.ShippingQuery != nil:
		u.Kind = KindShippingQuery
		if err := json.Unmarshal(raw.ShippingQuery, &u.ShippingQuery); err != nil {
			return nil, err
		}
	case raw.PreCheckoutQuery != nil:
		u.Kind = KindPreCheckoutQuery
		if err := json.Unmarshal(raw.PreCheckoutQuery, &u.PreCheckoutQuery); err != nil {
			return nil, err
		}
	case raw.Poll != nil:
		u.Kind = KindPoll
		if err := json.Unmarshal(raw.Poll, &u.Poll); err != nil {
			return nil, err
		}
	case raw.PollAnswer != nil:
		u.Kind = KindPollAnswer
		if err := json.Unmarshal(raw.PollAnswer, &u.PollAnswer); err != nil {
			return nil, err
		}
	case raw.MyChatMember != nil:
		u.Kind = KindMyChatMember
		if err := json.Unmarshal(raw.MyChatMember, &u.MyChatMember); err != nil {
			return nil, err
		}
	case raw.ChatMember != nil:
		u.Kind = KindChatMember
		if err := json.Unmarshal(raw.ChatMember, &u.ChatMember); err != nil {
			return nil, err
		}
	case raw.ChatJoinRequest != nil:
		u.Kind = KindChatJoinRequest
		if err := json.Unmarshal(raw.ChatJoinRequest, &u.ChatJoinRequest); err != nil {
			return nil, err
		}
	case raw.ChatBoost != nil:
		u.Kind = KindChatBoost
		if err := json.Unmarshal(raw.ChatBoost, &u.ChatBoost); err != nil {
			return nil, err
		}
	case raw.RemovedChatBoost != nil:
		u.Kind = KindRemovedChatBoost
		if err := json.Unmarshal(raw.RemovedChatBoost, &u.RemovedChatBoost); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownKind
	}

	return u, nil
}
