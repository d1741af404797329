// Package telegram holds the wire-level Update type and the update-kind
// discriminant described in the Bot API's getUpdates response.
package telegram

// UpdateKind names exactly one of the update shapes Telegram delivers, plus
// the "update" pseudo-kind used by the catch-all observer. The string value
// is the literal JSON key the kind is carried under.
type UpdateKind string

const (
	KindMessage                UpdateKind = "message"
	KindEditedMessage           UpdateKind = "edited_message"
	KindChannelPost             UpdateKind = "channel_post"
	KindEditedChannelPost       UpdateKind = "edited_channel_post"
	KindMessageReaction         UpdateKind = "message_reaction"
	KindMessageReactionCount    UpdateKind = "message_reaction_count"
	KindInlineQuery             UpdateKind = "inline_query"
	KindChosenInlineResult      UpdateKind = "chosen_inline_result"
	KindCallbackQuery           UpdateKind = "callback_query"
	KindShippingQuery           UpdateKind = "shipping_query"
	KindPreCheckoutQuery        UpdateKind = "pre_checkout_query"
	KindPoll                    UpdateKind = "poll"
	KindPollAnswer              UpdateKind = "poll_answer"
	KindMyChatMember            UpdateKind = "my_chat_member"
	KindChatMember              UpdateKind = "chat_member"
	KindChatJoinRequest         UpdateKind = "chat_join_request"
	KindChatBoost               UpdateKind = "chat_boost"
	KindRemovedChatBoost        UpdateKind = "removed_chat_boost"

	// KindUpdate is the pseudo-kind for the router's catch-all observer.
	// It is never produced by ParseUpdate; it only names an Observer slot.
	KindUpdate UpdateKind = "update"
)

// AllKinds lists the 18 concrete update kinds in the order used to resolve
// an incoming JSON object's tag, and to enumerate a Router's per-type
// observers. KindUpdate is deliberately excluded: it is not a wire tag.
var AllKinds = []UpdateKind{
	KindMessage, KindEditedMessage, KindChannelPost, KindEditedChannelPost,
	KindMessageReaction, KindMessageReactionCount,
	KindInlineQuery, KindChosenInlineResult, KindCallbackQuery,
	KindShippingQuery, KindPreCheckoutQuery,
	KindPoll, KindPollAnswer,
	KindMyChatMember, KindChatMember, KindChatJoinRequest,
	KindChatBoost, KindRemovedChatBoost,
}
