// Package line adapts the LINE Messaging API SDK to the bot: it verifies and
// parses webhook callbacks and sends text replies.
package line

import (
	"errors"
	"net/http"

	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
)

// ErrInvalidSignature is returned when X-Line-Signature does not match the body.
var ErrInvalidSignature = errors.New("line: invalid signature")

// TextEvent is an inbound text message that can be answered with ReplyToken.
type TextEvent struct {
	Text       string
	ReplyToken string
	UserID     string
}

// ParseRequest verifies the callback signature against channelSecret and
// returns its text message events in delivery order. Other event and message
// types are dropped.
func ParseRequest(channelSecret string, r *http.Request) ([]TextEvent, error) {
	cb, err := webhook.ParseRequest(channelSecret, r)
	if err != nil {
		if errors.Is(err, webhook.ErrInvalidSignature) {
			return nil, ErrInvalidSignature
		}
		return nil, err
	}

	events := make([]TextEvent, 0, len(cb.Events))
	for _, event := range cb.Events {
		e, ok := event.(webhook.MessageEvent)
		if !ok {
			continue
		}
		msg, ok := e.Message.(webhook.TextMessageContent)
		if !ok {
			continue
		}
		events = append(events, TextEvent{
			Text:       msg.Text,
			ReplyToken: e.ReplyToken,
			UserID:     userID(e.Source),
		})
	}
	return events, nil
}

func userID(source webhook.SourceInterface) string {
	switch s := source.(type) {
	case webhook.UserSource:
		return s.UserId
	case webhook.GroupSource:
		return s.UserId
	case webhook.RoomSource:
		return s.UserId
	default:
		return ""
	}
}
