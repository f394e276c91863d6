package testutil

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
)

// SignLINE computes the X-Line-Signature value for body under secret.
func SignLINE(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// LINETextEvent describes one inbound text message for CallbackBody.
type LINETextEvent struct {
	Text       string
	ReplyToken string
	UserID     string
}

// CallbackBody renders a LINE webhook payload carrying the given text events.
func CallbackBody(events ...LINETextEvent) []byte {
	rendered := make([]map[string]any, 0, len(events))
	for i, e := range events {
		userID := e.UserID
		if userID == "" {
			userID = "U0000000000000000000000000000test"
		}
		rendered = append(rendered, map[string]any{
			"type":           "message",
			"mode":           "active",
			"timestamp":      1700000000000 + int64(i),
			"webhookEventId": fmt.Sprintf("01HTEST%04d", i),
			"deliveryContext": map[string]any{
				"isRedelivery": false,
			},
			"source": map[string]any{
				"type":   "user",
				"userId": userID,
			},
			"replyToken": e.ReplyToken,
			"message": map[string]any{
				"type":       "text",
				"id":         fmt.Sprintf("%d", 1000+i),
				"quoteToken": fmt.Sprintf("q-%d", i),
				"text":       e.Text,
			},
		})
	}
	body, err := json.Marshal(map[string]any{
		"destination": "Ubot",
		"events":      rendered,
	})
	if err != nil {
		panic(err)
	}
	return body
}

// SignedCallbackRequest builds a POST request to path with a valid signature.
func SignedCallbackRequest(path, secret string, body []byte) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Line-Signature", SignLINE(secret, body))
	return req
}
