package line

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type replyPayload struct {
	ReplyToken string `json:"replyToken"`
	Messages   []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"messages"`
}

func TestReplyTextPostsSingleTextMessage(t *testing.T) {
	var (
		gotPath string
		gotAuth string
		payload replyPayload
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sentMessages":[{"id":"1","quoteToken":"q"}]}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{ChannelAccessToken: "token", Endpoint: srv.URL})
	require.NoError(t, err)

	require.NoError(t, client.ReplyText(context.Background(), "reply-token", "【今日比賽比分】\n"))
	assert.Equal(t, "/v2/bot/message/reply", gotPath)
	assert.Equal(t, "Bearer token", gotAuth)
	assert.Equal(t, "reply-token", payload.ReplyToken)
	require.Len(t, payload.Messages, 1)
	assert.Equal(t, "text", payload.Messages[0].Type)
	assert.Equal(t, "【今日比賽比分】\n", payload.Messages[0].Text)
}

func TestReplyTextSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Invalid reply token"}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{ChannelAccessToken: "token", Endpoint: srv.URL, HTTPClient: srv.Client()})
	require.NoError(t, err)

	err = client.ReplyText(context.Background(), "expired", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line: reply")
}
