package middleware

import (
	"testing"

	"wordreader/internal/service"
	"wordreader/internal/testutil"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

// fakeContext implements the parts of tele.Context used by the middleware
type fakeContext struct {
	tele.Context
	userID    int64
	text      string
	callback  *tele.Callback
	sent      []interface{}
	responses []*tele.CallbackResponse
}

func (c *fakeContext) Sender() *tele.User { return &tele.User{ID: c.userID} }
func (c *fakeContext) Text() string { return c.text }
func (c *fakeContext) Callback() *tele.Callback { return c.callback }
func (c *fakeContext) Send(what interface{}, _ ...interface{}) error {
	c.sent = append(c.sent, what)
	return nil
}
func (c *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	c.responses = append(c.responses, resp...)
	return nil
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		authorize     bool
		text          string
		callback      bool
		expectNext    bool
		expectPrompt  bool
		expectRespond bool
	}{
		{name: "gate disabled", password: "", text: "/words", expectNext: true},
		{name: "authorized user", password: "pw", authorize: true, text: "/words", expectNext: true},
		{name: "password attempt passes through", password: "pw", text: "pw", expectNext: true},
		{name: "command is blocked", password: "pw", text: "/words", expectPrompt: true},
		{name: "document without text is blocked", password: "pw", text: "", expectPrompt: true},
		{name: "callback is rejected", password: "pw", callback: true, expectRespond: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := service.NewAuthService(tt.password)
			if tt.authorize {
				auth.AuthorizeUser(1)
			}

			c := &fakeContext{userID: 1, text: tt.text}
			if tt.callback {
				c.callback = &tele.Callback{ID: "cb"}
			}

			called := false
			next := func(tele.Context) error {
				called = true
				return nil
			}

			err := AuthMiddleware(auth, testutil.NewTestLogger())(next)(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectNext, called)
			if tt.expectPrompt {
				assert.Equal(t, []interface{}{PasswordPrompt}, c.sent)
			} else {
				assert.Empty(t, c.sent)
			}
			assert.Equal(t, tt.expectRespond, len(c.responses) == 1)
		})
	}
}
