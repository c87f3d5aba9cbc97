package mail

import (
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendBuildsMessage(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	m := &Mailer{
		addr: "smtp.example.com:587",
		from: "noreply@bandhan.app",
		send: func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
			return nil
		},
	}

	require.NoError(t, m.Send("asha@example.com", "It's a match!", "You and Ravi liked each other."))
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "noreply@bandhan.app", gotFrom)
	assert.Equal(t, []string{"asha@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: It's a match!\r\n")
	assert.Contains(t, string(gotMsg), "\r\n\r\nYou and Ravi liked each other.\r\n")
}

func TestSendErrors(t *testing.T) {
	err := (&Mailer{}).Send("a@example.com", "s", "b")
	assert.True(t, errors.Is(err, ErrNotConfigured))

	m := &Mailer{addr: "h:25", from: "f@example.com", send: func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}}
	assert.Error(t, m.Send("", "s", "b"))
	assert.EqualError(t, m.Send("a@example.com", "s", "b"), "connection refused")
}
