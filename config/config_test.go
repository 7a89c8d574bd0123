package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSmtpSecure(t *testing.T) {
	secure, insecure := true, false
	t.Run(`flag check`, func(t *testing.T) {
		conf := new(Configuration)
		conf.Smtp.Secure = &secure
		conf.Smtp.Port = "587"
		require.True(t, conf.SmtpSecure())
	})
	t.Run(`port 465 check`, func(t *testing.T) {
		conf := new(Configuration)
		conf.Smtp.Secure = &insecure
		conf.Smtp.Port = "465"
		require.True(t, conf.SmtpSecure())
	})
	t.Run(`plain check`, func(t *testing.T) {
		conf := new(Configuration)
		conf.Smtp.Port = "587"
		require.False(t, conf.SmtpSecure())
	})
}

func TestSenderAddress(t *testing.T) {
	conf := new(Configuration)
	conf.Smtp.User = "user@example.com"
	require.Equal(t, "user@example.com", conf.SenderAddress())
	conf.Smtp.Sender = "hello@example.com"
	require.Equal(t, "hello@example.com", conf.SenderAddress())
}
