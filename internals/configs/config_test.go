package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTrustedProxies(t *testing.T) {
	t.Run("empty defaults to loopback", func(t *testing.T) {
		assert.Equal(t, []string{"127.0.0.1", "::1"}, ParseTrustedProxies(""))
		assert.Equal(t, []string{"127.0.0.1", "::1"}, ParseTrustedProxies(" , "))
	})

	t.Run("comma separated list", func(t *testing.T) {
		got := ParseTrustedProxies("10.0.0.1, 172.16.0.0/12")
		assert.Equal(t, []string{"10.0.0.1", "172.16.0.0/12"}, got)
	})

	t.Run("never trusts the world by default", func(t *testing.T) {
		assert.NotContains(t, ParseTrustedProxies(""), "0.0.0.0/0")
	})
}
