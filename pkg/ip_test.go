package pkg

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPIsLocal(t *testing.T) {
	cases := []struct {
		ip              string
		expectedIsLocal bool
	}{
		{ip: "83.12.53.65", expectedIsLocal: false},
		{ip: "127.23.0.1", expectedIsLocal: false},
		{ip: "127.0.0.1", expectedIsLocal: true},
		{ip: "::1", expectedIsLocal: true},
		{ip: "172.20.0.1", expectedIsLocal: true},
		{ip: "172.200.0.1", expectedIsLocal: true},
		{ip: "172.19.0.2", expectedIsLocal: false},
		{ip: "111.12.56.65", expectedIsLocal: false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expectedIsLocal, IPIsLocal(tc.ip), tc.ip)
	}
}

func TestReadUserIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "83.12.53.65:2145"
	ip, err := ReadUserIP(r)
	require.NoError(t, err)
	assert.Equal(t, "83.12.53.65", ip)

	r.Header.Set("X-Forwarded-For", "91.1.2.3, 10.0.0.1")
	ip, err = ReadUserIP(r)
	require.NoError(t, err)
	assert.Equal(t, "91.1.2.3", ip)

	r.Header.Set("X-Real-Ip", "92.1.2.3")
	ip, err = ReadUserIP(r)
	require.NoError(t, err)
	assert.Equal(t, "92.1.2.3", ip)

	local := httptest.NewRequest("GET", "/", nil)
	local.RemoteAddr = "172.18.0.1:60102"
	ip, err = ReadUserIP(local)
	require.NoError(t, err)
	assert.Equal(t, "localhost", ip)

	invalid := httptest.NewRequest("GET", "/", nil)
	invalid.RemoteAddr = "not-an-ip"
	_, err = ReadUserIP(invalid)
	assert.Error(t, err)
}
