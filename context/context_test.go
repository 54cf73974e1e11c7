package context

import (
	"bytes"
	"strings"
	"testing"

	"github.com/poolpOrg/charfreq/logging"
)

func TestContext_SettersAndGetters(t *testing.T) {
	ctx := NewContext()

	logger := logging.NewLogger(&bytes.Buffer{})
	stdin := strings.NewReader("")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tests := []struct {
		name     string
		setter   func()
		getter   func() interface{}
		expected interface{}
	}{
		{
			name: "SetLogger",
			setter: func() {
				ctx.SetLogger(logger)
			},
			getter:   func() interface{} { return ctx.GetLogger() },
			expected: logger,
		},
		{
			name: "SetStdin",
			setter: func() {
				ctx.SetStdin(stdin)
			},
			getter:   func() interface{} { return ctx.GetStdin() },
			expected: stdin,
		},
		{
			name: "SetStdout",
			setter: func() {
				ctx.SetStdout(stdout)
			},
			getter:   func() interface{} { return ctx.GetStdout() },
			expected: stdout,
		},
		{
			name: "SetStderr",
			setter: func() {
				ctx.SetStderr(stderr)
			},
			getter:   func() interface{} { return ctx.GetStderr() },
			expected: stderr,
		},
		{
			name: "SetUsername",
			setter: func() {
				ctx.SetUsername("testuser")
			},
			getter:   func() interface{} { return ctx.GetUsername() },
			expected: "testuser",
		},
		{
			name: "SetHostname",
			setter: func() {
				ctx.SetHostname("testhost")
			},
			getter:   func() interface{} { return ctx.GetHostname() },
			expected: "testhost",
		},
		{
			name: "SetCommandLine",
			setter: func() {
				ctx.SetCommandLine("charfreq -threshold 5")
			},
			getter:   func() interface{} { return ctx.GetCommandLine() },
			expected: "charfreq -threshold 5",
		},
		{
			name: "SetProcessID",
			setter: func() {
				ctx.SetProcessID(12345)
			},
			getter:   func() interface{} { return ctx.GetProcessID() },
			expected: 12345,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.setter()
			if result := test.getter(); result != test.expected {
				t.Errorf("%s failed: expected %v, got %v", test.name, test.expected, result)
			}
		})
	}
}
