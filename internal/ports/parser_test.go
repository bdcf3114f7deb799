package ports_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/Sergeydigl3/do-runner-firewall/internal/ports"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "default protocol", raw: "80,443/udp", want: []string{"80/tcp", "443/udp"}},
		{name: "pass through", raw: "22/tcp,22/udp", want: []string{"22/tcp", "22/udp"}},
		{name: "range kept as is", raw: "8000-9000", want: []string{"8000-9000/tcp"}},
		{name: "unknown protocol kept", raw: "53/icmp", want: []string{"53/icmp"}},
		{name: "empty input", raw: "", want: []string{""}},
		{name: "trailing comma", raw: "80,", want: []string{"80/tcp", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ports.Parse(tt.raw))
		})
	}
}

func TestSplit(t *testing.T) {
	port, protocol := ports.Split("443/udp")
	assert.Equal(t, "443", port)
	assert.Equal(t, "udp", protocol)

	port, protocol = ports.Split("")
	assert.Equal(t, "", port)
	assert.Equal(t, "", protocol)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, ports.Validate(ports.Parse("80,443/udp,8000-9000")))

	err := ports.Validate(ports.Parse("22/icmp"))
	assert.True(t, errors.Is(err, ports.ErrUnsupportedProtocol))
	assert.Contains(t, err.Error(), `"icmp"`)

	err = ports.Validate(ports.Parse(""))
	assert.True(t, errors.Is(err, ports.ErrEmptyPort))

	err = ports.Validate([]string{"/udp"})
	assert.True(t, errors.Is(err, ports.ErrEmptyPort))
}
