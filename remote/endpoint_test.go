package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpoint_Addr(t *testing.T) {
	tests := []struct {
		name     string
		ep       *Endpoint
		expected string
	}{
		{"ftp default port", &Endpoint{Host: "files.example.com", Protocol: ProtocolFTP}, "files.example.com:21"},
		{"sftp default port", &Endpoint{Host: "files.example.com", Protocol: ProtocolSFTP}, "files.example.com:22"},
		{"explicit port", &Endpoint{Host: "files.example.com", Port: 2121, Protocol: ProtocolFTP}, "files.example.com:2121"},
		{"explicit sftp port", &Endpoint{Host: "10.0.0.5", Port: 2222, Protocol: ProtocolSFTP}, "10.0.0.5:2222"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ep.Addr())
		})
	}
}
