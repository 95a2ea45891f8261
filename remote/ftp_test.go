package remote

import (
	"errors"
	"net/textproto"
	"testing"

	"github.com/jlaffaye/ftp"
	"github.com/stretchr/testify/assert"
)

func TestRequestURI(t *testing.T) {
	tests := []struct {
		name     string
		ep       *Endpoint
		target   string
		expected string
	}{
		{
			"no port no working path",
			&Endpoint{Host: "files.example.com", Protocol: ProtocolFTP},
			"report.txt",
			"ftp://files.example.com/report.txt",
		},
		{
			"explicit port",
			&Endpoint{Host: "files.example.com", Port: 2121, Protocol: ProtocolFTP},
			"report.txt",
			"ftp://files.example.com:2121/report.txt",
		},
		{
			"working path prefixed",
			&Endpoint{Host: "files.example.com", WorkingPath: "outbound/daily", Protocol: ProtocolFTP},
			"report.txt",
			"ftp://files.example.com/outbound/daily/report.txt",
		},
		{
			"port and working path",
			&Endpoint{Host: "10.1.2.3", Port: 21021, WorkingPath: "in", Protocol: ProtocolFTP},
			"a.csv",
			"ftp://10.1.2.3:21021/in/a.csv",
		},
		{
			"empty target is the working directory",
			&Endpoint{Host: "files.example.com", WorkingPath: "outbound", Protocol: ProtocolFTP},
			"",
			"ftp://files.example.com/outbound",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, requestURI(tt.ep, tt.target))
		})
	}
}

func TestFTPPath(t *testing.T) {
	ep := &Endpoint{Host: "h", WorkingPath: "upload", Protocol: ProtocolFTP}
	assert.Equal(t, "/upload/report.txt", ftpPath(ep, "report.txt"))
	assert.Equal(t, "/upload", ftpPath(ep, ""))

	ep.WorkingPath = ""
	assert.Equal(t, "/report.txt", ftpPath(ep, "report.txt"))
	assert.Equal(t, "/", ftpPath(ep, ""))
}

func TestTruncateAtBlank(t *testing.T) {
	tests := []struct {
		name     string
		in       []string
		expected []string
	}{
		{"no blank", []string{"a.txt", "b.txt"}, []string{"a.txt", "b.txt"}},
		{"trailing blank dropped", []string{"a.txt", "b.txt", ""}, []string{"a.txt", "b.txt"}},
		{"entries after blank are lost", []string{"a.txt", "", "c.txt"}, []string{"a.txt"}},
		{"empty listing", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncateAtBlank(tt.in))
		})
	}
}

func TestPathTypeForListError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected PathType
	}{
		{"550 file unavailable means file", &textproto.Error{Code: ftp.StatusFileUnavailable, Msg: "File unavailable"}, PathFile},
		{"450 falls back to directory", &textproto.Error{Code: 450, Msg: "busy"}, PathDirectory},
		{"530 falls back to directory", &textproto.Error{Code: 530, Msg: "not logged in"}, PathDirectory},
		{"non-protocol error falls back to directory", errors.New("connection reset"), PathDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pathTypeForListError(tt.err))
		})
	}
}
