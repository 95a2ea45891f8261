package remote

import "fmt"

// Protocol selects which driver handles an endpoint's operations.
type Protocol string

const (
	ProtocolFTP  Protocol = "ftp"
	ProtocolSFTP Protocol = "sftp"
)

const (
	defaultFTPPort  = 21
	defaultSFTPPort = 22
)

// Endpoint identifies a remote server, the credentials to reach it and the
// directory names are resolved against. WorkingPath may be changed between
// operations; all other fields are fixed after construction. An Endpoint
// holds no live resources — every operation opens and closes its own
// connection, so one Endpoint can be shared across goroutines.
type Endpoint struct {
	Host        string
	Port        int // 0 means the protocol default
	User        string
	Secret      Secret
	WorkingPath string
	Protocol    Protocol
}

// Addr returns host:port with the protocol default filled in when Port is
// unset.
func (e *Endpoint) Addr() string {
	port := e.Port
	if port == 0 {
		if e.Protocol == ProtocolSFTP {
			port = defaultSFTPPort
		} else {
			port = defaultFTPPort
		}
	}
	return fmt.Sprintf("%s:%d", e.Host, port)
}
