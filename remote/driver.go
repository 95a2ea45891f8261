package remote

import "io"

// PathType classifies a remote name. It is derived on every query and never
// cached, since remote state can change between calls.
type PathType int

const (
	PathFile PathType = iota
	PathDirectory
)

func (t PathType) String() string {
	if t == PathDirectory {
		return "directory"
	}
	return "file"
}

// Driver is the protocol-specific side of the unified client. Drivers are
// stateless: every call opens whatever connection it needs for the given
// endpoint, performs one operation and releases the connection before
// returning. Calls block for the duration of the network exchange and
// cannot be cancelled once started.
type Driver interface {
	// List returns the entry names in the endpoint's working directory, in
	// the order the server reports them.
	List(ep *Endpoint) ([]string, error)
	Upload(ep *Endpoint, name string, src io.Reader) error
	Download(ep *Endpoint, name string, dst io.Writer) error
	Delete(ep *Endpoint, name string) error
	Rename(ep *Endpoint, name, newName string) error
	Mkdir(ep *Endpoint, name string) error
	Rmdir(ep *Endpoint, name string) error
	// Classify reports whether name refers to a file or a directory.
	Classify(ep *Endpoint, name string) (PathType, error)
}
