package remote

import (
	"errors"
	"fmt"
	"io"
	"net/textproto"
	"path"
	"time"

	"github.com/jlaffaye/ftp"
)

// FTPDriver speaks plain FTP through one dial/login/quit cycle per
// operation. Nothing is kept between calls.
type FTPDriver struct{}

const ftpDialTimeout = 30 * time.Second

func (d *FTPDriver) dial(ep *Endpoint) (*ftp.ServerConn, error) {
	c, err := ftp.Dial(ep.Addr(), ftp.DialWithTimeout(ftpDialTimeout))
	if err != nil {
		return nil, err
	}
	if err := c.Login(ep.User, ep.Secret.Plaintext()); err != nil {
		c.Quit()
		return nil, err
	}
	return c, nil
}

// requestURI builds the ftp:// address for name under the endpoint's
// working path. The port appears only when the endpoint sets one;
// otherwise the scheme implies the default.
func requestURI(ep *Endpoint, name string) string {
	host := ep.Host
	if ep.Port != 0 {
		host = fmt.Sprintf("%s:%d", ep.Host, ep.Port)
	}
	return "ftp://" + host + ftpPath(ep, name)
}

func ftpPath(ep *Endpoint, name string) string {
	return path.Join("/", ep.WorkingPath, name)
}

func (d *FTPDriver) List(ep *Endpoint) ([]string, error) {
	c, err := d.dial(ep)
	if err != nil {
		return nil, err
	}
	defer c.Quit()

	names, err := c.NameList(ftpPath(ep, ""))
	if err != nil {
		return nil, err
	}
	return truncateAtBlank(names), nil
}

// truncateAtBlank cuts the listing at the first empty line. Many servers
// emit a blank terminator line; entries that legitimately follow a blank
// name are dropped with it.
func truncateAtBlank(names []string) []string {
	for i, n := range names {
		if n == "" {
			return names[:i]
		}
	}
	return names
}

func (d *FTPDriver) Upload(ep *Endpoint, name string, src io.Reader) error {
	c, err := d.dial(ep)
	if err != nil {
		return err
	}
	defer c.Quit()
	return c.Stor(ftpPath(ep, name), src)
}

func (d *FTPDriver) Download(ep *Endpoint, name string, dst io.Writer) error {
	c, err := d.dial(ep)
	if err != nil {
		return err
	}
	defer c.Quit()

	r, err := c.Retr(ftpPath(ep, name))
	if err != nil {
		return err
	}
	// The whole response is buffered before the caller sees any of it;
	// there is no streaming boundary in plain-FTP mode.
	data, err := io.ReadAll(r)
	r.Close()
	if err != nil {
		return err
	}
	_, err = dst.Write(data)
	return err
}

func (d *FTPDriver) Delete(ep *Endpoint, name string) error {
	c, err := d.dial(ep)
	if err != nil {
		return err
	}
	defer c.Quit()
	return c.Delete(ftpPath(ep, name))
}

// Rename passes the new name as a full request URI rather than a bare path.
// Some servers expect absolute rename targets; keep the format as is.
func (d *FTPDriver) Rename(ep *Endpoint, name, newName string) error {
	c, err := d.dial(ep)
	if err != nil {
		return err
	}
	defer c.Quit()
	return c.Rename(ftpPath(ep, name), requestURI(ep, newName))
}

func (d *FTPDriver) Mkdir(ep *Endpoint, name string) error {
	c, err := d.dial(ep)
	if err != nil {
		return err
	}
	defer c.Quit()
	return c.MakeDir(ftpPath(ep, name))
}

func (d *FTPDriver) Rmdir(ep *Endpoint, name string) error {
	c, err := d.dial(ep)
	if err != nil {
		return err
	}
	defer c.Quit()
	return c.RemoveDir(ftpPath(ep, name))
}

// ftpPathTypeByStatus maps the status of a failed list probe to a
// classification. Only 550 ("file unavailable") reliably marks a plain
// file; servers that answer a missing name with any other status are read
// as directories, which can misclassify.
var ftpPathTypeByStatus = map[int]PathType{
	ftp.StatusFileUnavailable: PathFile,
}

// Classify probes name with a list request. A listable name is a
// directory; a 550 refusal is a file. This is a heuristic, not a
// guarantee.
func (d *FTPDriver) Classify(ep *Endpoint, name string) (PathType, error) {
	c, err := d.dial(ep)
	if err != nil {
		return PathDirectory, err
	}
	defer c.Quit()

	if _, err := c.NameList(ftpPath(ep, name)); err != nil {
		return pathTypeForListError(err), nil
	}
	return PathDirectory, nil
}

func pathTypeForListError(err error) PathType {
	var proto *textproto.Error
	if errors.As(err, &proto) {
		if t, ok := ftpPathTypeByStatus[proto.Code]; ok {
			return t
		}
	}
	return PathDirectory
}
