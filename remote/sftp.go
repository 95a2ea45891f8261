package remote

import (
	"io"
	"path"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// SFTPDriver runs every operation in its own SSH session: dial,
// authenticate, perform the one operation relative to the endpoint's
// working path, close. There is no connection reuse across calls.
type SFTPDriver struct{}

const sshDialTimeout = 30 * time.Second

func (d *SFTPDriver) connect(ep *Endpoint) (*ssh.Client, *sftp.Client, error) {
	config := &ssh.ClientConfig{
		User: ep.User,
		Auth: []ssh.AuthMethod{
			ssh.Password(ep.Secret.Plaintext()),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         sshDialTimeout,
	}

	conn, err := ssh.Dial("tcp", ep.Addr(), config)
	if err != nil {
		return nil, nil, err
	}
	client, err := sftp.NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	return conn, client, nil
}

// sftpPath resolves name against the working path, relative to the
// directory the session starts in.
func sftpPath(ep *Endpoint, name string) string {
	p := path.Join(ep.WorkingPath, name)
	if p == "" {
		p = "."
	}
	return p
}

// List returns entry names in the order the directory read reports them.
// The server's order is preserved, not sorted.
func (d *SFTPDriver) List(ep *Endpoint) ([]string, error) {
	conn, client, err := d.connect(ep)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	defer client.Close()

	entries, err := client.ReadDir(sftpPath(ep, ""))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

func (d *SFTPDriver) Upload(ep *Endpoint, name string, src io.Reader) error {
	conn, client, err := d.connect(ep)
	if err != nil {
		return err
	}
	defer conn.Close()
	defer client.Close()

	f, err := client.Create(sftpPath(ep, name))
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (d *SFTPDriver) Download(ep *Endpoint, name string, dst io.Writer) error {
	conn, client, err := d.connect(ep)
	if err != nil {
		return err
	}
	defer conn.Close()
	defer client.Close()

	f, err := client.Open(sftpPath(ep, name))
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(dst, f)
	return err
}

func (d *SFTPDriver) Delete(ep *Endpoint, name string) error {
	conn, client, err := d.connect(ep)
	if err != nil {
		return err
	}
	defer conn.Close()
	defer client.Close()
	return client.Remove(sftpPath(ep, name))
}

// Rename takes a bare working-path-relative target, unlike the FTP
// driver's URI form.
func (d *SFTPDriver) Rename(ep *Endpoint, name, newName string) error {
	conn, client, err := d.connect(ep)
	if err != nil {
		return err
	}
	defer conn.Close()
	defer client.Close()
	return client.Rename(sftpPath(ep, name), sftpPath(ep, newName))
}

func (d *SFTPDriver) Mkdir(ep *Endpoint, name string) error {
	conn, client, err := d.connect(ep)
	if err != nil {
		return err
	}
	defer conn.Close()
	defer client.Close()
	return client.Mkdir(sftpPath(ep, name))
}

func (d *SFTPDriver) Rmdir(ep *Endpoint, name string) error {
	conn, client, err := d.connect(ep)
	if err != nil {
		return err
	}
	defer conn.Close()
	defer client.Close()
	return client.RemoveDirectory(sftpPath(ep, name))
}

// Classify stats the name and reads the directory flag off the returned
// attributes. Authoritative, no heuristic fallback.
func (d *SFTPDriver) Classify(ep *Endpoint, name string) (PathType, error) {
	conn, client, err := d.connect(ep)
	if err != nil {
		return PathDirectory, err
	}
	defer conn.Close()
	defer client.Close()

	info, err := client.Stat(sftpPath(ep, name))
	if err != nil {
		return PathDirectory, err
	}
	if info.IsDir() {
		return PathDirectory, nil
	}
	return PathFile, nil
}
