package core

import (
	"fmt"
	"os"
	"path/filepath"

	"remotefs/remote"
)

// Client is the unified entry point for remote file operations. It routes
// each call to the driver matching the endpoint's protocol tag; the tag to
// driver mapping is fixed at construction. The Client itself holds no
// connection state, so it is safe for concurrent use.
type Client struct {
	drivers map[remote.Protocol]remote.Driver
}

func NewClient() *Client {
	return &Client{
		drivers: map[remote.Protocol]remote.Driver{
			remote.ProtocolFTP:  &remote.FTPDriver{},
			remote.ProtocolSFTP: &remote.SFTPDriver{},
		},
	}
}

// driver validates the endpoint and selects the driver for its protocol.
// Runs before any I/O on every operation.
func (c *Client) driver(ep *remote.Endpoint) (remote.Driver, error) {
	if ep == nil {
		return nil, invalidf("endpoint is required")
	}
	if ep.Host == "" {
		return nil, invalidf("endpoint host is required")
	}
	d, ok := c.drivers[ep.Protocol]
	if !ok {
		return nil, invalidf("unknown protocol %q", ep.Protocol)
	}
	return d, nil
}

// ListDirectory returns the entry names in the endpoint's working
// directory, files and subdirectories alike, in the order the server
// reports them.
func (c *Client) ListDirectory(ep *remote.Endpoint) ([]string, error) {
	d, err := c.driver(ep)
	if err != nil {
		return nil, err
	}
	names, err := d.List(ep)
	if err != nil {
		return nil, remoteErr("list directory", err)
	}
	return names, nil
}

// Upload copies the local file at sourcePath to the remote side. destName
// defaults to the base name of sourcePath. Uploading a directory is not
// supported and fails before any network I/O.
func (c *Client) Upload(ep *remote.Endpoint, sourcePath, destName string) error {
	d, err := c.driver(ep)
	if err != nil {
		return err
	}
	if sourcePath == "" {
		return invalidf("upload source path is required")
	}

	t, err := localPathType(sourcePath)
	if err != nil {
		return err
	}
	if t == remote.PathDirectory {
		return fmt.Errorf("%w: %q is a directory, no recursive transfer", ErrUnsupported, sourcePath)
	}
	if destName == "" {
		destName = filepath.Base(sourcePath)
	}

	f, err := os.Open(sourcePath)
	if err != nil {
		return localErr("open source", err)
	}
	defer f.Close()

	if err := d.Upload(ep, destName, f); err != nil {
		return remoteErr("upload "+destName, err)
	}
	return nil
}

// Download copies the remote file sourceName into the local directory
// destPath. destName defaults to sourceName. The remote name is classified
// first; a directory fails before any transfer starts.
func (c *Client) Download(ep *remote.Endpoint, sourceName, destPath, destName string) error {
	d, err := c.driver(ep)
	if err != nil {
		return err
	}
	if sourceName == "" {
		return invalidf("download source name is required")
	}
	if destPath == "" {
		return invalidf("download destination path is required")
	}

	t, err := d.Classify(ep, sourceName)
	if err != nil {
		return remoteErr("classify "+sourceName, err)
	}
	if t == remote.PathDirectory {
		return fmt.Errorf("%w: %q is a directory, no recursive transfer", ErrUnsupported, sourceName)
	}
	if destName == "" {
		destName = sourceName
	}

	f, err := os.Create(filepath.Join(destPath, destName))
	if err != nil {
		return localErr("create destination", err)
	}
	if err := d.Download(ep, sourceName, f); err != nil {
		f.Close()
		return remoteErr("download "+sourceName, err)
	}
	if err := f.Close(); err != nil {
		return localErr("close destination", err)
	}
	return nil
}

func (c *Client) DeleteFile(ep *remote.Endpoint, name string) error {
	d, err := c.driver(ep)
	if err != nil {
		return err
	}
	if name == "" {
		return invalidf("file name is required")
	}
	if err := d.Delete(ep, name); err != nil {
		return remoteErr("delete "+name, err)
	}
	return nil
}

func (c *Client) RenameFile(ep *remote.Endpoint, name, newName string) error {
	d, err := c.driver(ep)
	if err != nil {
		return err
	}
	if name == "" || newName == "" {
		return invalidf("rename needs both the current and the new name")
	}
	if err := d.Rename(ep, name, newName); err != nil {
		return remoteErr("rename "+name, err)
	}
	return nil
}

func (c *Client) MakeDirectory(ep *remote.Endpoint, name string) error {
	d, err := c.driver(ep)
	if err != nil {
		return err
	}
	if name == "" {
		return invalidf("directory name is required")
	}
	if err := d.Mkdir(ep, name); err != nil {
		return remoteErr("mkdir "+name, err)
	}
	return nil
}

func (c *Client) RemoveDirectory(ep *remote.Endpoint, name string) error {
	d, err := c.driver(ep)
	if err != nil {
		return err
	}
	if name == "" {
		return invalidf("directory name is required")
	}
	if err := d.Rmdir(ep, name); err != nil {
		return remoteErr("rmdir "+name, err)
	}
	return nil
}

// ClassifyRemote reports whether name refers to a remote file or
// directory. Derived fresh on every call.
func (c *Client) ClassifyRemote(ep *remote.Endpoint, name string) (remote.PathType, error) {
	d, err := c.driver(ep)
	if err != nil {
		return remote.PathDirectory, err
	}
	if name == "" {
		return remote.PathDirectory, invalidf("name is required")
	}
	t, err := d.Classify(ep, name)
	if err != nil {
		return t, remoteErr("classify "+name, err)
	}
	return t, nil
}

// localPathType mirrors the remote classification for the local side of a
// transfer, using filesystem metadata.
func localPathType(p string) (remote.PathType, error) {
	info, err := os.Stat(p)
	if err != nil {
		return remote.PathDirectory, localErr("stat source", err)
	}
	if info.IsDir() {
		return remote.PathDirectory, nil
	}
	return remote.PathFile, nil
}
