package drm

import (
	"encoding/binary"
	"fmt"
	"net"

	"golang.org/x/sys/unix"
)

const (
	cmdRequestLease uint32 = 1
	cmdReleaseLease uint32 = 2

	// status(1) + scanout id(4) + connector name(64)
	leaseResponseSize = 69
)

// leaseRequest is the fixed-size little-endian request understood by the
// lease manager. Width doubles as the scanout id for release requests.
type leaseRequest struct {
	Cmd    uint32
	Width  uint32
	Height uint32
}

// LeaseClient requests DRM leases from a lease manager listening on a unix
// socket. A lease fd behaves like a master device fd restricted to the leased
// connector and CRTC.
type LeaseClient struct {
	socketPath string
}

func NewLeaseClient(socketPath string) *LeaseClient {
	return &LeaseClient{socketPath: socketPath}
}

// Lease is a granted DRM lease.
type Lease struct {
	ScanoutID     uint32
	ConnectorName string
	FD            int // caller owns the fd

	// conn stays open for the lifetime of the lease; the manager releases the
	// scanout when it sees the disconnect, including after a crash.
	conn net.Conn
}

// Close releases the lease by closing the liveness connection.
func (l *Lease) Close() error {
	if l.conn == nil {
		return nil
	}
	err := l.conn.Close()
	l.conn = nil
	return err
}

// RequestLease asks the manager for a width x height output and returns the
// lease fd received over SCM_RIGHTS.
func (c *LeaseClient) RequestLease(width, height uint32) (*Lease, error) {
	conn, err := net.Dial("unix", c.socketPath)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", c.socketPath, err)
	}

	lease, err := requestLease(conn.(*net.UnixConn), width, height)
	if err != nil {
		conn.Close()
		return nil, err
	}
	lease.conn = conn
	return lease, nil
}

func requestLease(conn *net.UnixConn, width, height uint32) (*Lease, error) {
	req := leaseRequest{Cmd: cmdRequestLease, Width: width, Height: height}
	if err := binary.Write(conn, binary.LittleEndian, req); err != nil {
		return nil, fmt.Errorf("write request: %w", err)
	}

	buf := make([]byte, leaseResponseSize)
	oob := make([]byte, unix.CmsgSpace(4)) // space for one fd
	n, oobn, _, _, err := conn.ReadMsgUnix(buf, oob)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if n < leaseResponseSize {
		return nil, fmt.Errorf("short response: %d bytes", n)
	}

	status := buf[0]
	scanoutID := binary.LittleEndian.Uint32(buf[1:5])
	// On failure the name field carries the error message.
	name := cString(buf[5:leaseResponseSize])

	fd, fdErr := receiveFD(oob[:oobn])
	if status != 0 {
		if fdErr == nil {
			unix.Close(fd)
		}
		return nil, fmt.Errorf("lease request failed: %s", name)
	}
	if fdErr != nil {
		return nil, fdErr
	}

	return &Lease{
		ScanoutID:     scanoutID,
		ConnectorName: name,
		FD:            fd,
	}, nil
}

// receiveFD extracts the first fd passed with SCM_RIGHTS, closing any extras.
func receiveFD(oob []byte) (int, error) {
	scms, err := unix.ParseSocketControlMessage(oob)
	if err != nil {
		return -1, fmt.Errorf("parse control message: %w", err)
	}
	for _, scm := range scms {
		fds, err := unix.ParseUnixRights(&scm)
		if err != nil || len(fds) == 0 {
			continue
		}
		for _, extra := range fds[1:] {
			unix.Close(extra)
		}
		return fds[0], nil
	}
	return -1, fmt.Errorf("no lease FD received via SCM_RIGHTS")
}

// ReleaseLease tells the manager to release a scanout explicitly.
func (c *LeaseClient) ReleaseLease(scanoutID uint32) error {
	conn, err := net.Dial("unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", c.socketPath, err)
	}
	defer conn.Close()

	req := leaseRequest{Cmd: cmdReleaseLease, Width: scanoutID}
	if err := binary.Write(conn, binary.LittleEndian, req); err != nil {
		return fmt.Errorf("write release request: %w", err)
	}
	return nil
}
