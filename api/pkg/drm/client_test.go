package drm

import (
	"encoding/binary"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// fakeLeaseManager accepts a single connection, checks the request and answers
// with the given status and name, passing fd when it is non-negative.
func fakeLeaseManager(t *testing.T, status byte, name string, fd int) (string, <-chan leaseRequest) {
	t.Helper()

	socketPath := filepath.Join(t.TempDir(), "lease.sock")
	l, err := net.ListenUnix("unix", &net.UnixAddr{Name: socketPath, Net: "unix"})
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })

	requests := make(chan leaseRequest, 1)
	go func() {
		conn, err := l.AcceptUnix()
		if err != nil {
			return
		}
		defer conn.Close()

		var req leaseRequest
		if err := binary.Read(conn, binary.LittleEndian, &req); err != nil {
			return
		}
		requests <- req

		resp := make([]byte, leaseResponseSize)
		resp[0] = status
		binary.LittleEndian.PutUint32(resp[1:5], 3)
		copy(resp[5:], name)

		var oob []byte
		if fd >= 0 {
			oob = unix.UnixRights(fd)
		}
		if _, _, err := conn.WriteMsgUnix(resp, oob, nil); err != nil {
			return
		}

		// Hold the connection until the client closes it.
		buf := make([]byte, 1)
		_, _ = conn.Read(buf)
	}()

	return socketPath, requests
}

func TestRequestLease(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	socketPath, requests := fakeLeaseManager(t, 0, "Virtual-3", int(r.Fd()))

	lease, err := NewLeaseClient(socketPath).RequestLease(1920, 1080)
	require.NoError(t, err)
	defer lease.Close()
	defer unix.Close(lease.FD)

	req := <-requests
	assert.Equal(t, leaseRequest{Cmd: cmdRequestLease, Width: 1920, Height: 1080}, req)

	assert.Equal(t, uint32(3), lease.ScanoutID)
	assert.Equal(t, "Virtual-3", lease.ConnectorName)
	assert.GreaterOrEqual(t, lease.FD, 0)
	assert.NotEqual(t, int(r.Fd()), lease.FD)

	require.NoError(t, lease.Close())
	assert.NoError(t, lease.Close())
}

func TestRequestLease_Refused(t *testing.T) {
	socketPath, _ := fakeLeaseManager(t, 1, "no free scanout", -1)

	_, err := NewLeaseClient(socketPath).RequestLease(1920, 1080)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no free scanout")
}

func TestRequestLease_NoFD(t *testing.T) {
	socketPath, _ := fakeLeaseManager(t, 0, "Virtual-1", -1)

	_, err := NewLeaseClient(socketPath).RequestLease(1920, 1080)
	assert.Error(t, err)
}

func TestRequestLease_NoManager(t *testing.T) {
	_, err := NewLeaseClient(filepath.Join(t.TempDir(), "missing.sock")).RequestLease(1920, 1080)
	assert.Error(t, err)
}
