package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcshell/arcshell/internal/domain/session"
	"github.com/arcshell/arcshell/internal/domain/vfs"
	"github.com/arcshell/arcshell/internal/shared/types"
)

func newTestServer(t *testing.T) (*httptest.Server, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	entries := []vfs.Entry{
		{Path: "dir1", Dir: true},
		{Path: "dir1/file1.txt", Size: 16},
		{Path: "file4.txt", Size: 16},
	}
	mgr := session.NewManager(entries, session.Options{Username: "erik"}, nil, nil)
	t.Cleanup(mgr.Shutdown)

	h := NewHandler(mgr, nil, nil)
	router := gin.New()
	router.GET("/ws", h.HandleConnection)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, mgr
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) types.WSResult {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var frame types.WSResult
	require.NoError(t, conn.ReadJSON(&frame))
	return frame
}

func sendCommand(t *testing.T, conn *websocket.Conn, line string) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(types.WSMessage{Type: types.WSTypeCommand, Command: line}))
}

func TestConnectSendsGreeting(t *testing.T) {
	server, mgr := newTestServer(t)
	conn := dial(t, server)

	frame := readFrame(t, conn)
	assert.Equal(t, types.WSTypeGreeting, frame.Type)
	assert.Equal(t, "Hello erik!", frame.Output)
	assert.Equal(t, "/", frame.Cwd)
	assert.Equal(t, "/ > ", frame.Prompt)
	assert.Equal(t, 1, mgr.Count())
}

func TestCommandRoundTrip(t *testing.T) {
	server, _ := newTestServer(t)
	conn := dial(t, server)
	readFrame(t, conn) // greeting

	sendCommand(t, conn, "cd dir1")
	frame := readFrame(t, conn)
	assert.Equal(t, types.WSTypeResult, frame.Type)
	assert.Empty(t, frame.Error)
	assert.Equal(t, "/dir1", frame.Cwd)
	assert.Equal(t, "/dir1 > ", frame.Prompt)

	sendCommand(t, conn, "ls")
	frame = readFrame(t, conn)
	assert.Equal(t, "file1.txt", frame.Output)
}

func TestCommandFailure(t *testing.T) {
	server, _ := newTestServer(t)
	conn := dial(t, server)
	readFrame(t, conn) // greeting

	sendCommand(t, conn, "ls missing")
	frame := readFrame(t, conn)
	assert.Equal(t, types.WSTypeResult, frame.Type)
	assert.Equal(t, "Directory not found: missing", frame.Error)
}

func TestPingPong(t *testing.T) {
	server, _ := newTestServer(t)
	conn := dial(t, server)
	readFrame(t, conn) // greeting

	require.NoError(t, conn.WriteJSON(types.WSMessage{Type: types.WSTypePing}))
	frame := readFrame(t, conn)
	assert.Equal(t, types.WSTypePong, frame.Type)
}

func TestUnknownMessageType(t *testing.T) {
	server, _ := newTestServer(t)
	conn := dial(t, server)
	readFrame(t, conn) // greeting

	require.NoError(t, conn.WriteJSON(types.WSMessage{Type: "bogus"}))
	frame := readFrame(t, conn)
	assert.Equal(t, types.WSTypeError, frame.Type)
	assert.Equal(t, "unknown message type", frame.Error)
}

func TestExitClosesSessionAndConnection(t *testing.T) {
	server, mgr := newTestServer(t)
	conn := dial(t, server)
	readFrame(t, conn) // greeting

	sendCommand(t, conn, "exit")
	frame := readFrame(t, conn)
	assert.True(t, frame.Exit)
	assert.Equal(t, 0, mgr.Count())

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var next types.WSResult
	assert.Error(t, conn.ReadJSON(&next), "server should close the connection after exit")
}

func TestEachConnectionGetsOwnSession(t *testing.T) {
	server, mgr := newTestServer(t)

	conn1 := dial(t, server)
	readFrame(t, conn1)
	conn2 := dial(t, server)
	readFrame(t, conn2)

	assert.Equal(t, 2, mgr.Count())

	// A move in one session stays invisible to the other
	sendCommand(t, conn1, "mv /file4.txt /moved.txt")
	readFrame(t, conn1)
	sendCommand(t, conn2, "ls")
	frame := readFrame(t, conn2)
	assert.Contains(t, frame.Output, "file4.txt")
	assert.NotContains(t, frame.Output, "moved.txt")

	conn1.Close()
	require.Eventually(t, func() bool { return mgr.Count() == 1 },
		time.Second, 10*time.Millisecond, "closing the socket should close its session")
}
