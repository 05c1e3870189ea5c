// Package wcf binds the archiver's SDK contract to the WeChatFerry RPC:
// protobuf frames over nng pair1 sockets, commands on one port and pushed
// messages on the next.
package wcf

//go:generate protoc --go_out=. --go_opt=paths=source_relative wcf.proto

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.nanomsg.org/mangos/v3"
	"go.nanomsg.org/mangos/v3/protocol/pair1"
	_ "go.nanomsg.org/mangos/v3/transport/tcp"
	"google.golang.org/protobuf/proto"

	"github.com/iksnae/wechat-image-archiver/internal"
)

// DefaultPort is the SDK's command port
const DefaultPort = 10086

// commandTimeout bounds every command round trip
const commandTimeout = 10 * time.Second

type socket interface {
	Send(b []byte) error
	Recv() ([]byte, error)
	Close() error
}

type socketOpener func(addr string, recvTimeout time.Duration) (socket, error)

func openPair(addr string, recvTimeout time.Duration) (socket, error) {
	sock, err := pair1.NewSocket()
	if err != nil {
		return nil, fmt.Errorf("create socket: %w", err)
	}
	if err := sock.SetOption(mangos.OptionRecvDeadline, recvTimeout); err != nil {
		sock.Close()
		return nil, fmt.Errorf("set recv deadline: %w", err)
	}
	if err := sock.SetOption(mangos.OptionSendDeadline, commandTimeout); err != nil {
		sock.Close()
		return nil, fmt.Errorf("set send deadline: %w", err)
	}
	if err := sock.Dial(addr); err != nil {
		sock.Close()
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return sock, nil
}

// Dialer connects to a WeChatFerry instance
type Dialer struct {
	Host        string
	Port        int
	RecvTimeout time.Duration

	open socketOpener
}

// NewDialer creates a dialer for host:port. Receive calls block for at most
// recvTimeout before reporting no message.
func NewDialer(host string, port int, recvTimeout time.Duration) *Dialer {
	if port == 0 {
		port = DefaultPort
	}
	if recvTimeout <= 0 {
		recvTimeout = time.Second
	}
	return &Dialer{Host: host, Port: port, RecvTimeout: recvTimeout, open: openPair}
}

func (d *Dialer) addr(port int) string {
	return fmt.Sprintf("tcp://%s:%d", d.Host, port)
}

// Dial opens the command socket
func (d *Dialer) Dial(ctx context.Context) (internal.Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cmd, err := d.open(d.addr(d.Port), commandTimeout)
	if err != nil {
		return nil, err
	}
	internal.LogDebug("Command socket connected to %s", d.addr(d.Port))
	return &Client{dialer: d, cmd: cmd}, nil
}

// Client is a live WeChatFerry connection
type Client struct {
	dialer *Dialer

	mu  sync.Mutex
	cmd socket
	msg socket
}

// call sends one command and waits for its reply
func (c *Client) call(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cmd == nil {
		return nil, errors.New("client is closed")
	}

	frame, err := proto.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%s: encode: %w", req.Func, err)
	}
	if err := c.cmd.Send(frame); err != nil {
		return nil, fmt.Errorf("%s: send: %w", req.Func, err)
	}
	b, err := c.cmd.Recv()
	if err != nil {
		return nil, fmt.Errorf("%s: recv: %w", req.Func, err)
	}
	rsp := &Response{}
	if err := proto.Unmarshal(b, rsp); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", req.Func, err)
	}
	return rsp, nil
}

func (c *Client) IsLoggedIn(ctx context.Context) (bool, error) {
	rsp, err := c.call(ctx, &Request{Func: Functions_FUNC_IS_LOGIN})
	if err != nil {
		return false, err
	}
	return rsp.GetStatus() == 1, nil
}

func (c *Client) SelfID(ctx context.Context) (string, error) {
	rsp, err := c.call(ctx, &Request{Func: Functions_FUNC_GET_SELF_WXID})
	if err != nil {
		return "", err
	}
	return rsp.GetStr(), nil
}

// EnableReceiving turns on message push and connects the message socket
func (c *Client) EnableReceiving(ctx context.Context) error {
	// flag asks for moments pushes as well
	rsp, err := c.call(ctx, &Request{
		Func: Functions_FUNC_ENABLE_RECV_TXT,
		Msg:  &Request_Flag{Flag: false},
	})
	if err != nil {
		return err
	}
	if status := rsp.GetStatus(); status != 0 {
		return fmt.Errorf("%s: status %d", Functions_FUNC_ENABLE_RECV_TXT, status)
	}

	addr := c.dialer.addr(c.dialer.Port + 1)
	msg, err := c.dialer.open(addr, c.dialer.RecvTimeout)
	if err != nil {
		return err
	}

	c.mu.Lock()
	old := c.msg
	c.msg = msg
	c.mu.Unlock()
	if old != nil {
		_ = old.Close()
	}
	internal.LogDebug("Message socket connected to %s", addr)
	return nil
}

// Receive returns the next pushed message or internal.ErrNoMessage when
// none arrived within the receive timeout.
func (c *Client) Receive(ctx context.Context) (internal.InboundMessage, error) {
	if err := ctx.Err(); err != nil {
		return internal.InboundMessage{}, err
	}
	c.mu.Lock()
	msg := c.msg
	c.mu.Unlock()
	if msg == nil {
		return internal.InboundMessage{}, errors.New("receiving is not enabled")
	}

	b, err := msg.Recv()
	if errors.Is(err, mangos.ErrRecvTimeout) {
		return internal.InboundMessage{}, internal.ErrNoMessage
	}
	if err != nil {
		return internal.InboundMessage{}, fmt.Errorf("receive: %w", err)
	}

	rsp := &Response{}
	if err := proto.Unmarshal(b, rsp); err != nil {
		return internal.InboundMessage{}, fmt.Errorf("receive: decode: %w", err)
	}
	m := rsp.GetWxmsg()
	if m == nil {
		return internal.InboundMessage{}, internal.ErrNoMessage
	}
	return toInbound(m), nil
}

func toInbound(m *WxMsg) internal.InboundMessage {
	return internal.InboundMessage{
		ID:        m.GetId(),
		Type:      internal.MessageType(m.GetType()),
		Sender:    m.GetSender(),
		RoomID:    m.GetRoomid(),
		IsSelf:    m.GetIsSelf(),
		IsGroup:   m.GetIsGroup(),
		Timestamp: time.Unix(int64(m.GetTs()), 0),
		Content:   m.GetContent(),
		Thumb:     m.GetThumb(),
		Extra:     m.GetExtra(),
	}
}

// DisplayName returns the contact's nickname, or its remark when the
// nickname is empty.
func (c *Client) DisplayName(ctx context.Context, senderID string) (string, error) {
	rsp, err := c.call(ctx, &Request{
		Func: Functions_FUNC_GET_CONTACT_INFO,
		Msg:  &Request_Str{Str: senderID},
	})
	if err != nil {
		return "", err
	}
	for _, contact := range rsp.GetContacts().GetContacts() {
		if id := contact.GetWxid(); id != "" && id != senderID {
			continue
		}
		if name := contact.GetName(); name != "" {
			return name, nil
		}
		if remark := contact.GetRemark(); remark != "" {
			return remark, nil
		}
	}
	return "", fmt.Errorf("no contact info for %s", senderID)
}

func (c *Client) DownloadAttachment(ctx context.Context, id uint64, thumb, extra string) (int32, error) {
	rsp, err := c.call(ctx, &Request{
		Func: Functions_FUNC_DOWNLOAD_ATTACH,
		Msg:  &Request_Att{Att: &AttachMsg{Id: id, Thumb: thumb, Extra: extra}},
	})
	if err != nil {
		return -1, err
	}
	return rsp.GetStatus(), nil
}

func (c *Client) DecryptImage(ctx context.Context, src, dir string) (string, error) {
	rsp, err := c.call(ctx, &Request{
		Func: Functions_FUNC_DECRYPT_IMAGE,
		Msg:  &Request_Dec{Dec: &DecPath{Src: src, Dst: dir}},
	})
	if err != nil {
		return "", err
	}
	return rsp.GetStr(), nil
}

// Close disables message push and closes both sockets
func (c *Client) Close() error {
	c.mu.Lock()
	msg := c.msg
	c.msg = nil
	c.mu.Unlock()

	if msg != nil {
		if _, err := c.call(context.Background(), &Request{Func: Functions_FUNC_DISABLE_RECV_TXT}); err != nil {
			internal.LogDebug("Disabling message push failed: %v", err)
		}
		_ = msg.Close()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cmd == nil {
		return nil
	}
	err := c.cmd.Close()
	c.cmd = nil
	return err
}
