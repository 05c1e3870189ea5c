package internal

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// FakeHandle is a scripted in-memory Handle for tests
type FakeHandle struct {
	LoggedIn       bool
	LoginErr       error
	NotLoggedInFor int // IsLoggedIn reports false for the first N calls
	Self           string

	Messages   []InboundMessage
	ReceiveErr error
	OnEmpty    func() // called each time Receive finds the queue empty

	Names   map[string]string
	NameErr error

	OnEnable         func()
	OnDownload       func()
	DownloadFailures int // leading DownloadAttachment calls that return status -1
	DecryptFailures  int // leading DecryptImage calls that produce nothing
	Payload          []byte
	PayloadExt       string

	LoginCalls    int
	ReceiveCalls  int
	DownloadCalls int
	DecryptCalls  int
	EnableCalls   int
	Enabled       bool
	Closed        bool
}

// NewFakeHandle returns a logged-in handle that decrypts to a small JPEG payload
func NewFakeHandle(self string) *FakeHandle {
	return &FakeHandle{
		LoggedIn:   true,
		Self:       self,
		Names:      make(map[string]string),
		Payload:    []byte{0xFF, 0xD8, 0xFF, 0xE0, 'f', 'a', 'k', 'e'},
		PayloadExt: ".jpg",
	}
}

func (f *FakeHandle) IsLoggedIn(ctx context.Context) (bool, error) {
	f.LoginCalls++
	if f.LoginErr != nil {
		return false, f.LoginErr
	}
	if f.LoginCalls <= f.NotLoggedInFor {
		return false, nil
	}
	return f.LoggedIn, nil
}

func (f *FakeHandle) SelfID(ctx context.Context) (string, error) {
	return f.Self, nil
}

func (f *FakeHandle) EnableReceiving(ctx context.Context) error {
	f.EnableCalls++
	f.Enabled = true
	if f.OnEnable != nil {
		f.OnEnable()
	}
	return nil
}

func (f *FakeHandle) Receive(ctx context.Context) (InboundMessage, error) {
	f.ReceiveCalls++
	if f.ReceiveErr != nil {
		return InboundMessage{}, f.ReceiveErr
	}
	if len(f.Messages) == 0 {
		if f.OnEmpty != nil {
			f.OnEmpty()
		}
		return InboundMessage{}, ErrNoMessage
	}
	msg := f.Messages[0]
	f.Messages = f.Messages[1:]
	return msg, nil
}

func (f *FakeHandle) DisplayName(ctx context.Context, senderID string) (string, error) {
	if f.NameErr != nil {
		return "", f.NameErr
	}
	name, ok := f.Names[senderID]
	if !ok {
		return "", errors.New("contact not found")
	}
	return name, nil
}

func (f *FakeHandle) DownloadAttachment(ctx context.Context, id uint64, thumb, extra string) (int32, error) {
	f.DownloadCalls++
	if f.OnDownload != nil {
		f.OnDownload()
	}
	if f.DownloadCalls <= f.DownloadFailures {
		return -1, nil
	}
	return 0, nil
}

func (f *FakeHandle) DecryptImage(ctx context.Context, src, dir string) (string, error) {
	f.DecryptCalls++
	if f.DecryptCalls <= f.DecryptFailures {
		return "", nil
	}
	stem := referenceStem(src)
	if stem == "" {
		stem = "decrypted"
	}
	path := filepath.Join(dir, stem+f.PayloadExt)
	if err := os.WriteFile(path, f.Payload, 0644); err != nil {
		return "", err
	}
	return path, nil
}

func (f *FakeHandle) Close() error {
	f.Closed = true
	return nil
}

// FakeDialer hands out FakeHandles, failing the first Failures dials
type FakeDialer struct {
	Handles  []*FakeHandle // returned in order; the last one is reused
	Failures int
	Err      error
	Dials    int
}

func (d *FakeDialer) Dial(ctx context.Context) (Handle, error) {
	d.Dials++
	if d.Dials <= d.Failures {
		if d.Err != nil {
			return nil, d.Err
		}
		return nil, errors.New("connection refused")
	}
	if len(d.Handles) == 0 {
		return nil, errors.New("no fake handles configured")
	}
	h := d.Handles[0]
	if len(d.Handles) > 1 {
		d.Handles = d.Handles[1:]
	}
	return h, nil
}

// NoSleep is a Sleeper that only honors cancellation
func NoSleep(ctx context.Context, d time.Duration) error {
	return ctx.Err()
}

// CreateTestImageMessage builds an image message from sender with an
// SDK-style extra reference
func CreateTestImageMessage(id uint64, sender, extra string) InboundMessage {
	return InboundMessage{
		ID:        id,
		Type:      MessageTypeImage,
		Sender:    sender,
		RoomID:    sender,
		Timestamp: time.Unix(1700000000, 0),
		Content:   `<msg><img md5="d41d8cd98f00b204e9800998ecf8427e" length="2048" cdnmidwidth="640" cdnmidheight="480"/></msg>`,
		Extra:     extra,
	}
}
