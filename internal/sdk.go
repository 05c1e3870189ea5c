package internal

import "context"

// Dialer opens a connection to the automation SDK.
type Dialer interface {
	Dial(ctx context.Context) (Handle, error)
}

// Handle is a live SDK connection. Implementations are not required to be
// safe for concurrent use; the monitor drives a handle from one goroutine.
type Handle interface {
	// IsLoggedIn reports whether WeChat has an account logged in.
	IsLoggedIn(ctx context.Context) (bool, error)
	// SelfID returns the logged-in account's wxid.
	SelfID(ctx context.Context) (string, error)
	// EnableReceiving asks the SDK to start delivering messages.
	EnableReceiving(ctx context.Context) error
	// Receive returns the next message, or ErrNoMessage when none arrived
	// within the SDK's receive timeout.
	Receive(ctx context.Context) (InboundMessage, error)
	// DisplayName resolves a contact key to its display name.
	DisplayName(ctx context.Context, senderID string) (string, error)
	// DownloadAttachment asks WeChat to fetch the encrypted attachment into
	// the location referenced by extra. Zero status means success.
	DownloadAttachment(ctx context.Context, id uint64, thumb, extra string) (int32, error)
	// DecryptImage decrypts the file at src into dir and returns the
	// decrypted path, or "" when nothing was produced.
	DecryptImage(ctx context.Context, src, dir string) (string, error)
	// Close releases the connection.
	Close() error
}
