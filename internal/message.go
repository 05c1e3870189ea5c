package internal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
)

// MessageType is the WeChat message type tag
type MessageType uint32

// Message type tags as reported by the client. Only MessageTypeImage is archived.
const (
	MessageTypeText      MessageType = 1
	MessageTypeImage     MessageType = 3
	MessageTypeVoice     MessageType = 34
	MessageTypeVisitCard MessageType = 42
	MessageTypeVideo     MessageType = 43
	MessageTypeEmoji     MessageType = 47
	MessageTypeLocation  MessageType = 48
	MessageTypeApp       MessageType = 49
	MessageTypeVoip      MessageType = 50
	MessageTypeSystem    MessageType = 10000
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeText:
		return "text"
	case MessageTypeImage:
		return "image"
	case MessageTypeVoice:
		return "voice"
	case MessageTypeVisitCard:
		return "card"
	case MessageTypeVideo:
		return "video"
	case MessageTypeEmoji:
		return "emoji"
	case MessageTypeLocation:
		return "location"
	case MessageTypeApp:
		return "app"
	case MessageTypeVoip:
		return "voip"
	case MessageTypeSystem:
		return "system"
	default:
		return "type-" + strconv.FormatUint(uint64(t), 10)
	}
}

// InboundMessage is one message delivered by the SDK. It is consumed once
// by the message loop and never stored as-is.
type InboundMessage struct {
	ID        uint64
	Type      MessageType
	Sender    string // contact key (wxid)
	RoomID    string // chat the message arrived in; equals Sender for 1:1 chats
	IsSelf    bool
	IsGroup   bool
	Timestamp time.Time
	Content   string // raw XML for media messages
	Thumb     string
	Extra     string // SDK reference to the encrypted payload; may be empty
}

// IsImage reports whether the message carries an image attachment
func (m InboundMessage) IsImage() bool {
	return m.Type == MessageTypeImage
}

// HasExtra reports whether the SDK supplied an extra reference
func (m InboundMessage) HasExtra() bool {
	return strings.TrimSpace(m.Extra) != ""
}

// ImageInfo is the metadata carried in an image message's XML body
type ImageInfo struct {
	MD5    string
	Length int64
	Width  int
	Height int
}

// ParseImageInfo extracts the <img> attributes from an image message body,
// e.g. <msg><img md5="..." length="12345" cdnmidwidth="..."/></msg>.
func ParseImageInfo(content string) (ImageInfo, error) {
	var info ImageInfo
	if strings.TrimSpace(content) == "" {
		return info, fmt.Errorf("empty message content")
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(content); err != nil {
		return info, fmt.Errorf("failed to parse image xml: %w", err)
	}

	img := doc.FindElement("//img")
	if img == nil {
		return info, fmt.Errorf("no <img> element in message content")
	}

	info.MD5 = img.SelectAttrValue("md5", "")
	if v := img.SelectAttrValue("length", ""); v != "" {
		info.Length, _ = strconv.ParseInt(v, 10, 64)
	}
	if v := img.SelectAttrValue("cdnmidwidth", ""); v != "" {
		info.Width, _ = strconv.Atoi(v)
	}
	if v := img.SelectAttrValue("cdnmidheight", ""); v != "" {
		info.Height, _ = strconv.Atoi(v)
	}

	return info, nil
}
