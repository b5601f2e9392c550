package live

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bililink-cli/bililink/util"
	"golang.org/x/text/unicode/norm"
)

// Host is the room page host accepted in room URLs.
const Host = "live.bilibili.com"

var (
	plainRoomID = regexp.MustCompile(`^\d+$`)
	roomURL     = regexp.MustCompile(`(?:https?://)?live\.bilibili\.com/(?:h5/|blanc/)?(?P<id>\d+)(?:[/?#]|$)`)
)

// RoomID identifies a live room. Valid ids are positive.
type RoomID uint32

// ParseRoomID accepts a bare room number or a room page URL such as https://live.bilibili.com/21452505.
// Full-width digits typed through an input method are folded to ASCII first.
func ParseRoomID(s string) (RoomID, error) {
	s = strings.TrimSpace(norm.NFKC.String(s))

	digits := s
	if !plainRoomID.MatchString(s) {
		digits = util.ReGroups(roomURL, s)["id"]
	}

	if digits == "" {
		return 0, fmt.Errorf("%w: %q is neither a room number nor a room url", ErrInvalidInput, s)
	}

	id, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: room number %s is out of range", ErrInvalidInput, digits)
	}

	if id == 0 {
		return 0, fmt.Errorf("%w: room number must be positive", ErrInvalidInput)
	}

	return RoomID(id), nil
}

func (r RoomID) String() string {
	return strconv.FormatUint(uint64(r), 10)
}

// URL returns the room page address.
func (r RoomID) URL() string {
	return "https://" + Host + "/" + r.String()
}
