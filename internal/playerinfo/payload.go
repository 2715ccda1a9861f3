package playerinfo

import (
	"fmt"

	"github.com/osse101/LevelInfo_Go/internal/domain"
)

// Payload is the decoded player info response, left un-interpreted
type Payload map[string]any

// BasicInfo extracts nickname, level and exp from the basicInfo object.
// Missing fields default to "Unknown", 0 and 0. A basicInfo value that is not
// an object is treated as missing.
func (p Payload) BasicInfo() domain.BasicInfo {
	info := domain.BasicInfo{
		Nickname: domain.DefaultNickname,
		Level:    0,
		Exp:      0,
	}

	basic, ok := p[KeyBasicInfo].(map[string]any)
	if !ok {
		return info
	}

	if v, ok := basic[KeyNickname]; ok {
		info.Nickname = nicknameString(v)
	}
	if v, ok := basic[KeyLevel]; ok {
		info.Level = v
	}
	if v, ok := basic[KeyExp]; ok {
		info.Exp = v
	}
	return info
}

func nicknameString(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case nil:
		return domain.DefaultNickname
	default:
		return fmt.Sprint(n)
	}
}
