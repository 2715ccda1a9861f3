package playerinfo

import "time"

// Defaults for the upstream player info service
const (
	DefaultBaseURL = "https://infoooooo-v6v5.vercel.app/info"
	DefaultRegion  = "IND"
	DefaultTimeout = 20 * time.Second
)

// Query parameter names
const (
	QueryParamUID    = "uid"
	QueryParamRegion = "region"
)

// Payload keys
const (
	KeyBasicInfo = "basicInfo"
	KeyNickname  = "nickname"
	KeyLevel     = "level"
	KeyExp       = "exp"
)

// Log messages
const (
	LogMsgFetching     = "Fetching player info"
	LogMsgFetchFailed  = "Player info request failed"
	LogMsgFetchSuccess = "Player info received"
)
