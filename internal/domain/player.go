package domain

// DefaultNickname is used when the player info payload carries no nickname
const DefaultNickname = "Unknown"

// BasicInfo is the part of a player info payload the level endpoints read.
// Level and Exp keep the raw decoded JSON values; they are coerced to integers
// by the level calculator, which decides whether they are usable.
type BasicInfo struct {
	Nickname string
	Level    any
	Exp      any
}
