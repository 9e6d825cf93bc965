package interfaces

import (
	"context"
	"sync"
	"time"
)

// CachedInfo is one chat's conversation position: which form state it is in.
type CachedInfo struct {
	chatId   int64
	state    string
	sendTime time.Time
}

func NewCachedInfo(chatId int64, state string) *CachedInfo {
	return &CachedInfo{
		chatId:   chatId,
		state:    state,
		sendTime: time.Now().UTC(),
	}
}

func (info *CachedInfo) ChatId() int64 {
	return info.chatId
}

func (info *CachedInfo) State() string {
	return info.state
}

func (info *CachedInfo) SendTime() time.Time {
	return info.sendTime
}

// HandlersCache persists per-chat conversation state and the JSON blob of
// the form in progress, so a flow survives bot restarts mid-conversation.
type HandlersCache interface {
	SaveState(context.Context, CachedInfo) error
	GetState(ctx context.Context, chatId int64) (*CachedInfo, error)
	SaveInfo(ctx context.Context, chatId int64, json string) error
	GetInfo(ctx context.Context, chatId int64) (string, error)
	RemoveInfo(ctx context.Context, chatId int64) error
	AcquireLock(ctx context.Context, chatId int64) *sync.Mutex
}
