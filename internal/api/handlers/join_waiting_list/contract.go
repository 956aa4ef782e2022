package join_waiting_list

import (
	"context"

	joinWaitingList "github.com/rockm4n/GymMate/internal/usecase/join_waiting_list"
)

type JoinWaitingListUseCase interface {
	Execute(ctx context.Context, req *joinWaitingList.Request) (*joinWaitingList.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
