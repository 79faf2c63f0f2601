package donation

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ accountSearcher = &accountSearcherMock{}

type accountSearcherMock struct {
	SearchIDsByFullnameFunc func(ctx context.Context, keyword string) ([]uuid.UUID, error)

	calls struct {
		SearchIDsByFullname []struct {
			Ctx     context.Context
			Keyword string
		}
	}
	lockSearchIDsByFullname sync.RWMutex
}

func (mock *accountSearcherMock) SearchIDsByFullname(ctx context.Context, keyword string) ([]uuid.UUID, error) {
	if mock.SearchIDsByFullnameFunc == nil {
		panic("accountSearcherMock.SearchIDsByFullnameFunc: method is nil but accountSearcher.SearchIDsByFullname was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Keyword string
	}{Ctx: ctx, Keyword: keyword}
	mock.lockSearchIDsByFullname.Lock()
	mock.calls.SearchIDsByFullname = append(mock.calls.SearchIDsByFullname, callInfo)
	mock.lockSearchIDsByFullname.Unlock()
	return mock.SearchIDsByFullnameFunc(ctx, keyword)
}

func (mock *accountSearcherMock) SearchIDsByFullnameCalls() []struct {
	Ctx     context.Context
	Keyword string
} {
	mock.lockSearchIDsByFullname.RLock()
	calls := mock.calls.SearchIDsByFullname
	mock.lockSearchIDsByFullname.RUnlock()
	return calls
}
