package reconcile

import (
	"sync"

	"github.com/heartmarshall/givefund-backend/internal/adapter/journal"
)

var _ captureJournal = &captureJournalMock{}

type captureJournalMock struct {
	CountFunc       func() (int, error)
	MarkAttemptFunc func(captureID string, reason string) error
	NextFunc        func(limit int) ([]journal.Entry, error)
	RemoveFunc      func(captureID string) error

	calls struct {
		Count []struct{}
		MarkAttempt []struct {
			CaptureID string
			Reason    string
		}
		Next []struct {
			Limit int
		}
		Remove []struct {
			CaptureID string
		}
	}
	lockCount       sync.RWMutex
	lockMarkAttempt sync.RWMutex
	lockNext        sync.RWMutex
	lockRemove      sync.RWMutex
}

func (mock *captureJournalMock) Count() (int, error) {
	if mock.CountFunc == nil {
		panic("captureJournalMock.CountFunc: method is nil but captureJournal.Count was just called")
	}
	callInfo := struct{}{}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc()
}

func (mock *captureJournalMock) CountCalls() []struct{} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *captureJournalMock) MarkAttempt(captureID string, reason string) error {
	if mock.MarkAttemptFunc == nil {
		panic("captureJournalMock.MarkAttemptFunc: method is nil but captureJournal.MarkAttempt was just called")
	}
	callInfo := struct {
		CaptureID string
		Reason    string
	}{CaptureID: captureID, Reason: reason}
	mock.lockMarkAttempt.Lock()
	mock.calls.MarkAttempt = append(mock.calls.MarkAttempt, callInfo)
	mock.lockMarkAttempt.Unlock()
	return mock.MarkAttemptFunc(captureID, reason)
}

func (mock *captureJournalMock) MarkAttemptCalls() []struct {
	CaptureID string
	Reason    string
} {
	mock.lockMarkAttempt.RLock()
	calls := mock.calls.MarkAttempt
	mock.lockMarkAttempt.RUnlock()
	return calls
}

func (mock *captureJournalMock) Next(limit int) ([]journal.Entry, error) {
	if mock.NextFunc == nil {
		panic("captureJournalMock.NextFunc: method is nil but captureJournal.Next was just called")
	}
	callInfo := struct {
		Limit int
	}{Limit: limit}
	mock.lockNext.Lock()
	mock.calls.Next = append(mock.calls.Next, callInfo)
	mock.lockNext.Unlock()
	return mock.NextFunc(limit)
}

func (mock *captureJournalMock) NextCalls() []struct {
	Limit int
} {
	mock.lockNext.RLock()
	calls := mock.calls.Next
	mock.lockNext.RUnlock()
	return calls
}

func (mock *captureJournalMock) Remove(captureID string) error {
	if mock.RemoveFunc == nil {
		panic("captureJournalMock.RemoveFunc: method is nil but captureJournal.Remove was just called")
	}
	callInfo := struct {
		CaptureID string
	}{CaptureID: captureID}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(captureID)
}

func (mock *captureJournalMock) RemoveCalls() []struct {
	CaptureID string
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}
