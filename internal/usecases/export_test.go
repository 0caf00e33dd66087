package usecases

import "time"

// SetNowForTest pins the usecase clock and returns a restore func.
func SetNowForTest(f func() time.Time) func() {
	prev := timeNow
	timeNow = f
	return func() { timeNow = prev }
}

// SetRecordIDForTest replaces the record id generator and returns a restore func.
func SetRecordIDForTest(f func(prefix string) string) func() {
	prev := newRecordID
	newRecordID = f
	return func() { newRecordID = prev }
}

// SetSessionIDForTest replaces the session id generator and returns a restore func.
func SetSessionIDForTest(f func() string) func() {
	prev := newSessionID
	newSessionID = f
	return func() { newSessionID = prev }
}
