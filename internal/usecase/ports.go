package usecase

import "time"

// 現在の時間
type Clock interface {
	Now() time.Time
}

// Notifier はトースト通知の約束。発火して終わり、結果は見ない。
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// NopNotifier は通知先が無いときのダミー。
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
func (NopNotifier) Info(string)    {}

// CartCountListener はヘッダのカートバッジ更新先。nil可。
type CartCountListener interface {
	CartCountChanged(count int64)
}
