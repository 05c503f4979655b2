package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NotFoundError は「対象が見つからない」を呼び出し側へ伝える。
// 致命ではなく、UI側は通知を出してリトライできる。
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s: not found", e.Resource, e.ID)
}

func NewNotFoundError(resource string, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

func AsNotFound(err error) (*NotFoundError, bool) {
	var ne *NotFoundError
	ok := errors.As(err, &ne)
	return ne, ok
}

// FieldErrors はフィールド単位のバリデーション結果。
// 最初の失敗で打ち切らず、全フィールド分をまとめて返す。
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	ok := errors.As(err, &fe)
	return fe, ok
}
