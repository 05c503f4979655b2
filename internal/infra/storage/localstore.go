// Package storage はブラウザのlocalStorage相当の保存層。
// 固定キーの下にJSON値をぶら下げ、Setのたびにファイルへ同期書き込みする。
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// 保存データが壊れていたとき（fail closed で空ストア起動）
var ErrCorruptState = errors.New("corrupt stored state")

type Store struct {
	mu   sync.RWMutex
	path string
	data map[string]json.RawMessage
	warn error
}

// Open はファイルを読み込む。無ければ空ストア。
// パースできないファイルは空ストア扱いにし、理由は Warning() で拾える。
// 握りつぶさず空で立ち上げる方針（seedカタログがあるので空でも動く）。
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	if err := json.Unmarshal(b, &s.data); err != nil {
		s.data = make(map[string]json.RawMessage)
		s.warn = fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return s, nil
}

// Warning はOpen時に捨てた壊れデータの理由。正常ならnil。
func (s *Store) Warning() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.warn
}

// Get はキーの値を v にデコードする。キーが無い、または値が壊れていれば false。
func (s *Store) Get(key string, v any) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.data[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false
	}
	return true
}

// Has はキーの有無だけを見る。
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[key]
	return ok
}

// Set は値を書き、即座に全スナップショットをファイルへ落とす。
func (s *Store) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return s.persist()
}

// Delete はキーを消して書き戻す。
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return s.persist()
}

// persist は tmp に書いて rename。呼び出し側でロック済み。
func (s *Store) persist() error {
	b, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}
