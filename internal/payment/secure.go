package payment

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TokenGenerator は疑似トークンを作る約束
type TokenGenerator interface {
	NewToken() string
}

// UUIDTokenGenerator が本番実装。
type UUIDTokenGenerator struct{}

func (UUIDTokenGenerator) NewToken() string {
	return uuid.NewString()
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// Envelope はbase64に包む中身。
type Envelope struct {
	Data      any    `json:"data"`
	Timestamp int64  `json:"timestamp"`
	Token     string `json:"token"`
}

// Encryptor は任意データをbase64のJSON封筒に包む。
// 名前に反して暗号ではない。デモ用のパッケージングであって、セキュリティ境界ではない。
type Encryptor struct {
	tokens TokenGenerator
	clock  Clock
}

func NewEncryptor(tokens TokenGenerator, clock Clock) *Encryptor {
	return &Encryptor{tokens: tokens, clock: clock}
}

func (e *Encryptor) Encrypt(data any) (string, error) {
	b, err := json.Marshal(Envelope{
		Data:      data,
		Timestamp: e.clock.Now().UnixMilli(),
		Token:     e.tokens.NewToken(),
	})
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// Decode はテストとデバッグ用。封筒を開けるだけ。
func Decode(s string) (Envelope, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Envelope{}, err
	}
	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return Envelope{}, err
	}
	return env, nil
}
