package service

import (
	"context"
	"encoding/json"

	"recruai-web/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
)

// Fanout delivers a payload to every live connection in a scope.
// *websocket.Hub implements it.
type Fanout interface {
	SendToScope(scope string, payload []byte)
}

type IRefreshRelay interface {
	Consume(ctx context.Context) error
}

type refreshRelay struct {
	sub    message.Subscriber
	fanout Fanout
	log    logger.ILogger
	encode func(v any) ([]byte, error)
}

func NewRefreshRelay(sub message.Subscriber, fanout Fanout, log logger.ILogger) IRefreshRelay {
	return &refreshRelay{sub: sub, fanout: fanout, log: log, encode: json.Marshal}
}

// Consume forwards change notices to the hub until ctx is done.
func (r *refreshRelay) Consume(ctx context.Context) error {
	messages, err := r.sub.Subscribe(ctx, TopicCollectionChanged)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			r.processMessage(msg)
		}
	}()
	return nil
}

func (r *refreshRelay) processMessage(msg *message.Message) {
	var notice ChangeNotice
	if err := json.Unmarshal(msg.Payload, &notice); err != nil || notice.Scope == "" {
		r.log.Warn("RefreshRelay", "dropping malformed change notice", map[string]interface{}{"message_id": msg.UUID})
		msg.Ack()
		return
	}

	frame, err := r.encode(map[string]string{
		"type":       TopicCollectionChanged,
		"collection": notice.Collection,
		"action":     notice.Action,
	})
	if err != nil {
		r.log.Error("RefreshRelay", "failed to encode refresh frame", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		msg.Ack()
		return
	}
	r.fanout.SendToScope(notice.Scope, frame)
	msg.Ack()
}
