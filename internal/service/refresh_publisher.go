package service

import (
	"context"
	"encoding/json"

	"recruai-web/internal/pkg/logger"
	"recruai-web/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// TopicCollectionChanged carries ChangeNotice payloads on the in-process bus.
const TopicCollectionChanged = events.TypeCollectionChanged

const (
	CollectionInterviews    = "interviews"
	CollectionTeam          = "team"
	CollectionPipeline      = "pipeline"
	CollectionOrganizations = "organizations"
	CollectionCandidates    = "candidates"
)

// ChangeNotice tells open dashboards that a collection changed server-side and
// must be re-fetched. It never carries the changed data.
type ChangeNotice struct {
	Scope      string `json:"scope"`
	Collection string `json:"collection"`
	Action     string `json:"action"`
	ID         string `json:"id,omitempty"`
}

type IRefreshPublisher interface {
	CollectionChanged(ctx context.Context, notice ChangeNotice)
}

type refreshPublisher struct {
	pub message.Publisher
	log logger.ILogger
}

func NewRefreshPublisher(pub message.Publisher, log logger.ILogger) IRefreshPublisher {
	return &refreshPublisher{pub: pub, log: log}
}

// CollectionChanged is fire-and-forget; the mutation already succeeded.
func (p *refreshPublisher) CollectionChanged(ctx context.Context, notice ChangeNotice) {
	if notice.Scope == "" {
		return
	}
	payload, err := json.Marshal(notice)
	if err != nil {
		p.log.Error("RefreshPublisher", "failed to marshal change notice", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	if err := p.pub.Publish(TopicCollectionChanged, msg); err != nil {
		p.log.Warn("RefreshPublisher", "failed to publish change notice", map[string]interface{}{
			"collection": notice.Collection,
			"error":      err.Error(),
		})
	}
}
