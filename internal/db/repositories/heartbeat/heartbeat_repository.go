package heartbeat

import (
	"context"
	"errors"
	"strings"

	"github.com/MyelinBots/heartbeat-go/internal/db"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=heartbeat_repository.go -destination=../../../../mocks/mock_heartbeat/heartbeat_repository.go -package=mock_heartbeat

type HeartbeatRepository interface {
	Record(ctx context.Context, beat *Heartbeat) error
	Latest(ctx context.Context, source string) (*Heartbeat, error)
	Count(ctx context.Context, source string) (int64, error)
}

type HeartbeatRepositoryImpl struct {
	db *db.DB
}

func NewHeartbeatRepository(database *db.DB) HeartbeatRepository {
	return &HeartbeatRepositoryImpl{db: database}
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Record inserts a beat, assigning an id when the caller left it empty.
func (r *HeartbeatRepositoryImpl) Record(ctx context.Context, beat *Heartbeat) error {
	if beat.ID == "" {
		beat.ID = uuid.NewString()
	}
	beat.Network = norm(beat.Network)
	beat.Channel = norm(beat.Channel)
	return r.db.DB.WithContext(ctx).Create(beat).Error
}

// Latest returns nil, nil when the source has no beats yet.
func (r *HeartbeatRepositoryImpl) Latest(ctx context.Context, source string) (*Heartbeat, error) {
	var beat Heartbeat
	err := r.db.DB.WithContext(ctx).
		Where("source = ?", source).
		Order("beat_at DESC").
		First(&beat).Error
	return firstOrNil(&beat, err)
}

// firstOrNil maps gorm's not-found error to a nil result.
func firstOrNil[T any](v *T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

func (r *HeartbeatRepositoryImpl) Count(ctx context.Context, source string) (int64, error) {
	var n int64
	err := r.db.DB.WithContext(ctx).
		Model(&Heartbeat{}).
		Where("source = ?", source).
		Count(&n).Error
	return n, err
}
