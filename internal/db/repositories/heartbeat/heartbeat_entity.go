package heartbeat

import "time"

type Heartbeat struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Source    string    `gorm:"column:source;type:text;not null;index:idx_heartbeat_source_beat_at,priority:1" json:"source"`
	Network   string    `gorm:"column:network;type:text;not null" json:"network"`
	Channel   string    `gorm:"column:channel;type:text;not null" json:"channel"`
	Sequence  int64     `gorm:"column:sequence;type:bigint;not null" json:"sequence"`
	BeatAt    time.Time `gorm:"column:beat_at;not null;index:idx_heartbeat_source_beat_at,priority:2" json:"beat_at"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Heartbeat) TableName() string {
	return "heartbeat"
}
