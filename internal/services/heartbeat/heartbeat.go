package heartbeat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MyelinBots/heartbeat-go/config"
	hbrepo "github.com/MyelinBots/heartbeat-go/internal/db/repositories/heartbeat"
	"github.com/apex/log"
	"github.com/google/uuid"
	"golang.org/x/xerrors"
)

type HeartbeatService interface {
	Beat(ctx context.Context) error
	Resume(ctx context.Context) error
	Total(ctx context.Context) (int64, error)
	Status() Status
}

type IRCClient interface {
	Privmsg(channel, message string)
}

type Status struct {
	Source     string
	Sequence   int64
	LastBeatAt time.Time
	LastError  error
}

type HeartbeatServiceImpl struct {
	Repo          hbrepo.HeartbeatRepository
	IrcClient     IRCClient
	Source        string
	Network       string
	Channel       string
	AnnounceEvery int
	WriteTimeout  time.Duration

	now    func() time.Time
	mu     sync.Mutex
	status Status
}

// NewHeartbeatService builds the service. client may be nil, in which case
// announcements are skipped. A random source id is used when none is
// configured.
func NewHeartbeatService(repo hbrepo.HeartbeatRepository, client IRCClient, cfg config.HeartbeatConfig, network, channel string) *HeartbeatServiceImpl {
	source := cfg.Source
	if source == "" {
		source = uuid.NewString()
	}
	return &HeartbeatServiceImpl{
		Repo:          repo,
		IrcClient:     client,
		Source:        source,
		Network:       network,
		Channel:       channel,
		AnnounceEvery: cfg.AnnounceEvery,
		WriteTimeout:  cfg.WriteTimeout(),
		now:           time.Now,
		status:        Status{Source: source},
	}
}

// Beat records the next beat. The sequence advances even when the write
// fails, so gaps in the table mark missed beats.
func (s *HeartbeatServiceImpl) Beat(ctx context.Context) error {
	s.mu.Lock()
	s.status.Sequence++
	seq := s.status.Sequence
	s.mu.Unlock()

	at := s.now()
	wctx, cancel := context.WithTimeout(ctx, s.WriteTimeout)
	defer cancel()
	err := s.Repo.Record(wctx, &hbrepo.Heartbeat{
		Source:   s.Source,
		Network:  s.Network,
		Channel:  s.Channel,
		Sequence: seq,
		BeatAt:   at,
	})

	s.mu.Lock()
	s.status.LastError = err
	if err == nil {
		s.status.LastBeatAt = at
	}
	s.mu.Unlock()

	if err != nil {
		return xerrors.Errorf("record beat %d: %w", seq, err)
	}
	log.WithFields(log.Fields{"source": s.Source, "sequence": seq}).Debug("beat recorded")

	if s.IrcClient != nil && s.AnnounceEvery > 0 && seq%int64(s.AnnounceEvery) == 0 {
		s.IrcClient.Privmsg(s.Channel, fmt.Sprintf("💓 heartbeat #%d from %s at %s", seq, s.Source, at.UTC().Format(time.RFC3339)))
	}
	return nil
}

// Resume continues the sequence from the latest persisted beat of this source.
func (s *HeartbeatServiceImpl) Resume(ctx context.Context) error {
	latest, err := s.Repo.Latest(ctx, s.Source)
	if err != nil {
		return xerrors.Errorf("load latest beat: %w", err)
	}
	if latest == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if latest.Sequence > s.status.Sequence {
		s.status.Sequence = latest.Sequence
		s.status.LastBeatAt = latest.BeatAt
	}
	log.Infof("resuming %s at sequence %d", s.Source, s.status.Sequence)
	return nil
}

func (s *HeartbeatServiceImpl) Total(ctx context.Context) (int64, error) {
	n, err := s.Repo.Count(ctx, s.Source)
	if err != nil {
		return 0, xerrors.Errorf("count beats: %w", err)
	}
	return n, nil
}

func (s *HeartbeatServiceImpl) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}
