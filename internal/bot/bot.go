package bot

import (
	"context"
	"crypto/tls"
	"fmt"
	"sync"
	"time"

	"github.com/MyelinBots/heartbeat-go/config"
	"github.com/MyelinBots/heartbeat-go/internal/db"
	hbrepo "github.com/MyelinBots/heartbeat-go/internal/db/repositories/heartbeat"
	"github.com/MyelinBots/heartbeat-go/internal/healthcheck"
	"github.com/MyelinBots/heartbeat-go/internal/services/commands"
	"github.com/MyelinBots/heartbeat-go/internal/services/heartbeat"
	"github.com/MyelinBots/heartbeat-go/repeater"
	"github.com/apex/log"
	irc "github.com/fluffle/goirc/client"
	"golang.org/x/xerrors"
)

type Identified struct {
	sync.Mutex
	identified bool
}

// StartBot runs until ctx is cancelled or the IRC connection drops.
func StartBot(ctx context.Context, cfg config.Config) error {
	if len(cfg.IRCConfig.Channels) == 0 {
		return xerrors.New("no IRC channels configured")
	}
	channel := cfg.IRCConfig.Channels[0]

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Infof("starting %s %s", cfg.AppConfig.APPName, cfg.AppConfig.Version)

	database, err := db.NewDatabase(cfg.DBConfig)
	if err != nil {
		return err
	}
	defer database.Close()
	repo := hbrepo.NewHeartbeatRepository(database)

	ircConfig := irc.NewConfig(cfg.IRCConfig.Nick)
	ircConfig.SSL = cfg.IRCConfig.SSL
	ircConfig.SSLConfig = &tls.Config{InsecureSkipVerify: true}
	ircConfig.Server = fmt.Sprintf("%s:%d", cfg.IRCConfig.Host, cfg.IRCConfig.Port)
	conn := irc.Client(ircConfig)

	beats := heartbeat.NewHeartbeatService(repo, conn, cfg.HeartbeatConfig, cfg.IRCConfig.Network, channel)
	if err := beats.Resume(ctx); err != nil {
		log.WithError(err).Warn("could not resume sequence")
	}

	rep, err := repeater.New(cfg.HeartbeatConfig.Interval(), repeater.Bind(beats.Beat, ctx), repeater.WithName("heartbeat"))
	if err != nil {
		return err
	}
	defer rep.Stop()

	healthcheck.StartHealthcheck(ctx, cfg.AppConfig, rep)

	controller := commands.NewCommandController(rep, beats, conn, channel)
	controller.AddCommand("!beat", controller.StatusHandler())
	controller.AddCommand("!pause", controller.PauseHandler())
	controller.AddCommand("!resume", controller.ResumeHandler())
	controller.AddCommand("!heartbeat", controller.HelpHandler())

	identified := &Identified{}
	joinAll := func(conn *irc.Conn, line *irc.Line) {
		for _, channel := range cfg.IRCConfig.Channels {
			conn.Join(channel)
		}
	}

	conn.HandleFunc(irc.CONNECTED, func(conn *irc.Conn, line *irc.Line) {
		log.Infof("connected to %s", cfg.IRCConfig.Host)
		joinAll(conn, line)
	})
	// no MOTD / end of MOTD
	conn.HandleFunc("422", joinAll)
	conn.HandleFunc("376", joinAll)

	conn.HandleFunc(irc.JOIN, joinHandler(cfg.IRCConfig, channel, identified, rep))

	conn.HandleFunc(irc.PRIVMSG, func(conn *irc.Conn, line *irc.Line) {
		if err := controller.HandleCommand(ctx, line); err != nil {
			log.WithError(err).Error("handling command")
		}
	})

	quit := make(chan struct{}, 1)
	conn.HandleFunc(irc.DISCONNECTED, disconnectHandler(rep, quit))

	if err := conn.Connect(); err != nil {
		return xerrors.Errorf("connect to %s: %w", ircConfig.Server, err)
	}

	select {
	case <-quit:
		log.Warn("disconnected")
	case <-ctx.Done():
		log.Info("shutting down")
		rep.Stop()
		conn.Quit("heartbeat stopping")
		select {
		case <-quit:
		case <-time.After(5 * time.Second):
			conn.Close()
		}
	}
	return nil
}

// joinHandler starts the runner once the bot itself has joined channel.
func joinHandler(cfg config.IRCConfig, channel string, identified *Identified, rep commands.Runner) irc.HandlerFunc {
	return func(conn *irc.Conn, line *irc.Line) {
		if len(line.Args) == 0 || line.Nick != conn.Me().Nick {
			return
		}
		log.Infof("joined %s", line.Args[0])
		handleNickserv(cfg, identified, conn)
		if line.Args[0] == channel {
			rep.Start()
		}
	}
}

// disconnectHandler stops the runner and signals quit without blocking.
func disconnectHandler(rep commands.Runner, quit chan<- struct{}) irc.HandlerFunc {
	return func(conn *irc.Conn, line *irc.Line) {
		rep.Stop()
		select {
		case quit <- struct{}{}:
		default:
		}
	}
}

func handleNickserv(cfg config.IRCConfig, identified *Identified, c *irc.Conn) {
	identified.Lock()
	defer identified.Unlock()
	if !identified.identified && cfg.NickservPassword != "" {
		command := fmt.Sprintf(cfg.NickservCommand, cfg.NickservPassword)
		c.Raw(command)
		identified.identified = true
	}
}
