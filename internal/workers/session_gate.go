package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

const defaultCloseDelay = 30 * time.Second

// SessionGate opens the sync session while the user is signed in. When the
// state leaves Enabled the session stays open for the close delay so a
// quick unlock does not pay for a reconnect. Uninitialized and
// KeyStoreInvalid close at once.
type SessionGate struct {
	states   UserStates
	accounts AccountSource
	session  SessionController
	delay    time.Duration
	logger   *logger.Logger
}

func NewSessionGate(states UserStates, accounts AccountSource, session SessionController, delay time.Duration, log *logger.Logger) *SessionGate {
	if delay < 0 {
		delay = defaultCloseDelay
	}
	return &SessionGate{
		states:   states,
		accounts: accounts,
		session:  session,
		delay:    delay,
		logger:   log,
	}
}

// Run follows the user state until ctx is done and closes the session on
// the way out. Unavailable storage while opening the session stops the
// gate with an error.
func (g *SessionGate) Run(ctx context.Context) error {
	states := g.states.StateChanges(ctx, false)

	var (
		timer   *time.Timer
		closeCh <-chan time.Time
	)
	cancelClose := func() {
		if timer != nil {
			timer.Stop()
			timer, closeCh = nil, nil
		}
	}
	defer cancelClose()

	for {
		select {
		case <-ctx.Done():
			g.close("shutdown")
			return nil
		case <-closeCh:
			timer, closeCh = nil, nil
			g.close("close delay elapsed")
		case state, ok := <-states:
			if !ok {
				g.close("state stream closed")
				return nil
			}

			switch state.Kind {
			case models.UserStateEnabled:
				cancelClose()
				if err := g.open(ctx); err != nil {
					g.close("storage unavailable")
					return err
				}
			case models.UserStateLocked, models.UserStateDisabled:
				if timer == nil && g.session.IsOpen() {
					timer = time.NewTimer(g.delay)
					closeCh = timer.C
				}
			default:
				cancelClose()
				g.close("user state " + state.Kind.String())
			}
		}
	}
}

// open returns an error only when the failure is fatal for the daemon.
func (g *SessionGate) open(ctx context.Context) error {
	if g.session.IsOpen() {
		return nil
	}
	log := g.logger.With().Str("func", "SessionGate.open").Logger()

	account, err := g.accounts.GetAccount(ctx)
	if err != nil {
		log.Error().Err(err).Msg("no account to open the sync session with")
		return nil
	}
	if err = g.session.Open(ctx, account); err != nil {
		if errors.Is(err, service.ErrStorageUnavailable) {
			log.Error().Err(err).Msg("storage unavailable, stopping sync session gate")
			return fmt.Errorf("open sync session: %w", err)
		}
		log.Error().Err(err).Msg("failed to open sync session")
	}
	return nil
}

func (g *SessionGate) close(reason string) {
	closed, err := g.session.CloseIfOpen()
	if err != nil {
		g.logger.Error().Err(err).Str("func", "SessionGate.close").Msg("failed to close sync session")
		return
	}
	if closed {
		g.logger.Info().Str("func", "SessionGate.close").Str("reason", reason).Msg("sync session closed")
	}
}
