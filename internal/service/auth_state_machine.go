package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/clock"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
	"github.com/MKhiriev/go-wallet-keeper/internal/stream"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// DefaultLockoutTick is the countdown resolution of a PIN lockout.
const DefaultLockoutTick = time.Second

// AuthStateMachine computes the UserState and owns PIN entry. The lockout
// countdown runs on the context passed to NewAuthStateMachine, not on any
// sync session, so it survives session close/open cycles.
type AuthStateMachine struct {
	vault   *CredentialVault
	policy  LockoutPolicy
	clock   clock.TimeSource
	tick    time.Duration
	metrics *metrics.Metrics
	logger  *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// counters serializes read-modify-write of the lockout window.
	counters sync.Mutex

	mu        sync.Mutex
	locked    bool
	countdown bool
}

// NewAuthStateMachine creates a locked machine. A lockout that was active
// when the process stopped resumes its countdown.
func NewAuthStateMachine(
	ctx context.Context,
	vault *CredentialVault,
	policy LockoutPolicy,
	tc clock.TimeSource,
	tick time.Duration,
	m *metrics.Metrics,
	log *logger.Logger,
) *AuthStateMachine {
	if tc == nil {
		tc = clock.System{}
	}
	if tick <= 0 {
		tick = DefaultLockoutTick
	}

	machineCtx, cancel := context.WithCancel(ctx)
	a := &AuthStateMachine{
		vault:   vault,
		policy:  policy,
		clock:   tc,
		tick:    tick,
		metrics: m,
		logger:  log,
		ctx:     machineCtx,
		cancel:  cancel,
		locked:  true,
	}

	if w, err := vault.LockoutWindow(machineCtx); err == nil && w.Active() {
		a.startCountdown()
	}
	return a
}

// Close stops the lockout countdown.
func (a *AuthStateMachine) Close() {
	a.cancel()
	a.wg.Wait()
}

// State computes the current user state. It never fails: unreadable
// counters count as no lockout and a missing account as Uninitialized.
func (a *AuthStateMachine) State(ctx context.Context) models.UserState {
	if a.vault.AccountInvalidated() || !a.vault.PhraseKeyValid(ctx) {
		if a.vault.RequiresUninstall(ctx) {
			return models.KeyStoreInvalid(models.InvalidReasonUninstall)
		}
		return models.KeyStoreInvalid(models.InvalidReasonWipe)
	}

	if _, err := a.vault.GetAccount(ctx); err != nil {
		return models.Uninitialized()
	}

	if w, err := a.vault.LockoutWindow(ctx); err == nil {
		if secs := a.policy.SecondsRemaining(w, a.clock.Now()); secs > 0 {
			return models.Disabled(secs)
		}
	}

	a.mu.Lock()
	locked := a.locked
	a.mu.Unlock()
	if locked {
		return models.Locked()
	}
	return models.Enabled()
}

// StateChanges streams the user state, starting with the current one.
// Consecutive equal states are dropped. With disabledUpdates the stream
// also carries every countdown tick of a lockout.
func (a *AuthStateMachine) StateChanges(ctx context.Context, disabledUpdates bool) <-chan models.UserState {
	states := stream.Map(ctx, a.vault.Changes().Subscribe(ctx), func(uint64) models.UserState {
		return a.State(ctx)
	})

	return stream.DistinctFunc(ctx, states, func(prev, next models.UserState) bool {
		if prev == next {
			return true
		}
		return !disabledUpdates &&
			prev.Kind == models.UserStateDisabled &&
			next.Kind == models.UserStateDisabled
	})
}

// VerifyPIN checks a PIN entry. A wrong PIN is reported as false, not as
// an error. During a lockout every entry is rejected and the counters are
// left alone.
func (a *AuthStateMachine) VerifyPIN(ctx context.Context, pin string) (bool, error) {
	log := a.logger.With().Str("func", "AuthStateMachine.VerifyPIN").Logger()

	a.counters.Lock()
	defer a.counters.Unlock()

	w, err := a.vault.LockoutWindow(ctx)
	if err != nil {
		return false, err
	}
	if a.policy.SecondsRemaining(w, a.clock.Now()) > 0 {
		a.metrics.PINAttempt("locked_out")
		return false, nil
	}
	// without a stored PIN there is nothing to guess, so nothing is counted
	if !a.vault.HasPIN(ctx) {
		a.metrics.PINAttempt("no_pin")
		return false, nil
	}

	ok, err := a.vault.CheckPIN(ctx, pin)
	if err != nil {
		return false, err
	}

	if ok {
		if err = a.vault.resetLockout(ctx); err != nil {
			return false, err
		}
		a.metrics.PINAttempt("success")
		a.setLocked(false, true)
		return true, nil
	}

	a.metrics.PINAttempt("failure")
	count := w.FailCount + 1
	if err = a.vault.PutFailCount(ctx, count); err != nil {
		return false, err
	}

	if count >= a.policy.MaxAttempts {
		if err = a.vault.PutFailTimestamp(ctx, a.clock.Now()); err != nil {
			return false, err
		}
		log.Warn().Int("fail_count", count).Msg("pin entry disabled")
		a.startCountdown()
	}

	a.vault.Changes().Notify()
	return false, nil
}

// ConfigurePIN sets a new PIN and clears any lockout.
func (a *AuthStateMachine) ConfigurePIN(ctx context.Context, pin string) error {
	a.counters.Lock()
	defer a.counters.Unlock()

	if err := a.vault.ConfigurePIN(ctx, pin); err != nil {
		return err
	}
	if err := a.vault.PutFailTimestamp(ctx, time.Time{}); err != nil {
		return err
	}
	a.vault.Changes().Notify()
	return nil
}

// ClearPIN removes the PIN after the caller proved possession of the
// phrase, resets the lockout and unlocks.
func (a *AuthStateMachine) ClearPIN(ctx context.Context, phrase []byte) error {
	a.counters.Lock()
	defer a.counters.Unlock()

	if err := a.vault.ClearPIN(ctx, phrase); err != nil {
		return err
	}
	a.setLocked(false, true)
	return nil
}

// Lock and Unlock are idempotent and notify only on a flip.
func (a *AuthStateMachine) Lock() {
	a.setLocked(true, false)
}

func (a *AuthStateMachine) Unlock() {
	a.setLocked(false, false)
}

func (a *AuthStateMachine) setLocked(locked, force bool) {
	a.mu.Lock()
	changed := a.locked != locked
	a.locked = locked
	a.mu.Unlock()

	if changed || force {
		a.vault.Changes().Notify()
	}
}

// Refresh re-evaluates the state after an outside change such as the
// platform invalidating the store key.
func (a *AuthStateMachine) Refresh() {
	a.vault.Changes().Notify()
}

// Setup creates the account. An empty phrase generates a new one. The
// user is considered authenticated afterwards.
func (a *AuthStateMachine) Setup(ctx context.Context, phrase []byte) (models.Credential, error) {
	var (
		cred models.Credential
		err  error
	)
	if len(phrase) == 0 {
		cred, err = a.vault.SetupWithGeneratedPhrase(ctx)
	} else {
		cred, err = a.vault.SetupWithPhrase(ctx, phrase)
	}
	if err != nil {
		return cred, err
	}

	a.setLocked(false, true)
	return cred, nil
}

// IsMigrationRequired reports whether legacy data waits for Migrate.
func (a *AuthStateMachine) IsMigrationRequired(ctx context.Context) bool {
	return a.vault.IsMigrationRequired(ctx)
}

// Migrate runs the legacy data migration.
func (a *AuthStateMachine) Migrate(ctx context.Context) (bool, error) {
	return a.vault.MigrateLegacyData(ctx)
}

// Wipe deletes the credential and locks the machine.
func (a *AuthStateMachine) Wipe(ctx context.Context) error {
	a.mu.Lock()
	a.locked = true
	a.mu.Unlock()

	return a.vault.Wipe(ctx)
}

func (a *AuthStateMachine) startCountdown() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.countdown || a.ctx.Err() != nil {
		return
	}
	a.countdown = true

	a.wg.Add(1)
	go a.runCountdown()
}

// runCountdown wakes subscribers once per tick while the lockout lasts.
func (a *AuthStateMachine) runCountdown() {
	defer a.wg.Done()

	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()

	for {
		select {
		case <-a.ctx.Done():
			a.mu.Lock()
			a.countdown = false
			a.mu.Unlock()
			return
		case <-ticker.C:
		}

		if a.tickLockout() {
			return
		}
	}
}

// tickLockout clears the timestamp once the window has passed. The fail
// count is kept so the next lockout is longer. It reports whether the
// countdown is over.
func (a *AuthStateMachine) tickLockout() (done bool) {
	a.counters.Lock()
	defer a.counters.Unlock()

	defer func() {
		if done {
			a.mu.Lock()
			a.countdown = false
			a.mu.Unlock()
		}
	}()

	log := a.logger.With().Str("func", "AuthStateMachine.tickLockout").Logger()

	w, err := a.vault.LockoutWindow(a.ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return true
		}
		log.Error().Err(err).Msg("failed to read lockout window")
		return false
	}
	if !w.Active() {
		return true
	}

	if a.policy.SecondsRemaining(w, a.clock.Now()) <= 0 {
		if err = a.vault.PutFailTimestamp(a.ctx, time.Time{}); err != nil {
			log.Error().Err(err).Msg("failed to clear lockout")
			return false
		}
		log.Info().Msg("pin entry enabled")
		a.vault.Changes().Notify()
		return true
	}

	a.vault.Changes().Notify()
	return false
}
