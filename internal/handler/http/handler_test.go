package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/mock"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// ─────────────────────────────────────────────
// Call journal
// ─────────────────────────────────────────────

// callLog records calls across fakes so tests can check their order.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (c *callLog) add(call string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
}

func (c *callLog) list() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

// ─────────────────────────────────────────────
// Fake UserAuth
// ─────────────────────────────────────────────

type fakeAuth struct {
	log *callLog

	state  models.UserState
	states chan models.UserState

	setupFn    func(phrase []byte) (models.Credential, error)
	verifyFn   func(pin string) (bool, error)
	pinErr     error
	clearErr   error
	migrated   bool
	migrateErr error
	legacy     bool
	wipeErr    error
}

func (f *fakeAuth) State(context.Context) models.UserState { return f.state }

func (f *fakeAuth) StateChanges(ctx context.Context, disabledUpdates bool) <-chan models.UserState {
	if disabledUpdates {
		f.log.add("changes(disabled)")
	} else {
		f.log.add("changes")
	}

	out := make(chan models.UserState)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case s := <-f.states:
				select {
				case out <- s:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

func (f *fakeAuth) Setup(_ context.Context, phrase []byte) (models.Credential, error) {
	f.log.add("setup")
	return f.setupFn(phrase)
}

func (f *fakeAuth) IsMigrationRequired(context.Context) bool {
	f.log.add("migration?")
	return f.legacy
}

func (f *fakeAuth) Migrate(context.Context) (bool, error) {
	f.log.add("migrate")
	return f.migrated, f.migrateErr
}

func (f *fakeAuth) ConfigurePIN(_ context.Context, pin string) error {
	f.log.add("pin:" + pin)
	return f.pinErr
}

func (f *fakeAuth) VerifyPIN(_ context.Context, pin string) (bool, error) {
	f.log.add("verify:" + pin)
	return f.verifyFn(pin)
}

func (f *fakeAuth) ClearPIN(_ context.Context, phrase []byte) error {
	f.log.add("clear:" + string(phrase))
	return f.clearErr
}

func (f *fakeAuth) Lock()   { f.log.add("lock") }
func (f *fakeAuth) Unlock() { f.log.add("unlock") }

func (f *fakeAuth) Wipe(context.Context) error {
	f.log.add("auth.wipe")
	return f.wipeErr
}

// ─────────────────────────────────────────────
// Fake AuthPrompt
// ─────────────────────────────────────────────

type fakePrompt struct {
	pending    bool
	resolveErr error
	resolved   []bool
}

func (f *fakePrompt) Pending() bool { return f.pending }

func (f *fakePrompt) Resolve(approved bool) error {
	if f.resolveErr != nil {
		return f.resolveErr
	}
	f.resolved = append(f.resolved, approved)
	return nil
}

// ─────────────────────────────────────────────
// Fake SyncSession and its views
// ─────────────────────────────────────────────

type fakeViews struct {
	wallets   []models.WalletView
	transfers map[string][]models.TransferView
	states    map[string]models.WalletState
	lastOpts  int
}

func (v *fakeViews) WalletsSnapshot(opts ...service.ViewOption) []models.WalletView {
	v.lastOpts = len(opts)
	return v.wallets
}

func (v *fakeViews) WalletSnapshot(id string) (models.WalletView, bool) {
	for _, w := range v.wallets {
		if w.ID == id {
			return w, true
		}
	}
	return models.WalletView{}, false
}

func (v *fakeViews) TransfersSnapshot(id string) ([]models.TransferView, bool) {
	t, ok := v.transfers[id]
	return t, ok
}

func (v *fakeViews) WalletStateSnapshot(id string) (models.WalletState, bool) {
	s, ok := v.states[id]
	return s, ok
}

type fakeSession struct {
	log *callLog

	// views is nil while the session is closed
	views *fakeViews

	initState models.NetworkState
	initErr   error
	wipeErr   error
}

func (f *fakeSession) Views() (service.WalletViews, bool) {
	if f.views == nil {
		return nil, false
	}
	return f.views, true
}

func (f *fakeSession) InitializeWallet(_ context.Context, currencyID string) (models.NetworkState, error) {
	f.log.add("initialize:" + currencyID)
	return f.initState, f.initErr
}

func (f *fakeSession) Wipe() error {
	f.log.add("session.wipe")
	return f.wipeErr
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testDeps struct {
	calls     *callLog
	auth      *fakeAuth
	prompt    *fakePrompt
	session   *fakeSession
	selection *mock.MockWalletSelectionProvider
	handler   *Handler
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	calls := &callLog{}
	d := &testDeps{
		calls:     calls,
		auth:      &fakeAuth{log: calls, state: models.Locked()},
		prompt:    &fakePrompt{},
		session:   &fakeSession{log: calls},
		selection: mock.NewMockWalletSelectionProvider(gomock.NewController(t)),
	}
	d.handler = &Handler{
		auth:      d.auth,
		prompt:    d.prompt,
		session:   d.session,
		selection: d.selection,
		validator: validators.NewWalletRequestValidator(),
		buildInfo: models.NewAppBuildInfo("1.4.0", "2026-10-01", "abc123"),
		logger:    logger.Nop(),
	}
	return d
}

// do routes a request through the full router.
func (d *testDeps) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	d.handler.Init().ServeHTTP(rr, req)
	return rr
}
