package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

const (
	btcID = "bitcoin-mainnet:__native__"
	ethID = "ethereum-mainnet:__native__"
)

func openViews() *fakeViews {
	return &fakeViews{
		wallets: []models.WalletView{
			{ID: btcID, CurrencyCode: "btc", NetworkID: "bitcoin-mainnet", Balance: "0.5", Mode: models.SyncModeAPIOnly, Connected: true},
			{ID: ethID, CurrencyCode: "eth", NetworkID: "ethereum-mainnet", Balance: "0", Mode: models.SyncModeAPIOnly},
		},
		transfers: map[string][]models.TransferView{
			btcID: {{Hash: "tx1", WalletID: btcID, Amount: "0.5", Fee: "0.0001", Direction: models.TransferReceived, State: "included", Confirmations: 3}},
			ethID: nil,
		},
		states: map[string]models.WalletState{
			btcID: {Kind: models.WalletStateInitialized},
		},
	}
}

// ── Session closed ───────────────────────────────────────────────────────────

func TestWallets_SessionClosed(t *testing.T) {
	d := newTestDeps(t)

	for _, target := range []string{
		"/api/wallets",
		"/api/wallets/" + btcID,
		"/api/wallets/" + btcID + "/transfers",
		"/api/wallets/" + btcID + "/state",
	} {
		rr := d.do(http.MethodGet, target, "")
		assert.Equal(t, http.StatusConflict, rr.Code, target)
		assert.Contains(t, rr.Body.String(), service.ErrSessionClosed.Error(), target)
	}
}

// ── Listing ──────────────────────────────────────────────────────────────────

func TestGetWallets(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantOpts   int
	}{
		{name: "all wallets", wantStatus: http.StatusOK},
		{name: "tracked only", query: "?tracked=true", wantStatus: http.StatusOK, wantOpts: 1},
		{name: "tracked false", query: "?tracked=0", wantStatus: http.StatusOK},
		{name: "bad flag", query: "?tracked=maybe", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			d.session.views = openViews()

			rr := d.do(http.MethodGet, "/api/wallets"+tt.query, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantOpts, d.session.views.lastOpts)
				assert.Contains(t, rr.Body.String(), `"id":"`+btcID+`"`)
				assert.Contains(t, rr.Body.String(), `"connected":true`)
			}
		})
	}
}

func TestGetWallets_EmptyIsArray(t *testing.T) {
	d := newTestDeps(t)
	d.session.views = &fakeViews{}

	rr := d.do(http.MethodGet, "/api/wallets", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

// ── Single wallet ────────────────────────────────────────────────────────────

func TestGetWallet(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "found",
			target:     "/api/wallets/" + btcID,
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"bitcoin-mainnet:__native__","currency_code":"btc","network_id":"bitcoin-mainnet","balance":"0.5","mode":"api_only","connected":true}`,
		},
		{
			name:       "escaped id",
			target:     "/api/wallets/bitcoin-mainnet%3A__native__",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown",
			target:     "/api/wallets/hedera-mainnet:__native__",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			d.session.views = openViews()

			rr := d.do(http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestGetTransfers(t *testing.T) {
	d := newTestDeps(t)
	d.session.views = openViews()

	rr := d.do(http.MethodGet, "/api/wallets/"+btcID+"/transfers", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"hash":"tx1","wallet_id":"bitcoin-mainnet:__native__","amount":"0.5","fee":"0.0001","direction":"received","state":"included","confirmations":3}]`, rr.Body.String())

	// кошелёк есть, переводов нет
	rr = d.do(http.MethodGet, "/api/wallets/"+ethID+"/transfers", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = d.do(http.MethodGet, "/api/wallets/unknown/transfers", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetWalletState(t *testing.T) {
	d := newTestDeps(t)
	d.session.views = openViews()

	rr := d.do(http.MethodGet, "/api/wallets/"+btcID+"/state", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"state":"initialized"}`, rr.Body.String())

	rr = d.do(http.MethodGet, "/api/wallets/"+ethID+"/state", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ── Initialize ───────────────────────────────────────────────────────────────

func TestInitializeWallet(t *testing.T) {
	tests := []struct {
		name       string
		state      models.NetworkState
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "initialized",
			state:      models.NetworkInitialized(),
			wantStatus: http.StatusOK,
			wantBody:   `{"state":"initialized"}`,
		},
		{
			name:       "engine error",
			state:      models.NetworkError("insufficient balance"),
			wantStatus: http.StatusOK,
			wantBody:   `{"state":"error","reason":"insufficient balance"}`,
		},
		{
			name:       "session closed",
			err:        service.ErrSessionClosed,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unknown wallet",
			err:        fmt.Errorf("%w: x", service.ErrUnknownWallet),
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			d.session.initState = tt.state
			d.session.initErr = tt.err

			rr := d.do(http.MethodPost, "/api/wallets/hedera-mainnet:__native__/initialize", "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, []string{"initialize:hedera-mainnet:__native__"}, d.calls.list())
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

// ── Selection ────────────────────────────────────────────────────────────────

func TestSetEnabledWallets(t *testing.T) {
	d := newTestDeps(t)
	d.selection.EXPECT().SetEnabledWallets(gomock.Any(), []string{btcID, ethID}).Return(nil)

	rr := d.do(http.MethodPut, "/api/wallets/enabled", `{"currency_ids":["`+btcID+`","`+ethID+`"]}`)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestSetEnabledWallets_StoreFails(t *testing.T) {
	d := newTestDeps(t)
	d.selection.EXPECT().SetEnabledWallets(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: disk I/O error", store.ErrExecutingQuery))

	rr := d.do(http.MethodPut, "/api/wallets/enabled", `{"currency_ids":["`+btcID+`"]}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "disk I/O")
}

func TestSetEnabledWallets_Validation(t *testing.T) {
	d := newTestDeps(t)

	for _, body := range []string{`{"currency_ids":[]}`, `{"currency_ids":["bitcoin"]}`, `{"currency_ids":[":x"]}`} {
		rr := d.do(http.MethodPut, "/api/wallets/enabled", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
}

func TestSetWalletMode(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setErr     error
		expectCall bool
		wantStatus int
	}{
		{name: "valid", body: `{"mode":"p2p_only"}`, expectCall: true, wantStatus: http.StatusNoContent},
		{name: "invalid mode", body: `{"mode":"warp"}`, wantStatus: http.StatusBadRequest},
		{name: "store error", body: `{"mode":"api_only"}`, setErr: store.ErrExecutingQuery, expectCall: true, wantStatus: http.StatusInternalServerError},
		{name: "bad json", body: `{`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			if tt.expectCall {
				d.selection.EXPECT().SetWalletMode(gomock.Any(), btcID, gomock.Any()).Return(tt.setErr)
			}

			rr := d.do(http.MethodPut, "/api/wallets/"+btcID+"/mode", tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
