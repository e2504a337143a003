package service

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/TessVincent/prismhealth/internal/config"
	"github.com/TessVincent/prismhealth/internal/fhe"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/mock"
	"github.com/TessVincent/prismhealth/models"
)

func newTestGateway(t *testing.T, ctrl *gomock.Controller, burst int) (GatewayService, *mock.MockEngine) {
	t.Helper()
	engine := mock.NewMockEngine(ctrl)
	// a rate this low never refills during a test
	return NewGatewayService(engine, config.Engine{OracleRateLimit: 0.0001, OracleBurst: burst}, logger.Nop()), engine
}

// ── EncryptInputs ──

func TestGatewayService_EncryptInputs_MapsBitsToTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw, engine := newTestGateway(t, ctrl, 1)
	ctx := context.Background()
	handles := []common.Hash{{1}, {2}, {3}}

	engine.EXPECT().
		EncryptInputs(ctx, testContract, testOwner, []uint64{1, 200, 60000}, []fhe.Type{fhe.Bool, fhe.Uint8, fhe.Uint16}).
		Return(fhe.InputBatch{Handles: handles, Proof: []byte{0x03}}, nil)

	resp, err := gw.EncryptInputs(ctx, models.EncryptInputsRequest{
		Contract: testContract,
		User:     testOwner,
		Values:   []uint64{1, 200, 60000},
		Bits:     []uint8{1, 8, 16},
	})
	require.NoError(t, err)
	assert.Equal(t, handles, resp.Handles)
	assert.Equal(t, models.ExternalInput{Handle: handles[1], Proof: []byte{0x03}}, resp.Input(1))
}

func TestGatewayService_EncryptInputs_Rejects(t *testing.T) {
	tests := []struct {
		name string
		req  models.EncryptInputsRequest
	}{
		{"value wider than domain", models.EncryptInputsRequest{Contract: testContract, User: testOwner, Values: []uint64{256}, Bits: []uint8{8}}},
		{"unsupported width", models.EncryptInputsRequest{Contract: testContract, User: testOwner, Values: []uint64{1}, Bits: []uint8{32}}},
		{"bits do not match values", models.EncryptInputsRequest{Contract: testContract, User: testOwner, Values: []uint64{1, 2}, Bits: []uint8{8}}},
		{"no values", models.EncryptInputsRequest{Contract: testContract, User: testOwner}},
		{"zero user", models.EncryptInputsRequest{Contract: testContract, Values: []uint64{1}, Bits: []uint8{8}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gw, _ := newTestGateway(t, ctrl, 1)
			_, err := gw.EncryptInputs(context.Background(), tt.req)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

// ── UserDecrypt ──

func TestGatewayService_UserDecrypt_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw, engine := newTestGateway(t, ctrl, 2)
	ctx := context.Background()
	req := models.UserDecryptRequest{UserAddress: testOwner}

	engine.EXPECT().UserDecrypt(ctx, req).Return(models.UserDecryptResponse{}, nil).Times(2)

	for i := 0; i < 2; i++ {
		_, err := gw.UserDecrypt(ctx, req)
		require.NoError(t, err)
	}

	_, err := gw.UserDecrypt(ctx, req)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestGatewayService_UserDecrypt_PassesEngineErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw, engine := newTestGateway(t, ctrl, 1)
	ctx := context.Background()
	req := models.UserDecryptRequest{UserAddress: testOwner}

	engine.EXPECT().UserDecrypt(ctx, req).Return(models.UserDecryptResponse{}, models.ErrGrantExpired)

	_, err := gw.UserDecrypt(ctx, req)
	assert.ErrorIs(t, err, models.ErrAuthorization)
}
