package handlers_test

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sprintertech/sprinter-htlc/api/handlers"
	mock_handlers "github.com/sprintertech/sprinter-htlc/api/handlers/mock"
	"github.com/sprintertech/sprinter-htlc/coordinator"
	"github.com/sprintertech/sprinter-htlc/security"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	resolverKey, _ = crypto.HexToECDSA("b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291")
	resolver       = crypto.PubkeyToAddress(resolverKey.PublicKey)
	otherKey, _    = crypto.HexToECDSA("8f2a55949038a9610f50fb23b5883af3b4ecb3c3bb792cbcefbd1542c692be63")
)

func sign(key *ecdsa.PrivateKey, action string, fields ...string) handlers.Signed {
	deadline := uint64(time.Now().Add(time.Minute).Unix())
	signature, _ := crypto.Sign(security.RequestDigest(action, deadline, fields...), key)
	return handlers.Signed{
		Deadline:  deadline,
		Signature: hexutil.Encode(signature),
	}
}

func withSignature(body map[string]interface{}, signed handlers.Signed) map[string]interface{} {
	body["deadline"] = signed.Deadline
	body["signature"] = signed.Signature
	return body
}

type FillHandlerTestSuite struct {
	suite.Suite

	mockCoordinator *mock_handlers.MockFillCoordinator
	mockSecrets     *mock_handlers.MockSecretStore
	handler         *handlers.FillHandler
}

func TestRunFillHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FillHandlerTestSuite))
}

func (s *FillHandlerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockCoordinator = mock_handlers.NewMockFillCoordinator(ctrl)
	s.mockSecrets = mock_handlers.NewMockSecretStore(ctrl)
	s.handler = handlers.NewFillHandler(context.Background(), s.mockCoordinator, s.mockSecrets)
}

func (s *FillHandlerTestSuite) fillRequest(body interface{}) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/v1/orders/order/fills", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return mux.SetURLVars(req, map[string]string{
		"orderId": "order",
	})
}

func (s *FillHandlerTestSuite) Test_HandleFill_InvalidResolver() {
	req := s.fillRequest(map[string]interface{}{
		"resolver": "invalid",
		"amount":   "40",
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleFill(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *FillHandlerTestSuite) Test_HandleFill_InvalidAmount() {
	req := s.fillRequest(map[string]interface{}{
		"resolver": resolver.Hex(),
		"amount":   "forty",
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleFill(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *FillHandlerTestSuite) Test_HandleFill_Unsigned() {
	req := s.fillRequest(map[string]interface{}{
		"resolver": resolver.Hex(),
		"amount":   "40",
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleFill(recorder, req)

	s.Equal(http.StatusUnauthorized, recorder.Code)
}

func (s *FillHandlerTestSuite) Test_HandleFill_SignedByOtherKey() {
	req := s.fillRequest(withSignature(map[string]interface{}{
		"resolver": resolver.Hex(),
		"amount":   "40",
	}, sign(otherKey, handlers.FILL_ACTION, "order", "40")))
	recorder := httptest.NewRecorder()

	s.handler.HandleFill(recorder, req)

	s.Equal(http.StatusUnauthorized, recorder.Code)
}

func (s *FillHandlerTestSuite) Test_HandleFill_SignedOtherAmount() {
	req := s.fillRequest(withSignature(map[string]interface{}{
		"resolver": resolver.Hex(),
		"amount":   "100",
	}, sign(resolverKey, handlers.FILL_ACTION, "order", "40")))
	recorder := httptest.NewRecorder()

	s.handler.HandleFill(recorder, req)

	s.Equal(http.StatusUnauthorized, recorder.Code)
}

func (s *FillHandlerTestSuite) Test_HandleFill_NotProfitable() {
	s.mockCoordinator.EXPECT().AdmitFill(gomock.Any(), gomock.Any()).Return(nil, &coordinator.RejectionError{
		Kind:    coordinator.Economic,
		OrderID: "order",
		Err:     coordinator.ErrNotProfitable,
	})
	req := s.fillRequest(withSignature(map[string]interface{}{
		"resolver":     resolver.Hex(),
		"amount":       "40",
		"resolverCost": "3",
	}, sign(resolverKey, handlers.FILL_ACTION, "order", "40")))
	recorder := httptest.NewRecorder()

	s.handler.HandleFill(recorder, req)

	s.Equal(http.StatusUnprocessableEntity, recorder.Code)
}

func (s *FillHandlerTestSuite) Test_HandleFill_Reentrancy() {
	s.mockCoordinator.EXPECT().AdmitFill(gomock.Any(), gomock.Any()).Return(nil, &coordinator.RejectionError{
		Kind:    coordinator.Concurrency,
		OrderID: "order",
		Err:     fmt.Errorf("operation already in progress"),
	})
	req := s.fillRequest(withSignature(map[string]interface{}{
		"resolver": resolver.Hex(),
		"amount":   "40",
	}, sign(resolverKey, handlers.FILL_ACTION, "order", "40")))
	recorder := httptest.NewRecorder()

	s.handler.HandleFill(recorder, req)

	s.Equal(http.StatusConflict, recorder.Code)
}

func (s *FillHandlerTestSuite) Test_HandleFill_AdmittedAndReleased() {
	admission := &coordinator.Admission{
		OrderID:     "order",
		FillIndex:   0,
		SecretIndex: 1,
		Deposit:     big.NewInt(1),
		TotalAmount: big.NewInt(81),
		Rate:        decimal.RequireFromString("2"),
	}
	s.mockCoordinator.EXPECT().AdmitFill(gomock.Any(), coordinator.FillRequest{
		OrderID:      "order",
		Resolver:     resolver,
		Amount:       big.NewInt(40),
		ResolverCost: decimal.RequireFromString("1.5"),
		GasCost:      big.NewInt(1000),
	}).Return(admission, nil)
	released := make(chan struct{})
	s.mockCoordinator.EXPECT().ReleaseFillSecret(gomock.Any(), admission).DoAndReturn(
		func(ctx context.Context, admission *coordinator.Admission) (*coordinator.FillTicket, error) {
			close(released)
			return &coordinator.FillTicket{Admission: *admission}, nil
		})
	req := s.fillRequest(withSignature(map[string]interface{}{
		"resolver":     resolver.Hex(),
		"amount":       "40",
		"resolverCost": "1.5",
		"gasCost":      "1000",
	}, sign(resolverKey, handlers.FILL_ACTION, "order", "40")))
	recorder := httptest.NewRecorder()

	s.handler.HandleFill(recorder, req)

	s.Equal(http.StatusAccepted, recorder.Code)
	s.Contains(recorder.Body.String(), "\"totalAmount\":81")
	select {
	case <-released:
	case <-time.After(time.Second):
		s.Fail("secret release not started")
	}
}

func (s *FillHandlerTestSuite) Test_HandleComplete_InvalidFillIndex() {
	req := httptest.NewRequest(http.MethodPost, "/v1/orders/order/fills/x/complete", nil)
	req = mux.SetURLVars(req, map[string]string{
		"orderId":   "order",
		"fillIndex": "x",
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleComplete(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *FillHandlerTestSuite) Test_HandleComplete_SecretNotReleased() {
	s.mockCoordinator.EXPECT().CompleteFill(gomock.Any(), "order", 1).Return(nil, &coordinator.RejectionError{
		Kind:    coordinator.Validation,
		OrderID: "order",
		Err:     coordinator.ErrSecretNotReleased,
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/orders/order/fills/1/complete", nil)
	req = mux.SetURLVars(req, map[string]string{
		"orderId":   "order",
		"fillIndex": "1",
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleComplete(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *FillHandlerTestSuite) Test_HandleComplete_Completed() {
	s.mockCoordinator.EXPECT().CompleteFill(gomock.Any(), "order", 1).Return(&coordinator.Fill{
		Index:           1,
		Status:          coordinator.FillCompleted,
		DepositReleased: true,
	}, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/orders/order/fills/1/complete", nil)
	req = mux.SetURLVars(req, map[string]string{
		"orderId":   "order",
		"fillIndex": "1",
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleComplete(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), "\"depositReleased\":true")
}

func (s *FillHandlerTestSuite) secretRequest(signed handlers.Signed) *http.Request {
	query := url.Values{}
	query.Set("resolver", resolver.Hex())
	query.Set("deadline", fmt.Sprint(signed.Deadline))
	query.Set("signature", signed.Signature)
	req := httptest.NewRequest(http.MethodGet, "/v1/orders/order/fills/0/secret?"+query.Encode(), nil)
	return mux.SetURLVars(req, map[string]string{
		"orderId":   "order",
		"fillIndex": "0",
	})
}

func (s *FillHandlerTestSuite) Test_HandleSecret_MissingResolver() {
	req := httptest.NewRequest(http.MethodGet, "/v1/orders/order/fills/0/secret", nil)
	req = mux.SetURLVars(req, map[string]string{
		"orderId":   "order",
		"fillIndex": "0",
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleSecret(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *FillHandlerTestSuite) Test_HandleSecret_NotReleased() {
	s.mockSecrets.EXPECT().Secret("order", 0).Return(coordinator.FillSecret{}, fmt.Errorf("no secret released"))
	req := s.secretRequest(sign(resolverKey, handlers.SECRET_ACTION, "order", "0"))
	recorder := httptest.NewRecorder()

	s.handler.HandleSecret(recorder, req)

	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *FillHandlerTestSuite) Test_HandleSecret_OtherResolver() {
	s.mockSecrets.EXPECT().Secret("order", 0).Return(coordinator.FillSecret{
		OrderID:  "order",
		Resolver: common.HexToAddress("0xbb"),
	}, nil)
	req := s.secretRequest(sign(resolverKey, handlers.SECRET_ACTION, "order", "0"))
	recorder := httptest.NewRecorder()

	s.handler.HandleSecret(recorder, req)

	s.Equal(http.StatusForbidden, recorder.Code)
}

func (s *FillHandlerTestSuite) Test_HandleSecret_Released() {
	secret := coordinator.FillSecret{
		OrderID:     "order",
		FillIndex:   0,
		SecretIndex: 1,
		Resolver:    resolver,
		Secret:      common.HexToHash("0x01"),
	}
	s.mockSecrets.EXPECT().Secret("order", 0).Return(secret, nil)
	req := s.secretRequest(sign(resolverKey, handlers.SECRET_ACTION, "order", "0"))
	recorder := httptest.NewRecorder()

	s.handler.HandleSecret(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), secret.Secret.Hex())
}

func (s *FillHandlerTestSuite) Test_HandleSecret_MissingDeadline() {
	req := httptest.NewRequest(http.MethodGet, "/v1/orders/order/fills/0/secret?resolver="+resolver.Hex(), nil)
	req = mux.SetURLVars(req, map[string]string{
		"orderId":   "order",
		"fillIndex": "0",
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleSecret(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *FillHandlerTestSuite) Test_HandleSecret_SignedByOtherKey() {
	req := s.secretRequest(sign(otherKey, handlers.SECRET_ACTION, "order", "0"))
	recorder := httptest.NewRecorder()

	s.handler.HandleSecret(recorder, req)

	s.Equal(http.StatusUnauthorized, recorder.Code)
}

func (s *FillHandlerTestSuite) Test_HandleSecret_SignedForOtherFill() {
	req := s.secretRequest(sign(resolverKey, handlers.SECRET_ACTION, "order", "1"))
	recorder := httptest.NewRecorder()

	s.handler.HandleSecret(recorder, req)

	s.Equal(http.StatusUnauthorized, recorder.Code)
}

func (s *FillHandlerTestSuite) releaseRequest(body map[string]interface{}) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/v1/orders/order/fills/0/release", bytes.NewReader(data))
	return mux.SetURLVars(req, map[string]string{
		"orderId":   "order",
		"fillIndex": "0",
	})
}

func (s *FillHandlerTestSuite) Test_HandleRelease_Unsigned() {
	req := s.releaseRequest(map[string]interface{}{
		"resolver": resolver.Hex(),
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleRelease(recorder, req)

	s.Equal(http.StatusUnauthorized, recorder.Code)
}

func (s *FillHandlerTestSuite) Test_HandleRelease_Paused() {
	s.mockCoordinator.EXPECT().ReadmitFill(gomock.Any(), "order", 0, resolver).Return(nil, &coordinator.RejectionError{
		Kind:    coordinator.Authorization,
		OrderID: "order",
		Err:     security.ErrPaused,
	})
	req := s.releaseRequest(withSignature(map[string]interface{}{
		"resolver": resolver.Hex(),
	}, sign(resolverKey, handlers.RELEASE_ACTION, "order", "0")))
	recorder := httptest.NewRecorder()

	s.handler.HandleRelease(recorder, req)

	s.Equal(http.StatusForbidden, recorder.Code)
}

func (s *FillHandlerTestSuite) Test_HandleRelease_Readmitted() {
	admission := &coordinator.Admission{
		OrderID:     "order",
		FillIndex:   0,
		SecretIndex: 1,
		Deposit:     big.NewInt(1),
		TotalAmount: big.NewInt(81),
		Rate:        decimal.RequireFromString("2"),
	}
	s.mockCoordinator.EXPECT().ReadmitFill(gomock.Any(), "order", 0, resolver).Return(admission, nil)
	released := make(chan struct{})
	s.mockCoordinator.EXPECT().ReleaseFillSecret(gomock.Any(), admission).DoAndReturn(
		func(ctx context.Context, admission *coordinator.Admission) (*coordinator.FillTicket, error) {
			close(released)
			return &coordinator.FillTicket{Admission: *admission}, nil
		})
	req := s.releaseRequest(withSignature(map[string]interface{}{
		"resolver": resolver.Hex(),
	}, sign(resolverKey, handlers.RELEASE_ACTION, "order", "0")))
	recorder := httptest.NewRecorder()

	s.handler.HandleRelease(recorder, req)

	s.Equal(http.StatusAccepted, recorder.Code)
	select {
	case <-released:
	case <-time.After(time.Second):
		s.Fail("secret release not started")
	}
}
