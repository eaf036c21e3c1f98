// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package health_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sprintertech/sprinter-htlc/health"
	"github.com/stretchr/testify/suite"
)

type pauseFlag bool

func (p pauseFlag) Paused() bool {
	return bool(p)
}

type HealthTestSuite struct {
	suite.Suite
}

func TestRunHealthTestSuite(t *testing.T) {
	suite.Run(t, new(HealthTestSuite))
}

func (s *HealthTestSuite) Test_Health() {
	recorder := httptest.NewRecorder()

	health.Handler(pauseFlag(true)).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal("ok", recorder.Body.String())
}

func (s *HealthTestSuite) Test_Ready_Paused() {
	recorder := httptest.NewRecorder()

	health.Handler(pauseFlag(true)).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	s.Equal(http.StatusServiceUnavailable, recorder.Code)
}

func (s *HealthTestSuite) Test_Ready() {
	recorder := httptest.NewRecorder()

	health.Handler(pauseFlag(false)).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	s.Equal(http.StatusOK, recorder.Code)
}
